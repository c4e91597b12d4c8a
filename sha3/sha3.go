// Package sha3 implements the SHA-3, SHAKE and legacy Keccak adapters for the
// streaming engine.
//
// Go's crypto/sha3 only exposes SHA-3 (domain 0x06) and SHAKE (0x1f), not the
// Ethereum Keccak-256 (0x01). All three share the sponge below and differ only
// in rate, digest size and domain byte.
package sha3

import (
	"github.com/Giulio2002/streamhash/keccak"
	"github.com/Giulio2002/streamhash/packed"
)

// Domain separation bytes.
const (
	dsSHA3   = 0x06
	dsSHAKE  = 0x1f
	dsKeccak = 0x01
)

// Adapter plugs one Keccak sponge variant into the streaming engine.
type Adapter struct {
	variant    string
	rate       int // bits
	size       int // bits, 0 when extendable
	ds         uint32
	extendable bool
}

// New224 returns the SHA3-224 adapter.
func New224() Adapter { return Adapter{variant: "SHA3-224", rate: 1152, size: 224, ds: dsSHA3} }

// New256 returns the SHA3-256 adapter.
func New256() Adapter { return Adapter{variant: "SHA3-256", rate: 1088, size: 256, ds: dsSHA3} }

// New384 returns the SHA3-384 adapter.
func New384() Adapter { return Adapter{variant: "SHA3-384", rate: 832, size: 384, ds: dsSHA3} }

// New512 returns the SHA3-512 adapter.
func New512() Adapter { return Adapter{variant: "SHA3-512", rate: 576, size: 512, ds: dsSHA3} }

// NewShake128 returns the SHAKE128 extendable-output adapter.
func NewShake128() Adapter {
	return Adapter{variant: "SHAKE128", rate: 1344, ds: dsSHAKE, extendable: true}
}

// NewShake256 returns the SHAKE256 extendable-output adapter.
func NewShake256() Adapter {
	return Adapter{variant: "SHAKE256", rate: 1088, ds: dsSHAKE, extendable: true}
}

// NewKeccak256 returns the legacy Keccak-256 adapter (Ethereum-compatible).
func NewKeccak256() Adapter {
	return Adapter{variant: "KECCAK-256", rate: 1088, size: 256, ds: dsKeccak}
}

func (a Adapter) Variant() string                 { return a.variant }
func (a Adapter) BlockSize() int                  { return a.rate }
func (a Adapter) OutputLen() int                  { return a.size }
func (Adapter) Order() packed.Order               { return packed.LittleEndian }
func (a Adapter) Extendable() bool                { return a.extendable }
func (Adapter) Init() keccak.State                { return keccak.State{} }
func (Adapter) Clone(s keccak.State) keccak.State { return s }

// Compress absorbs one rate-sized block into s.
func (Adapter) Compress(block []uint32, s keccak.State) keccak.State {
	s.Absorb(block)
	return s
}

// Finalize absorbs every whole block of rem, pads the tail with the domain
// byte and the final 1 bit, and squeezes outLen bits. Fixed-size variants
// always squeeze their native size.
func (a Adapter) Finalize(rem []uint32, remLen int, processed uint64, s keccak.State, outLen int) []uint32 {
	rateWords := a.rate >> 5
	words := rem[:packed.WordLen(remLen)]
	for remLen >= a.rate {
		s.Absorb(words[:rateWords])
		words = words[rateWords:]
		remLen -= a.rate
	}

	block := make([]uint32, rateWords)
	copy(block, words)
	block[remLen>>5] ^= a.ds << uint(8*(remLen>>3&3))
	block[rateWords-1] ^= 0x80000000
	s.Absorb(block)

	if !a.extendable {
		outLen = a.size
	}
	return packed.Truncate(s.Squeeze(rateWords, packed.WordLen(outLen)), outLen, packed.LittleEndian)
}
