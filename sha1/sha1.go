// Package sha1 implements the SHA-1 adapter for the streaming engine.
//
// SHA-1 is cryptographically broken and is provided for compatibility only.
package sha1

import (
	"math/bits"

	"github.com/Giulio2002/streamhash/internal/mdpad"
	"github.com/Giulio2002/streamhash/packed"
)

const (
	// BlockSize is the SHA-1 block size in bits.
	BlockSize = 512
	// Size is the SHA-1 digest size in bits.
	Size = 160
)

// State is the running SHA-1 chaining value.
type State [5]uint32

var initial = State{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// Adapter plugs SHA-1 into the streaming engine.
type Adapter struct{}

// New returns the SHA-1 adapter.
func New() Adapter { return Adapter{} }

func (Adapter) Variant() string     { return "SHA-1" }
func (Adapter) BlockSize() int      { return BlockSize }
func (Adapter) OutputLen() int      { return Size }
func (Adapter) Order() packed.Order { return packed.BigEndian }
func (Adapter) Extendable() bool    { return false }
func (Adapter) Init() State         { return initial }
func (Adapter) Clone(s State) State { return s }

// Compress folds one 16-word block into s.
func (Adapter) Compress(block []uint32, s State) State {
	var w [80]uint32
	copy(w[:16], block)
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f, k = b&c|^b&d, 0x5a827999
		case i < 40:
			f, k = b^c^d, 0x6ed9eba1
		case i < 60:
			f, k = b&c|b&d|c&d, 0x8f1bbcdc
		default:
			f, k = b^c^d, 0xca62c1d6
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	return State{s[0] + a, s[1] + b, s[2] + c, s[3] + d, s[4] + e}
}

// Finalize pads the remainder, folds in the total message length and returns
// the 160-bit digest. outLen is ignored since the output is fixed.
func (ad Adapter) Finalize(rem []uint32, remLen int, processed uint64, s State, outLen int) []uint32 {
	for _, block := range mdpad.Pad(rem, remLen, processed, BlockSize) {
		s = ad.Compress(block, s)
	}
	return s[:]
}
