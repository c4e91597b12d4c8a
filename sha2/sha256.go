// Package sha2 implements the SHA-224, SHA-256, SHA-384 and SHA-512 adapters
// for the streaming engine.
package sha2

import (
	"math/bits"

	"github.com/Giulio2002/streamhash/internal/mdpad"
	"github.com/Giulio2002/streamhash/packed"
)

// State256 is the chaining value of SHA-224 and SHA-256.
type State256 [8]uint32

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Adapter256 plugs SHA-224 or SHA-256 into the streaming engine.
type Adapter256 struct {
	variant string
	size    int
	initial State256
}

// New224 returns the SHA-224 adapter.
func New224() Adapter256 {
	return Adapter256{
		variant: "SHA-224",
		size:    224,
		initial: State256{0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939, 0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4},
	}
}

// New256 returns the SHA-256 adapter.
func New256() Adapter256 {
	return Adapter256{
		variant: "SHA-256",
		size:    256,
		initial: State256{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19},
	}
}

func (a Adapter256) Variant() string         { return a.variant }
func (Adapter256) BlockSize() int            { return 512 }
func (a Adapter256) OutputLen() int          { return a.size }
func (Adapter256) Order() packed.Order       { return packed.BigEndian }
func (Adapter256) Extendable() bool          { return false }
func (a Adapter256) Init() State256          { return a.initial }
func (Adapter256) Clone(s State256) State256 { return s }

// Compress folds one 16-word block into s.
func (Adapter256) Compress(block []uint32, s State256) State256 {
	var w [64]uint32
	copy(w[:16], block)
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ v1>>10
		v2 := w[i-15]
		t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ v2>>3
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	for i := 0; i < 64; i++ {
		t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) + (e&f ^ ^e&g) + k256[i] + w[i]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) + (a&b ^ a&c ^ b&c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	return State256{s[0] + a, s[1] + b, s[2] + c, s[3] + d, s[4] + e, s[5] + f, s[6] + g, s[7] + h}
}

// Finalize pads the remainder and returns the digest words, 7 for SHA-224 and
// 8 for SHA-256. outLen is ignored since the output is fixed.
func (a Adapter256) Finalize(rem []uint32, remLen int, processed uint64, s State256, outLen int) []uint32 {
	for _, block := range mdpad.Pad(rem, remLen, processed, 512) {
		s = a.Compress(block, s)
	}
	return s[:a.size>>5]
}
