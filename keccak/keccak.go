// Package keccak provides the Keccak-f[1600] permutation and the sponge
// absorb/squeeze steps over packed 32-bit words.
//
// The state is 25 little-endian 64-bit lanes. Packed input words are
// little-endian halves of lanes: word 2i is the low half of lane i and word
// 2i+1 the high half, which is how the SHA-3 family lays out its input.
package keccak

// State is the 1600-bit Keccak state.
type State [25]uint64

// XorIn XORs words into the beginning of the state, two words per lane.
// words must not exceed the 50 words of the state.
func (a *State) XorIn(words []uint32) {
	n := len(words) >> 1
	for i := 0; i < n; i++ {
		a[i] ^= uint64(words[2*i]) | uint64(words[2*i+1])<<32
	}
	// Odd trailing word only touches the low half of its lane.
	if len(words)&1 == 1 {
		a[n] ^= uint64(words[len(words)-1])
	}
}

// Absorb XORs one rate-sized block into the state and permutes it.
func (a *State) Absorb(block []uint32) {
	a.XorIn(block)
	F1600(a)
}

// Squeeze returns outWords words of output, reading rateWords words from the
// state per permutation. The state is permuted between reads, never after the
// last one.
func (a *State) Squeeze(rateWords, outWords int) []uint32 {
	out := make([]uint32, 0, outWords)
	for {
		for i := 0; i < rateWords && len(out) < outWords; i++ {
			lane := a[i>>1]
			if i&1 == 0 {
				out = append(out, uint32(lane))
			} else {
				out = append(out, uint32(lane>>32))
			}
		}
		if len(out) == outWords {
			return out
		}
		F1600(a)
	}
}
