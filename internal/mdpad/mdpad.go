// Package mdpad implements the Merkle-Damgard length padding used by SHA-1
// and SHA-2 over big-endian packed words.
package mdpad

import "github.com/Giulio2002/streamhash/packed"

// Pad appends a single 1 bit to the first remLen bits of rem, then zeros, then
// the total message length (processed + remLen) in the last 64 bits of the
// length field, which is blockBits/8 bits wide. It returns the padded message
// split into blocks of blockBits/32 words. rem is not modified.
func Pad(rem []uint32, remLen int, processed uint64, blockBits int) [][]uint32 {
	lenBits := blockBits / 8
	blockWords := blockBits >> 5
	// Index of the last word of the final block.
	last := (remLen+lenBits+1)/blockBits*blockWords + blockWords - 1

	words := make([]uint32, last+1)
	copy(words, rem[:packed.WordLen(remLen)])
	words[remLen>>5] |= 0x80 << uint(24-remLen&31)

	total := processed + uint64(remLen)
	words[last-1] = uint32(total >> 32)
	words[last] = uint32(total)

	blocks := make([][]uint32, 0, len(words)/blockWords)
	for i := 0; i < len(words); i += blockWords {
		blocks = append(blocks, words[i:i+blockWords])
	}
	return blocks
}
