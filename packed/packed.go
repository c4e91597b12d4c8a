// Package packed implements the bit buffer shared by the engine, the input
// converters and the algorithm adapters: a slice of 32-bit words tagged with
// an exact bit length.
package packed

// Order selects how bytes are laid out inside a 32-bit word.
type Order int

const (
	// BigEndian places the first byte in the most significant position (SHA-1, SHA-2).
	BigEndian Order = iota
	// LittleEndian places the first byte in the least significant position (SHA-3).
	LittleEndian
)

// String implements the fmt.Stringer interface.
func (o Order) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// shift returns the bit offset of byte i (0..3) within its word.
func (o Order) shift(i int) uint {
	if o == LittleEndian {
		return uint(8 * i)
	}
	return uint(8 * (3 - i))
}

// Value is a packed bit buffer. Only the first BitLen bits of Words are
// significant and the rest are zero.
type Value struct {
	Words  []uint32
	BitLen int
}

// AppendBytes returns a new Value holding the existing bits followed by p.
// existingBitLen must be a multiple of 8. existing is never modified.
func AppendBytes(existing []uint32, existingBitLen int, p []byte, o Order) Value {
	total := existingBitLen + 8*len(p)
	words := make([]uint32, WordLen(total))
	if n := WordLen(existingBitLen); len(existing) > n {
		existing = existing[:n]
	}
	copy(words, existing)

	pos := existingBitLen >> 3
	for _, b := range p {
		words[pos>>2] |= uint32(b) << o.shift(pos&3)
		pos++
	}
	return Value{Words: words, BitLen: total}
}

// WordLen returns the number of words needed to hold bitLen bits.
func WordLen(bitLen int) int {
	return (bitLen + 31) >> 5
}

// ToBytes unpacks the first bitLen/8 bytes of words.
func ToBytes(words []uint32, bitLen int, o Order) []byte {
	out := make([]byte, bitLen>>3)
	for i := range out {
		out[i] = byte(words[i>>2] >> o.shift(i&3))
	}
	return out
}

// Bytes unpacks the significant bytes of v.
func (v Value) Bytes(o Order) []byte {
	return ToBytes(v.Words, v.BitLen, o)
}

// Truncate returns a copy of the first bitLen bits of words, with any bits
// past bitLen in the last word cleared. Big-endian keeps the high bits of a
// partial word, little-endian keeps the low bits.
func Truncate(words []uint32, bitLen int, o Order) []uint32 {
	n := WordLen(bitLen)
	out := make([]uint32, n)
	copy(out, words)
	if r := bitLen & 31; r != 0 {
		if o == LittleEndian {
			out[n-1] &= 1<<uint(r) - 1
		} else {
			out[n-1] &= ^uint32(0) << uint(32-r)
		}
	}
	return out
}

// Clone returns an independent copy of words.
func Clone(words []uint32) []uint32 {
	return append([]uint32(nil), words...)
}
