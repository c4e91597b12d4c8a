package convert

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/Giulio2002/streamhash/packed"
)

// EncodeHex renders the first bitLen bits of words as hexadecimal.
func EncodeHex(words []uint32, bitLen int, o packed.Order, upper bool) string {
	s := hex.EncodeToString(packed.ToBytes(words, bitLen, o))
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

// EncodeBase64 renders the first bitLen bits of words as standard base64,
// filling each missing quantum position with pad. An empty pad disables
// padding.
func EncodeBase64(words []uint32, bitLen int, o packed.Order, pad string) string {
	s := base64.RawStdEncoding.EncodeToString(packed.ToBytes(words, bitLen, o))
	if missing := (4 - len(s)%4) % 4; missing > 0 {
		s += strings.Repeat(pad, missing)
	}
	return s
}

// EncodeBytes returns the first bitLen bits of words as a byte slice.
func EncodeBytes(words []uint32, bitLen int, o packed.Order) []byte {
	return packed.ToBytes(words, bitLen, o)
}
