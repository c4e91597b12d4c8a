package convert

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"

	"github.com/Giulio2002/streamhash/packed"
)

// Func converts one chunk of input and appends its bits after the existing
// remainder. The existing words are never modified.
type Func func(input []byte, existing []uint32, existingBitLen int) (packed.Value, error)

// New returns the converter for the given input format. enc only matters for
// Text input.
func New(f Format, enc Encoding, o packed.Order) (Func, error) {
	var decode func([]byte) ([]byte, error)
	switch f {
	case Hex:
		decode = decodeHex
	case Text:
		var err error
		if decode, err = textEncoder(enc); err != nil {
			return nil, err
		}
	case Base64:
		decode = decodeBase64
	case Bytes:
		decode = func(p []byte) ([]byte, error) { return p, nil }
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "input format %d", int(f))
	}

	return func(input []byte, existing []uint32, existingBitLen int) (packed.Value, error) {
		p, err := decode(input)
		if err != nil {
			return packed.Value{}, err
		}
		return packed.AppendBytes(existing, existingBitLen, p, o), nil
	}, nil
}

// Pending returns how many trailing bytes of p must be held back until the
// next chunk arrives. It is non-zero only for Text input re-encoded as UTF-16
// whose last UTF-8 sequence is incomplete: encoding that prefix on its own
// would turn it into replacement characters.
func Pending(f Format, enc Encoding, p []byte) int {
	if f != Text || (enc != UTF16BE && enc != UTF16LE) {
		return 0
	}
	for i := len(p) - 1; i >= 0 && i > len(p)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(p[i]) {
			continue
		}
		if utf8.FullRune(p[i:]) {
			return 0
		}
		return len(p) - i
	}
	return 0
}

func decodeHex(p []byte) ([]byte, error) {
	if len(p)%2 != 0 {
		return nil, errors.Wrap(ErrInvalidInput, "hex input must be in byte increments")
	}
	out := make([]byte, len(p)/2)
	if _, err := hex.Decode(out, p); err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "hex input contains invalid characters: %v", err)
	}
	return out, nil
}

func decodeBase64(p []byte) ([]byte, error) {
	s := string(p)
	if i := strings.IndexFunc(s, func(r rune) bool { return !isBase64Char(r) }); i >= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "invalid character %q in base64 input", s[i])
	}
	trimmed := strings.TrimRight(s, "=")
	if strings.ContainsRune(trimmed, '=') {
		return nil, errors.Wrap(ErrInvalidInput, "invalid '=' found in base64 input")
	}
	out, err := base64.RawStdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "base64 input: %v", err)
	}
	return out, nil
}

func isBase64Char(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	return r == '+' || r == '/' || r == '='
}

func textEncoder(enc Encoding) (func([]byte) ([]byte, error), error) {
	var endianness unicode.Endianness
	switch enc {
	case UTF8:
		return func(p []byte) ([]byte, error) { return p, nil }, nil
	case UTF16BE:
		endianness = unicode.BigEndian
	case UTF16LE:
		endianness = unicode.LittleEndian
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "text encoding %d", int(enc))
	}
	codec := unicode.UTF16(endianness, unicode.IgnoreBOM)
	return func(p []byte) ([]byte, error) {
		out, err := codec.NewEncoder().Bytes(p)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "encode %v: %v", enc, err)
		}
		return out, nil
	}, nil
}
