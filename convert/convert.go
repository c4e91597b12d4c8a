// Package convert turns caller input into packed bit buffers and renders
// packed digests back into text or bytes.
package convert

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned when input text is malformed for its format.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownFormat is returned for an unsupported format or text encoding name.
	ErrUnknownFormat = errors.New("unknown format")
)

// Format is the input handling mode of a session or key.
type Format int

const (
	// Hex is an even-length string of hexadecimal digits.
	Hex Format = iota
	// Text is a string that is encoded with the session's text Encoding.
	Text
	// Base64 is standard base64, padding optional.
	Base64
	// Bytes is a raw byte buffer.
	Bytes
)

var formatNames = map[Format]string{
	Hex:    "HEX",
	Text:   "TEXT",
	Base64: "B64",
	Bytes:  "BYTES",
}

// String implements the fmt.Stringer interface.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseFormat parses an input format name. ARRAYBUFFER and UINT8ARRAY are
// accepted as synonyms of BYTES.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(s) {
	case "HEX":
		return Hex, nil
	case "TEXT":
		return Text, nil
	case "B64":
		return Base64, nil
	case "BYTES", "ARRAYBUFFER", "UINT8ARRAY":
		return Bytes, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "input format %q", s)
}

// Encoding is the text encoding applied to Text input.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16BE
	UTF16LE
)

// String implements the fmt.Stringer interface.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF8"
	case UTF16BE:
		return "UTF16BE"
	case UTF16LE:
		return "UTF16LE"
	}
	return "UNKNOWN"
}

// ParseEncoding parses a text encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToUpper(s) {
	case "UTF8", "UTF-8":
		return UTF8, nil
	case "UTF16BE", "UTF-16BE":
		return UTF16BE, nil
	case "UTF16LE", "UTF-16LE":
		return UTF16LE, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "text encoding %q", s)
}

// OutputFormat selects how a digest is rendered.
type OutputFormat int

const (
	OutputHex OutputFormat = iota
	OutputBase64
	OutputBytes
)

// String implements the fmt.Stringer interface.
func (f OutputFormat) String() string {
	switch f {
	case OutputHex:
		return "HEX"
	case OutputBase64:
		return "B64"
	case OutputBytes:
		return "BYTES"
	}
	return "UNKNOWN"
}

// ParseOutputFormat parses an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToUpper(s) {
	case "HEX":
		return OutputHex, nil
	case "B64":
		return OutputBase64, nil
	case "BYTES", "ARRAYBUFFER", "UINT8ARRAY":
		return OutputBytes, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "output format %q", s)
}
