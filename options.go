package streamhash

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Giulio2002/streamhash/convert"
)

// InputFormat is the input handling mode of a session or key.
type InputFormat = convert.Format

// TextEncoding is the encoding applied to Text input.
type TextEncoding = convert.Encoding

// Input formats.
const (
	Hex    = convert.Hex
	Text   = convert.Text
	Base64 = convert.Base64
	Bytes  = convert.Bytes
)

// Text encodings.
const (
	UTF8    = convert.UTF8
	UTF16BE = convert.UTF16BE
	UTF16LE = convert.UTF16LE
)

type hmacKey struct {
	value  []byte
	format InputFormat
}

type settings struct {
	encoding TextEncoding
	rounds   int
	key      *hmacKey
	logger   logrus.FieldLogger
}

func defaultSettings() settings {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return settings{encoding: UTF8, rounds: 1, logger: logger}
}

// Option configures a Session.
type Option func(*settings)

// WithEncoding sets the text encoding used for Text input and Text keys.
// Defaults to UTF8.
func WithEncoding(e TextEncoding) Option {
	return func(s *settings) { s.encoding = e }
}

// WithRounds sets the digest stretching factor. It must be at least 1.
func WithRounds(n int) Option {
	return func(s *settings) { s.rounds = n }
}

// WithHMACKey installs an HMAC key as soon as the session is created.
func WithHMACKey(key []byte, format InputFormat) Option {
	return func(s *settings) {
		s.key = &hmacKey{value: append([]byte(nil), key...), format: format}
	}
}

// WithLogger sets the logger for debug events. Logging is discarded by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
