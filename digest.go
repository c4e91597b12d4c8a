package streamhash

import (
	"github.com/pkg/errors"

	"github.com/Giulio2002/streamhash/convert"
	"github.com/Giulio2002/streamhash/packed"
)

// OutputFormat selects how Digest.Text renders a digest.
type OutputFormat = convert.OutputFormat

// Output formats.
const (
	OutputHex    = convert.OutputHex
	OutputBase64 = convert.OutputBase64
	OutputBytes  = convert.OutputBytes
)

// Digest is a finished digest together with the normalized formatting options
// of the request that produced it.
type Digest struct {
	words  []uint32
	bitLen int
	order  packed.Order
	output Output
}

func newDigest(words []uint32, bitLen int, order packed.Order, output Output) Digest {
	return Digest{
		words:  packed.Truncate(words, bitLen, order),
		bitLen: bitLen,
		order:  order,
		output: output,
	}
}

// BitLen returns the digest length in bits.
func (d Digest) BitLen() int { return d.bitLen }

// Hex returns the digest as hex, uppercase when OutputUpper was requested.
func (d Digest) Hex() string {
	return convert.EncodeHex(d.words, d.bitLen, d.order, d.output.OutputUpper)
}

// Base64 returns the digest as standard base64 padded with B64Pad.
func (d Digest) Base64() string {
	return convert.EncodeBase64(d.words, d.bitLen, d.order, d.output.B64Pad)
}

// Bytes returns the digest bytes.
func (d Digest) Bytes() []byte {
	return convert.EncodeBytes(d.words, d.bitLen, d.order)
}

// String implements the fmt.Stringer interface.
func (d Digest) String() string { return d.Hex() }

// Text renders the digest in format. OutputBytes yields the raw bytes as a
// string.
func (d Digest) Text(format OutputFormat) (string, error) {
	switch format {
	case OutputHex:
		return d.Hex(), nil
	case OutputBase64:
		return d.Base64(), nil
	case OutputBytes:
		return string(d.Bytes()), nil
	}
	return "", errors.Wrapf(convert.ErrUnknownFormat, "output format %d", int(format))
}
