package streamhash

import (
	"github.com/hashicorp/go-multierror"

	"github.com/Giulio2002/streamhash/internal/decode"
)

// UnspecifiedLength is the ShakeLen value meaning "not supplied".
const UnspecifiedLength = -1

// OutputOptions holds the caller supplied formatting options of a digest
// request. A nil field was not supplied and takes its default.
type OutputOptions struct {
	OutputUpper *bool   `mapstructure:"outputUpper" yaml:"outputUpper"`
	B64Pad      *string `mapstructure:"b64Pad" yaml:"b64Pad"`
	ShakeLen    *int    `mapstructure:"shakeLen" yaml:"shakeLen"`
}

// Output is the normalized form of OutputOptions.
type Output struct {
	OutputUpper bool
	B64Pad      string
	ShakeLen    int
}

// NormalizeOutputOptions applies defaults to opts and validates it. A nil opts
// yields all defaults: lowercase hex, "=" padding, unspecified length.
func NormalizeOutputOptions(opts *OutputOptions) (Output, error) {
	out := Output{B64Pad: "=", ShakeLen: UnspecifiedLength}
	if opts == nil {
		return out, nil
	}
	if opts.OutputUpper != nil {
		out.OutputUpper = *opts.OutputUpper
	}
	if opts.B64Pad != nil {
		out.B64Pad = *opts.B64Pad
	}
	if opts.ShakeLen != nil {
		if n := *opts.ShakeLen; n <= 0 || n%8 != 0 {
			return Output{}, configError("shakeLen", "must be a positive multiple of 8")
		}
		out.ShakeLen = *opts.ShakeLen
	}
	return out, nil
}

// ParseOutputOptions decodes loosely typed formatting options, such as those
// read from JSON or YAML. It fails with a ConfigurationError when outputUpper
// is not a boolean, b64Pad is not a string, shakeLen is not an integer, or an
// unknown key is present. Every problem is reported.
func ParseOutputOptions(raw map[string]interface{}) (*OutputOptions, error) {
	var opts OutputOptions
	if len(raw) == 0 {
		return &opts, nil
	}

	var result *multierror.Error
	if err := decode.Strict(raw, &opts); err != nil {
		for _, msg := range decode.Messages(err) {
			result = multierror.Append(result, configError("output options", msg))
		}
	}
	if _, err := NormalizeOutputOptions(&opts); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &opts, nil
}
