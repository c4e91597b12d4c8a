// Package config loads a hashing job from YAML.
//
//	variant: SHA-256
//	input: TEXT
//	encoding: UTF8
//	rounds: 1
//	hmac_key: { value: "key", format: TEXT }
//	output: { format: HEX, outputUpper: false, b64Pad: "=", shakeLen: 256 }
package config

import (
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Giulio2002/streamhash"
	"github.com/Giulio2002/streamhash/convert"
	"github.com/Giulio2002/streamhash/internal/decode"
)

// Defaults applied to omitted fields.
const (
	DefaultInput        = "TEXT"
	DefaultEncoding     = "UTF8"
	DefaultRounds       = 1
	DefaultOutputFormat = "HEX"
)

// Config describes one hashing job.
type Config struct {
	Variant  string `mapstructure:"variant" yaml:"variant"`
	Input    string `mapstructure:"input" yaml:"input"`
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
	Rounds   int    `mapstructure:"rounds" yaml:"rounds"`
	HMACKey  *Key   `mapstructure:"hmac_key" yaml:"hmac_key,omitempty"`
	Output   Output `mapstructure:"output" yaml:"output"`
}

// Key is an HMAC key and the format it is written in.
type Key struct {
	Value  string `mapstructure:"value" yaml:"value"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Output selects the digest rendering.
type Output struct {
	Format                   string `mapstructure:"format" yaml:"format"`
	streamhash.OutputOptions `mapstructure:",squash" yaml:",inline"`
}

// Load reads a YAML job description from r.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes and validates a YAML job description. Malformed YAML and
// invalid fields both fail with a *streamhash.ConfigurationError.
func Parse(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		err = errors.Wrap(err, "parse config")
		return nil, &streamhash.ConfigurationError{Option: "config", Reason: err.Error(), Err: err}
	}

	cfg := &Config{
		Input:    DefaultInput,
		Encoding: DefaultEncoding,
		Rounds:   DefaultRounds,
		Output:   Output{Format: DefaultOutputFormat},
	}
	if err := decode.Strict(raw, cfg); err != nil {
		var result *multierror.Error
		for _, msg := range decode.Messages(err) {
			result = multierror.Append(result, errors.New(msg))
		}
		return nil, wrap(result)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Variant == "" {
		result = multierror.Append(result, errors.New("variant is required"))
	} else if !known(c.Variant) {
		result = multierror.Append(result, errors.Errorf("unsupported variant %q", c.Variant))
	}
	if _, err := convert.ParseFormat(c.Input); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := convert.ParseEncoding(c.Encoding); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Rounds < 1 {
		result = multierror.Append(result, errors.Errorf("rounds must be an integer >= 1, got %d", c.Rounds))
	}
	if c.HMACKey != nil {
		if _, err := convert.ParseFormat(c.HMACKey.Format); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "hmac_key"))
		}
	}
	if _, err := convert.ParseOutputFormat(c.Output.Format); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := streamhash.NormalizeOutputOptions(&c.Output.OutputOptions); err != nil {
		result = multierror.Append(result, err)
	}
	return wrap(result)
}

// NewHasher builds the session described by c.
func (c *Config) NewHasher(logger logrus.FieldLogger) (streamhash.Hasher, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	format, _ := convert.ParseFormat(c.Input)
	encoding, _ := convert.ParseEncoding(c.Encoding)

	opts := []streamhash.Option{
		streamhash.WithEncoding(encoding),
		streamhash.WithRounds(c.Rounds),
		streamhash.WithLogger(logger),
	}
	if c.HMACKey != nil {
		keyFormat, _ := convert.ParseFormat(c.HMACKey.Format)
		opts = append(opts, streamhash.WithHMACKey([]byte(c.HMACKey.Value), keyFormat))
	}
	return streamhash.New(c.Variant, format, opts...)
}

// Keyed reports whether the job computes an HMAC.
func (c *Config) Keyed() bool { return c.HMACKey != nil }

// Sum feeds input to h and returns the digest, or the HMAC when a key is
// configured.
func (c *Config) Sum(h streamhash.Hasher, input []byte) (streamhash.Digest, error) {
	if err := h.Update(input); err != nil {
		return streamhash.Digest{}, err
	}
	if c.Keyed() {
		return h.HMAC(&c.Output.OutputOptions)
	}
	return h.Digest(&c.Output.OutputOptions)
}

// Render formats d with the configured output format.
func (c *Config) Render(d streamhash.Digest) (string, error) {
	format, err := convert.ParseOutputFormat(c.Output.Format)
	if err != nil {
		return "", err
	}
	return d.Text(format)
}

// Marshal encodes c back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func known(variant string) bool {
	for _, v := range streamhash.Variants() {
		if strings.EqualFold(v, variant) {
			return true
		}
	}
	return false
}

func wrap(result *multierror.Error) error {
	if err := result.ErrorOrNil(); err != nil {
		return &streamhash.ConfigurationError{Option: "config", Reason: err.Error(), Err: err}
	}
	return nil
}
