package config

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Giulio2002/streamhash"
)

const fullConfig = `
variant: sha-256
input: HEX
encoding: UTF16LE
rounds: 2
hmac_key:
  value: "6b6579"
  format: HEX
output:
  format: B64
  outputUpper: true
  b64Pad: ""
`

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("variant: SHA-1\n"))
	require.NoError(t, err)
	require.Equal(t, &Config{
		Variant:  "SHA-1",
		Input:    DefaultInput,
		Encoding: DefaultEncoding,
		Rounds:   DefaultRounds,
		Output:   Output{Format: DefaultOutputFormat},
	}, cfg)
	require.False(t, cfg.Keyed())
}

func TestParseFull(t *testing.T) {
	cfg, err := Load(strings.NewReader(fullConfig))
	require.NoError(t, err)
	require.Equal(t, "sha-256", cfg.Variant)
	require.Equal(t, 2, cfg.Rounds)
	require.Equal(t, &Key{Value: "6b6579", Format: "HEX"}, cfg.HMACKey)
	require.Equal(t, "B64", cfg.Output.Format)
	require.True(t, *cfg.Output.OutputUpper)
	require.Equal(t, "", *cfg.Output.B64Pad)
	require.Nil(t, cfg.Output.ShakeLen)
}

func TestHMACJob(t *testing.T) {
	cfg, err := Parse([]byte(fullConfig))
	require.NoError(t, err)

	h, err := cfg.NewHasher(logrus.New())
	require.NoError(t, err)
	require.Equal(t, "SHA-256", h.Variant())
	require.Equal(t, 2, h.Rounds())

	d, err := cfg.Sum(h, []byte(hex.EncodeToString([]byte("message"))))
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("message"))
	require.Equal(t, mac.Sum(nil), d.Bytes())

	out, err := cfg.Render(d)
	require.NoError(t, err)
	require.Equal(t, d.Base64(), out)
	require.NotContains(t, out, "=")
}

func TestShakeJob(t *testing.T) {
	cfg, err := Parse([]byte("variant: SHAKE128\noutput: {shakeLen: 256}\n"))
	require.NoError(t, err)

	h, err := cfg.NewHasher(nil)
	require.NoError(t, err)
	d, err := cfg.Sum(h, []byte(""))
	require.NoError(t, err)

	out, err := cfg.Render(d)
	require.NoError(t, err)
	require.Equal(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26", out)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{name: "fractional rounds", yaml: "variant: SHA-1\nrounds: 1.2\n", want: "rounds"},
		{name: "zero rounds", yaml: "variant: SHA-1\nrounds: 0\n", want: "rounds"},
		{name: "negative rounds", yaml: "variant: SHA-1\nrounds: -1\n", want: "rounds"},
		{name: "missing variant", yaml: "rounds: 1\n", want: "variant is required"},
		{name: "unknown variant", yaml: "variant: MD5\n", want: "MD5"},
		{name: "non-boolean outputUpper", yaml: "variant: SHA-1\noutput: {outputUpper: 1}\n", want: "outputUpper"},
		{name: "non-string b64Pad", yaml: "variant: SHA-1\noutput: {b64Pad: 1}\n", want: "b64Pad"},
		{name: "bad shakeLen", yaml: "variant: SHAKE256\noutput: {shakeLen: 12}\n", want: "shakeLen"},
		{name: "unknown key", yaml: "variant: SHA-1\nsalt: x\n", want: "salt"},
		{name: "bad input format", yaml: "variant: SHA-1\ninput: UTF8\n", want: "input format"},
		{name: "bad encoding", yaml: "variant: SHA-1\nencoding: LATIN1\n", want: "text encoding"},
		{name: "bad key format", yaml: "variant: SHA-1\nhmac_key: {value: k, format: RAW}\n", want: "hmac_key"},
		{name: "bad output format", yaml: "variant: SHA-1\noutput: {format: OCTAL}\n", want: "output format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, streamhash.ErrConfiguration)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseReportsEveryProblem(t *testing.T) {
	_, err := Parse([]byte("variant: MD5\nrounds: 0\noutput: {format: OCTAL}\n"))
	require.ErrorIs(t, err, streamhash.ErrConfiguration)
	for _, want := range []string{"MD5", "rounds", "OCTAL"} {
		require.Contains(t, err.Error(), want)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("variant: [unterminated"))
	require.ErrorIs(t, err, streamhash.ErrConfiguration)
	require.Contains(t, err.Error(), "parse config")

	var cerr *streamhash.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "config", cerr.Option)
	require.NotNil(t, cerr.Unwrap())
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(fullConfig))
	require.NoError(t, err)

	data, err := cfg.Marshal()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestSumKeyedRequiresUnkeyedSession(t *testing.T) {
	cfg, err := Parse([]byte("variant: SHA-256\n"))
	require.NoError(t, err)
	h, err := cfg.NewHasher(nil)
	require.NoError(t, err)
	require.NoError(t, h.SetHMACKey([]byte("k"), streamhash.Text))

	_, err = cfg.Sum(h, []byte("x"))
	require.ErrorIs(t, err, streamhash.ErrState)
}
