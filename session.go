package streamhash

import (
	"github.com/sirupsen/logrus"

	"github.com/Giulio2002/streamhash/convert"
	"github.com/Giulio2002/streamhash/packed"
)

// HMAC pad patterns, one byte repeated across a word.
const (
	innerPad = 0x36363636
	outerPad = 0x5c5c5c5c
)

// Adapter is the capability set of one hash variant. S is the variant's
// opaque compression state. Implementations must be pure: Compress, Finalize
// and Clone never retain or modify the slices and states they are given.
type Adapter[S any] interface {
	// Variant returns the variant name, such as "SHA-256".
	Variant() string
	// BlockSize returns the compression block width in bits, a multiple of 32.
	BlockSize() int
	// OutputLen returns the native digest length in bits, 0 when extendable.
	OutputLen() int
	// Order returns the byte order of packed words.
	Order() packed.Order
	// Extendable reports whether the caller chooses the output length.
	Extendable() bool
	// Init returns a fresh initial state.
	Init() S
	// Compress folds one block into state and returns the new state.
	Compress(block []uint32, state S) S
	// Finalize pads remLen bits of rem, given processed bits already folded
	// into state, and returns at least outLen bits of output. remLen may
	// exceed the block size.
	Finalize(rem []uint32, remLen int, processed uint64, state S, outLen int) []uint32
	// Clone returns a copy of state that shares no memory with it.
	Clone(state S) S
}

// Session is a streaming hash computation over one Adapter. A Session is not
// safe for concurrent use. Digest and HMAC work on a copy of the state, so
// they may be called any number of times, interleaved with Update.
type Session[S any] struct {
	adapter   Adapter[S]
	format    InputFormat
	encoding  TextEncoding
	rounds    int
	converter convert.Func
	logger    logrus.FieldLogger

	state        S
	remainder    []uint32
	remainderLen int
	pending      []byte
	processedLen uint64
	updateCalled bool
	keySet       bool
	keyWithIPad  []uint32
	keyWithOPad  []uint32
}

// NewSession returns a session hashing format input with adapter.
func NewSession[S any](adapter Adapter[S], format InputFormat, opts ...Option) (*Session[S], error) {
	cfg := defaultSettings()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.rounds < 1 {
		return nil, configError("rounds", "must be an integer >= 1")
	}
	if bs := adapter.BlockSize(); bs <= 0 || bs%32 != 0 {
		return nil, configError("block size", "must be a positive multiple of 32")
	}
	converter, err := convert.New(format, cfg.encoding, adapter.Order())
	if err != nil {
		return nil, &ConfigurationError{Option: "input format", Reason: err.Error(), Err: err}
	}

	s := &Session[S]{
		adapter:   adapter,
		format:    format,
		encoding:  cfg.encoding,
		rounds:    cfg.rounds,
		converter: converter,
		logger:    cfg.logger.WithField("variant", adapter.Variant()),
		state:     adapter.Init(),
	}
	if cfg.key != nil {
		if err := s.SetHMACKey(cfg.key.value, cfg.key.format); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Variant returns the adapter's variant name.
func (s *Session[S]) Variant() string { return s.adapter.Variant() }

// BlockSize returns the block size in bits.
func (s *Session[S]) BlockSize() int { return s.adapter.BlockSize() }

// OutputLen returns the native digest length in bits, 0 for extendable output.
func (s *Session[S]) OutputLen() int { return s.adapter.OutputLen() }

// Extendable reports whether digests need an explicit ShakeLen.
func (s *Session[S]) Extendable() bool { return s.adapter.Extendable() }

// Rounds returns the digest stretching factor.
func (s *Session[S]) Rounds() int { return s.rounds }

// Update appends input to the message. Every whole block is compressed
// immediately and the tail is kept as the remainder. Text re-encoded as UTF-16
// may end in an incomplete UTF-8 sequence, which is held until the next call.
// Malformed input fails with ErrInvalidInput and leaves the session unchanged.
func (s *Session[S]) Update(input []byte) error {
	data := input
	if len(s.pending) > 0 {
		data = append(append([]byte(nil), s.pending...), input...)
	}
	n := convert.Pending(s.format, s.encoding, data)
	data, held := data[:len(data)-n], data[len(data)-n:]

	v, err := s.converter(data, s.remainder, s.remainderLen)
	if err != nil {
		return err
	}
	s.updateCalled = true
	s.pending = append([]byte(nil), held...)

	blockSize := s.adapter.BlockSize()
	blockWords := blockSize >> 5
	words, bitLen := v.Words, v.BitLen
	for bitLen >= blockSize {
		s.state = s.adapter.Compress(words[:blockWords], s.state)
		words = words[blockWords:]
		bitLen -= blockSize
		s.processedLen += uint64(blockSize)
	}
	s.remainder = packed.Clone(words[:packed.WordLen(bitLen)])
	s.remainderLen = bitLen
	return nil
}

// tail returns a copy of the remainder with any held text bytes encoded as the
// end of the message. Finalize accepts a tail longer than one block.
func (s *Session[S]) tail() (packed.Value, error) {
	if len(s.pending) == 0 {
		return packed.Value{Words: packed.Clone(s.remainder), BitLen: s.remainderLen}, nil
	}
	return s.converter(s.pending, s.remainder, s.remainderLen)
}

// UpdateString is Update for string input.
func (s *Session[S]) UpdateString(input string) error {
	return s.Update([]byte(input))
}

// Write implements io.Writer on top of Update.
func (s *Session[S]) Write(p []byte) (int, error) {
	if err := s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Digest returns the digest of the input so far. Extendable-output variants
// need opts.ShakeLen. With more than one round, each further round hashes the
// previous output, truncated to the output length, from a fresh state.
func (s *Session[S]) Digest(opts *OutputOptions) (Digest, error) {
	if s.keySet {
		return Digest{}, stateError("digest", "digest requested after HMAC key installed")
	}
	out, err := NormalizeOutputOptions(opts)
	if err != nil {
		return Digest{}, err
	}

	outLen := s.adapter.OutputLen()
	if s.adapter.Extendable() {
		if out.ShakeLen == UnspecifiedLength {
			return Digest{}, configError("shakeLen", "length required for extendable output")
		}
		outLen = out.ShakeLen
	}

	rem, err := s.tail()
	if err != nil {
		return Digest{}, err
	}
	words := s.adapter.Finalize(rem.Words, rem.BitLen, s.processedLen, s.adapter.Clone(s.state), outLen)
	if s.rounds > 1 {
		s.logger.WithField("rounds", s.rounds).Debug("stretching digest")
	}
	for i := 1; i < s.rounds; i++ {
		prev := packed.Truncate(words, outLen, s.adapter.Order())
		words = s.adapter.Finalize(prev, outLen, 0, s.adapter.Init(), outLen)
	}
	return newDigest(words, outLen, s.adapter.Order(), out), nil
}

// SetHMACKey installs key, read as format input, for HMAC. It must be called
// at most once, before any Update, and never on an extendable-output variant.
func (s *Session[S]) SetHMACKey(key []byte, format InputFormat) error {
	switch {
	case s.keySet:
		return stateError("set HMAC key", "key already installed")
	case s.updateCalled:
		return stateError("set HMAC key", "key must be installed before accumulation")
	case s.adapter.Extendable():
		return stateError("set HMAC key", "extendable-output variants do not support keyed hashing")
	}

	keyConverter, err := convert.New(format, s.encoding, s.adapter.Order())
	if err != nil {
		return &ConfigurationError{Option: "key format", Reason: err.Error(), Err: err}
	}
	k, err := keyConverter(key, nil, 0)
	if err != nil {
		return err
	}

	blockSize := s.adapter.BlockSize()
	if k.BitLen > blockSize {
		outLen := s.adapter.OutputLen()
		k = packed.Value{
			Words:  s.adapter.Finalize(k.Words, k.BitLen, 0, s.adapter.Init(), outLen),
			BitLen: outLen,
		}
	}

	blockWords := blockSize >> 5
	ipad := make([]uint32, blockWords)
	opad := make([]uint32, blockWords)
	for i := 0; i < blockWords; i++ {
		var w uint32
		if i < len(k.Words) {
			w = k.Words[i]
		}
		ipad[i] = w ^ innerPad
		opad[i] = w ^ outerPad
	}

	s.state = s.adapter.Compress(ipad, s.state)
	s.keyWithIPad = ipad
	s.keyWithOPad = opad
	s.processedLen = uint64(blockSize)
	s.keySet = true
	s.logger.WithField("keyBits", k.BitLen).Debug("hmac key installed")
	return nil
}

// HMAC returns the HMAC of the input so far. The round count is not applied.
func (s *Session[S]) HMAC(opts *OutputOptions) (Digest, error) {
	if !s.keySet {
		return Digest{}, stateError("hmac", "no key installed")
	}
	out, err := NormalizeOutputOptions(opts)
	if err != nil {
		return Digest{}, err
	}

	rem, err := s.tail()
	if err != nil {
		return Digest{}, err
	}
	outLen := s.adapter.OutputLen()
	inner := s.adapter.Finalize(rem.Words, rem.BitLen, s.processedLen, s.adapter.Clone(s.state), outLen)
	outer := s.adapter.Compress(s.keyWithOPad, s.adapter.Init())
	// The outer pad block is already folded into outer.
	words := s.adapter.Finalize(packed.Truncate(inner, outLen, s.adapter.Order()), outLen, uint64(s.adapter.BlockSize()), outer, outLen)
	return newDigest(words, outLen, s.adapter.Order(), out), nil
}
