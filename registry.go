package streamhash

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/Giulio2002/streamhash/keccak"
	"github.com/Giulio2002/streamhash/sha1"
	"github.com/Giulio2002/streamhash/sha2"
	"github.com/Giulio2002/streamhash/sha3"
)

// Hasher is the variant independent view of a Session.
type Hasher interface {
	io.Writer
	Update(input []byte) error
	UpdateString(input string) error
	SetHMACKey(key []byte, format InputFormat) error
	Digest(opts *OutputOptions) (Digest, error)
	HMAC(opts *OutputOptions) (Digest, error)
	Variant() string
	BlockSize() int
	OutputLen() int
	Extendable() bool
	Rounds() int
}

// Factory creates a Hasher for one variant.
type Factory func(format InputFormat, opts ...Option) (Hasher, error)

var (
	registry = make(map[string]Factory)
	mu       sync.RWMutex
)

func init() {
	MustRegister("SHA-1", FactoryOf[sha1.State](sha1.New()))
	MustRegister("SHA-224", FactoryOf[sha2.State256](sha2.New224()))
	MustRegister("SHA-256", FactoryOf[sha2.State256](sha2.New256()))
	MustRegister("SHA-384", FactoryOf[sha2.State512](sha2.New384()))
	MustRegister("SHA-512", FactoryOf[sha2.State512](sha2.New512()))
	MustRegister("SHA3-224", FactoryOf[keccak.State](sha3.New224()))
	MustRegister("SHA3-256", FactoryOf[keccak.State](sha3.New256()))
	MustRegister("SHA3-384", FactoryOf[keccak.State](sha3.New384()))
	MustRegister("SHA3-512", FactoryOf[keccak.State](sha3.New512()))
	MustRegister("SHAKE128", FactoryOf[keccak.State](sha3.NewShake128()))
	MustRegister("SHAKE256", FactoryOf[keccak.State](sha3.NewShake256()))
	MustRegister("KECCAK-256", FactoryOf[keccak.State](sha3.NewKeccak256()))
}

// FactoryOf returns a Factory building sessions over adapter.
func FactoryOf[S any](adapter Adapter[S]) Factory {
	return func(format InputFormat, opts ...Option) (Hasher, error) {
		s, err := NewSession(adapter, format, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Register adds a variant. Names are case-insensitive and must be unique.
func Register(variant string, factory Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if variant == "" {
		return errors.New("variant name cannot be empty")
	}
	if factory == nil {
		return errors.New("factory cannot be nil")
	}
	key := strings.ToUpper(variant)
	if _, exists := registry[key]; exists {
		return errors.Errorf("variant %q already registered", variant)
	}
	registry[key] = factory
	return nil
}

// MustRegister is Register that panics on error.
func MustRegister(variant string, factory Factory) {
	if err := Register(variant, factory); err != nil {
		panic(err)
	}
}

// New creates a Hasher for the named variant. Unknown variants fail with a
// ConfigurationError.
func New(variant string, format InputFormat, opts ...Option) (Hasher, error) {
	mu.RLock()
	factory, ok := registry[strings.ToUpper(variant)]
	mu.RUnlock()

	if !ok {
		return nil, configError("variant", fmt.Sprintf("unsupported variant %q (supported: %s)", variant, strings.Join(Variants(), ", ")))
	}
	return factory(format, opts...)
}

// Variants returns the sorted names of all registered variants.
func Variants() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
