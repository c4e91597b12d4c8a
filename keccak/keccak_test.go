package keccak

import (
	"bytes"
	"encoding/binary"
	"testing"

	"golang.org/x/crypto/sha3"
)

// sponge is a minimal byte-oriented sponge over State used to check the
// permutation against x/crypto.
func sponge(data []byte, rate int, dsbyte byte, outLen int) []byte {
	var a State
	words := func(b []byte) []uint32 {
		w := make([]uint32, len(b)/4)
		for i := range w {
			w[i] = binary.LittleEndian.Uint32(b[4*i:])
		}
		return w
	}
	for len(data) >= rate {
		a.Absorb(words(data[:rate]))
		data = data[rate:]
	}
	block := make([]byte, rate)
	copy(block, data)
	block[len(data)] ^= dsbyte
	block[rate-1] ^= 0x80
	a.Absorb(words(block))

	out := make([]byte, 0, outLen)
	for _, w := range a.Squeeze(rate/4, (outLen+3)/4) {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out[:outLen]
}

func TestSHA3Empty(t *testing.T) {
	got := sponge(nil, 136, 0x06, 32)
	want := sha3.Sum256(nil)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("sha3-256(nil) = %x, want %x", got, want)
	}
}

func TestKeccak256Hello(t *testing.T) {
	got := sponge([]byte("hello"), 136, 0x01, 32)
	ref := sha3.NewLegacyKeccak256()
	ref.Write([]byte("hello"))
	if want := ref.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("keccak256(hello) = %x, want %x", got, want)
	}
}

func TestSqueezeAcrossPermutations(t *testing.T) {
	// SHAKE128 output longer than its 168-byte rate needs a second permutation.
	data := []byte("squeeze me")
	got := sponge(data, 168, 0x1f, 400)
	want := make([]byte, 400)
	sha3.ShakeSum128(want, data)
	if !bytes.Equal(got, want) {
		t.Fatalf("shake128 mismatch\ngot:  %x\nwant: %x", got, want)
	}
}

func TestXorInOddWord(t *testing.T) {
	var a State
	a.XorIn([]uint32{0x11111111, 0x22222222, 0x33333333})
	if a[0] != 0x2222222211111111 || a[1] != 0x33333333 {
		t.Fatalf("XorIn lanes = %#x %#x", a[0], a[1])
	}
}

func FuzzSponge(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("hello"))
	f.Add(make([]byte, 136))
	f.Add(make([]byte, 136*3+50))

	f.Fuzz(func(t *testing.T, data []byte) {
		want := sha3.Sum256(data)
		if got := sponge(data, 136, 0x06, 32); !bytes.Equal(got, want[:]) {
			t.Fatalf("sha3-256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}
	})
}

func BenchmarkF1600(b *testing.B) {
	var a State
	b.SetBytes(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		F1600(&a)
	}
}
