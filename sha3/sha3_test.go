package sha3

import (
	"bytes"
	"encoding/hex"
	"testing"

	xsha3 "golang.org/x/crypto/sha3"

	"github.com/Giulio2002/streamhash/keccak"
	"github.com/Giulio2002/streamhash/packed"
)

func sum(a Adapter, data []byte, outLen int) []byte {
	v := packed.AppendBytes(nil, 0, data, packed.LittleEndian)
	s, words, n := a.Init(), v.Words, v.BitLen
	var processed uint64
	for n >= a.rate {
		s = a.Compress(words[:a.rate/32], s)
		words, n, processed = words[a.rate/32:], n-a.rate, processed+uint64(a.rate)
	}
	return packed.ToBytes(a.Finalize(words, n, processed, s, outLen), outLen, packed.LittleEndian)
}

func testData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestKeccak256Vectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{in: "hello", want: "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	}
	for _, tc := range tests {
		got := hex.EncodeToString(sum(NewKeccak256(), []byte(tc.in), 256))
		if got != tc.want {
			t.Fatalf("keccak256(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFixedVariants(t *testing.T) {
	tests := []struct {
		adapter Adapter
		ref     func([]byte) []byte
	}{
		{New224(), func(b []byte) []byte { s := xsha3.Sum224(b); return s[:] }},
		{New256(), func(b []byte) []byte { s := xsha3.Sum256(b); return s[:] }},
		{New384(), func(b []byte) []byte { s := xsha3.Sum384(b); return s[:] }},
		{New512(), func(b []byte) []byte { s := xsha3.Sum512(b); return s[:] }},
	}
	for _, tc := range tests {
		for _, n := range []int{0, 1, 71, 72, 135, 136, 143, 144, 500} {
			data := testData(n)
			want := tc.ref(data)
			if got := sum(tc.adapter, data, tc.adapter.size); !bytes.Equal(got, want) {
				t.Fatalf("%s len=%d: got %x want %x", tc.adapter.variant, n, got, want)
			}
		}
	}
}

func TestShake(t *testing.T) {
	data := testData(300)
	for _, outLen := range []int{8, 24, 256, 1352, 4096} {
		want128 := make([]byte, outLen/8)
		xsha3.ShakeSum128(want128, data)
		if got := sum(NewShake128(), data, outLen); !bytes.Equal(got, want128) {
			t.Fatalf("shake128 outLen=%d: got %x want %x", outLen, got, want128)
		}

		want256 := make([]byte, outLen/8)
		xsha3.ShakeSum256(want256, data)
		if got := sum(NewShake256(), data, outLen); !bytes.Equal(got, want256) {
			t.Fatalf("shake256 outLen=%d: got %x want %x", outLen, got, want256)
		}
	}
}

func TestShakeOutputMasked(t *testing.T) {
	a := NewShake128()
	out := a.Finalize(nil, 0, 0, a.Init(), 24)
	if len(out) != 1 || out[0]>>24 != 0 {
		t.Fatalf("24-bit output not masked: %#x", out)
	}
}

func TestCompressIsPure(t *testing.T) {
	a := New256()
	var s keccak.State
	block := make([]uint32, a.rate/32)
	block[0] = 1
	first := a.Compress(block, s)
	second := a.Compress(block, s)
	if first != second || s != (keccak.State{}) {
		t.Fatalf("Compress mutated its input state")
	}
}
