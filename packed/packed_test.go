package packed

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendBytesBigEndian(t *testing.T) {
	v := AppendBytes(nil, 0, []byte("ABCDE"), BigEndian)
	want := Value{Words: []uint32{0x41424344, 0x45000000}, BitLen: 40}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("AppendBytes mismatch (-want +got):\n%s", diff)
	}

	v = AppendBytes(v.Words, v.BitLen, []byte("FGH"), BigEndian)
	want = Value{Words: []uint32{0x41424344, 0x45464748}, BitLen: 64}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("AppendBytes continuation mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendBytesLittleEndian(t *testing.T) {
	v := AppendBytes([]uint32{0x00000041}, 8, []byte("BCD"), LittleEndian)
	want := Value{Words: []uint32{0x44434241}, BitLen: 32}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("AppendBytes mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendBytesDoesNotAlias(t *testing.T) {
	existing := []uint32{0x41000000}
	v := AppendBytes(existing, 8, []byte{0x42}, BigEndian)
	v.Words[0] = 0
	if existing[0] != 0x41000000 {
		t.Fatalf("existing words modified: %#x", existing[0])
	}
}

func TestRoundTripBytes(t *testing.T) {
	data := make([]byte, 37)
	for i := range data {
		data[i] = byte(i * 7)
	}
	for _, o := range []Order{BigEndian, LittleEndian} {
		v := AppendBytes(nil, 0, data, o)
		if got := v.Bytes(o); !bytes.Equal(got, data) {
			t.Fatalf("%v round trip: got %x want %x", o, got, data)
		}
	}
}

func TestTruncate(t *testing.T) {
	words := []uint32{0x11223344, 0xaabbccdd, 0xdeadbeef}

	tests := []struct {
		name   string
		bitLen int
		order  Order
		want   []uint32
	}{
		{name: "whole words", bitLen: 64, order: BigEndian, want: []uint32{0x11223344, 0xaabbccdd}},
		{name: "big-endian partial", bitLen: 56, order: BigEndian, want: []uint32{0x11223344, 0xaabbcc00}},
		{name: "little-endian partial", bitLen: 56, order: LittleEndian, want: []uint32{0x11223344, 0x00bbccdd}},
		{name: "single byte", bitLen: 8, order: LittleEndian, want: []uint32{0x00000044}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Truncate(words, tc.bitLen, tc.order)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Truncate mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if words[1] != 0xaabbccdd {
		t.Fatalf("Truncate modified its input")
	}
}
