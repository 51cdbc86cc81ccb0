package fastlz

import (
	"bytes"
	"testing"
)

func TestAPIContract_GoldenEncodings(t *testing.T) {
	src := bytes.Repeat([]byte{'a'}, 32)
	tests := []struct {
		level int
		want  []byte
	}{
		// "aa" literal, 25-byte match at distance 2, "aaaaa" literal tail.
		{level: Level1, want: []byte{0x01, 'a', 'a', 0xE0, 0x10, 0x01, 0x04, 'a', 'a', 'a', 'a', 'a'}},
		{level: Level2, want: []byte{0x21, 'a', 'a', 0xE0, 0x10, 0x01, 0x04, 'a', 'a', 'a', 'a', 'a'}},
	}

	for _, tt := range tests {
		got, err := CompressLevel(src, tt.level)
		if err != nil {
			t.Fatalf("CompressLevel(%d) failed: %v", tt.level, err)
		}

		if !bytes.Equal(got, tt.want) {
			t.Fatalf("level %d encoding mismatch:\n got % x\nwant % x", tt.level, got, tt.want)
		}
	}
}

func TestAPIContract_ShortInputIsOneLiteral(t *testing.T) {
	src := []byte("short")

	cmp1, err := CompressLevel(src, Level1)
	if err != nil {
		t.Fatalf("CompressLevel(1) failed: %v", err)
	}
	if want := append([]byte{0x04}, src...); !bytes.Equal(cmp1, want) {
		t.Fatalf("level 1: got % x want % x", cmp1, want)
	}

	cmp2, err := CompressLevel(src, Level2)
	if err != nil {
		t.Fatalf("CompressLevel(2) failed: %v", err)
	}
	if want := append([]byte{0x24}, src...); !bytes.Equal(cmp2, want) {
		t.Fatalf("level 2: got % x want % x", cmp2, want)
	}
}

func TestAPIContract_DecompressCanonicalStream(t *testing.T) {
	// Literal "a", then a long-code match: length 6+1+3 at distance 1.
	compressed := []byte{0x00, 'a', 0xE0, 0x01, 0x00}
	expected := bytes.Repeat([]byte{'a'}, 11)

	out, err := Decompress(compressed, nil)
	if err != nil {
		t.Fatalf("Decompress failed for canonical stream: %v", err)
	}

	if !bytes.Equal(out, expected) {
		t.Fatalf("canonical stream decoded data mismatch: %q", out)
	}
}

func TestAPIContract_EmptyInputCompressesToEmpty(t *testing.T) {
	for _, level := range []int{Level1, Level2} {
		cmp, err := CompressLevel(nil, level)
		if err != nil {
			t.Fatalf("CompressLevel(%d) failed: %v", level, err)
		}
		if len(cmp) != 0 {
			t.Fatalf("level %d: expected empty stream, got % x", level, cmp)
		}
	}
}
