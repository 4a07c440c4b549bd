package riff

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestCursor_ReadUint32ByteOrder(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78}

	big := NewCursor(data, binary.BigEndian)
	v, err := big.ReadUint32()
	if err != nil {
		t.Fatalf("big-endian read failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("big-endian value = %#x, want 0x12345678", v)
	}

	little := NewCursor(data, binary.LittleEndian)
	v, err = little.ReadUint32()
	if err != nil {
		t.Fatalf("little-endian read failed: %v", err)
	}
	if v != 0x78563412 {
		t.Errorf("little-endian value = %#x, want 0x78563412", v)
	}
}

func TestCursor_ReadTagIgnoresByteOrder(t *testing.T) {
	data := []byte("abcd")
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		c := NewCursor(data, order)
		tag, err := c.ReadTag()
		if err != nil {
			t.Fatalf("ReadTag failed: %v", err)
		}
		if tag != (FourCC{'a', 'b', 'c', 'd'}) {
			t.Errorf("tag under %v = %s, want bytes in file order", order, tag)
		}
	}
}

func TestCursor_ShortReads(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		seek int
	}{
		{name: "empty", data: nil},
		{name: "three bytes", data: []byte{1, 2, 3}},
		{name: "seek past end", data: []byte{1, 2, 3, 4}, seek: 100},
		{name: "seek near end", data: []byte{1, 2, 3, 4, 5, 6}, seek: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(tc.data, binary.BigEndian)
			c.Seek(tc.seek)
			before := c.Pos()

			if _, err := c.ReadUint32(); err == nil {
				t.Fatal("ReadUint32 succeeded past end of data")
			} else {
				var te *TruncatedError
				if !errors.As(err, &te) {
					t.Fatalf("error = %v, want TruncatedError", err)
				}
				if te.Offset != before {
					t.Errorf("error offset = %d, want %d", te.Offset, before)
				}
			}
			if c.Pos() != before {
				t.Errorf("failed read moved the cursor: %d -> %d", before, c.Pos())
			}

			if _, err := c.ReadTag(); err == nil {
				t.Error("ReadTag succeeded past end of data")
			}
		})
	}
}

func TestCursor_AdvanceAndRemaining(t *testing.T) {
	c := NewCursor(make([]byte, 12), binary.BigEndian)
	if c.Remaining() != 12 {
		t.Fatalf("Remaining = %d, want 12", c.Remaining())
	}
	if _, err := c.ReadUint32(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ReadTag(); err != nil {
		t.Fatal(err)
	}
	if c.Pos() != 8 || c.Remaining() != 4 {
		t.Errorf("Pos/Remaining = %d/%d, want 8/4", c.Pos(), c.Remaining())
	}
}

func TestFourCC_Parse(t *testing.T) {
	tag, err := ParseFourCC("sndH")
	if err != nil {
		t.Fatalf("ParseFourCC failed: %v", err)
	}
	if tag != TagSndH {
		t.Errorf("tag = %s, want 'sndH'", tag)
	}

	for _, bad := range []string{"", "abc", "abcde", "ab\xc3\xa9"} {
		if _, err := ParseFourCC(bad); err == nil {
			t.Errorf("ParseFourCC(%q) succeeded, want error", bad)
		}
	}
}

func TestFourCC_ReversedAndString(t *testing.T) {
	if TagXFIR.Reversed() != TagRIFX {
		t.Errorf("'XFIR' reversed = %s, want 'RIFX'", TagXFIR.Reversed())
	}
	if got := TagLIST.String(); got != "'LIST'" {
		t.Errorf("String = %s, want 'LIST' quoted", got)
	}
	raw := FourCC{0x01, 0xFF, 'a', 'b'}
	if got := raw.String(); got == "'\x01\xffab'" {
		t.Errorf("non-printable tag rendered as text: %s", got)
	}
}
