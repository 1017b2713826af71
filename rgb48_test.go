package rgb48

import (
	"bytes"
	"testing"

	"github.com/icza/mighty"
)

func encodeDecode(t *testing.T, f *Frame) *Frame {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := Encode(buf, f); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(bytes.NewReader(buf.Bytes()), f.Width, f.Height)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return got
}

func TestSinglePixelSinglePlane(t *testing.T) {
	eq := mighty.TestHelper(t)
	f := &Frame{Data: []uint16{0}, Width: 1, Height: 1, Planes: 1}

	buf := new(bytes.Buffer)
	if err := Encode(buf, f); err != nil {
		t.Fatal(err)
	}
	eq(buf.Bytes(), []byte{0x00, 0x80})

	got, err := Decode(bytes.NewReader(buf.Bytes()), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(got) {
		t.Fatalf("roundtrip mismatch: got %+v", got)
	}
}

func TestConstantPlane(t *testing.T) {
	data := make([]uint16, 16)
	for i := range data {
		data[i] = 1000
	}
	f := &Frame{Data: data, Width: 4, Height: 4, Planes: 1}
	got := encodeDecode(t, f)
	if !f.Equal(got) {
		t.Fatalf("constant plane roundtrip mismatch")
	}
}

func TestAlternatingSamples(t *testing.T) {
	f := &Frame{Data: []uint16{0, 65535, 0, 65535}, Width: 4, Height: 1, Planes: 1}
	got := encodeDecode(t, f)
	if !f.Equal(got) {
		t.Fatalf("alternating samples roundtrip mismatch")
	}
}

func TestRowBoundaryFixup(t *testing.T) {
	f := &Frame{Data: []uint16{10, 20, 30, 40}, Width: 2, Height: 2, Planes: 1}
	got := encodeDecode(t, f)
	if !f.Equal(got) {
		t.Fatalf("row-boundary roundtrip mismatch")
	}
}

func TestMultiPlane(t *testing.T) {
	// 2x2 RGB, interleaved.
	data := []uint16{
		100, 200, 300, // row0 col0 (R,G,B)
		110, 210, 310, // row0 col1
		120, 220, 320, // row1 col0
		130, 230, 330, // row1 col1
	}
	f := &Frame{Data: data, Width: 2, Height: 2, Planes: 3}
	got := encodeDecode(t, f)
	if !f.Equal(got) {
		t.Fatalf("multi-plane roundtrip mismatch")
	}
}

func TestHeaderEconomy(t *testing.T) {
	for planes := 1; planes <= MaxPlanes; planes++ {
		f := &Frame{Data: make([]uint16, 2*2*planes), Width: 2, Height: 2, Planes: planes}
		buf := new(bytes.Buffer)
		if err := Encode(buf, f); err != nil {
			t.Fatal(err)
		}
		first := buf.Bytes()[0]
		if got, want := first>>6, byte(planes-1); got != want {
			t.Fatalf("planes=%d: header top bits = %d, want %d", planes, got, want)
		}
		if first&0x3F != 0 {
			t.Fatalf("planes=%d: header padding bits not zero: %08b", planes, first)
		}
	}
}

func TestByteAlignedTail(t *testing.T) {
	f := &Frame{Data: []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9}, Width: 3, Height: 3, Planes: 1}
	buf := new(bytes.Buffer)
	if err := Encode(buf, f); err != nil {
		t.Fatal(err)
	}
	// Append junk after the real stream; the decoder must not read it.
	withJunk := append(append([]byte{}, buf.Bytes()...), 0xFF, 0xFF, 0xFF)
	got, err := Decode(bytes.NewReader(withJunk), 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(got) {
		t.Fatalf("byte-aligned tail roundtrip mismatch")
	}
}

func TestInvalidPlaneCount(t *testing.T) {
	if _, err := NewFrame(1, 1, 0); err == nil {
		t.Fatalf("expected error for plane count 0")
	}
	if _, err := NewFrame(1, 1, 5); err == nil {
		t.Fatalf("expected error for plane count 5")
	}
}
