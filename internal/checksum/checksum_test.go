package checksum

import (
	"bytes"
	"testing"

	"github.com/mewkiz/rgb48"
)

func TestWriteReadFrameRoundTrip(t *testing.T) {
	f := &rgb48.Frame{Data: []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9}, Width: 3, Height: 3, Planes: 1}

	buf := new(bytes.Buffer)
	if err := WriteFrame(buf, f); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	got, err := ReadFrame(bytes.NewReader(buf.Bytes()), 3, 3)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !f.Equal(got) {
		t.Fatalf("roundtrip mismatch")
	}
}

func TestReadFrameDetectsCorruption(t *testing.T) {
	f := &rgb48.Frame{Data: []uint16{1, 2, 3, 4}, Width: 2, Height: 2, Planes: 1}

	buf := new(bytes.Buffer)
	if err := WriteFrame(buf, f); err != nil {
		t.Fatal(err)
	}

	corrupted := buf.Bytes()
	corrupted[0] ^= 0xFF

	if _, err := ReadFrame(bytes.NewReader(corrupted), 2, 2); err == nil {
		t.Fatalf("expected CRC-16 mismatch error")
	}
}
