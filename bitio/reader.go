package bitio

import (
	"io"

	"github.com/mewkiz/pkg/errutil"
)

// Reader reads bits of arbitrary width from an underlying byte stream.
//
// Bits are staged in a 128-bit word as they are pulled in a byte at a time;
// only the low length bits of the staging word are meaningful at any point.
// Peek and Read both return the first (earliest-emitted) bit of the
// requested span in the highest of the returned n positions, i.e. bits are
// consumed MSB-first.
type Reader struct {
	src    io.Reader
	stage  uint128
	length uint
	tmp    [1]byte
}

// NewReader returns a Reader that pulls bytes from src as needed.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// fill ensures at least n bits (1 <= n <= 64) are staged, reading one byte at
// a time from the underlying stream.
func (r *Reader) fill(n uint) error {
	for r.length < n {
		if _, err := io.ReadFull(r.src, r.tmp[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return errutil.Err(io.ErrUnexpectedEOF)
			}
			return errutil.Err(err)
		}
		r.stage = r.stage.shl(8).or(fromUint64(uint64(r.tmp[0])))
		r.length += 8
	}
	return nil
}

// Peek returns the next n bits (1 <= n <= 64) without consuming them.
func (r *Reader) Peek(n uint) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, errutil.Newf("bitio: Peek: invalid bit width %d", n)
	}
	if err := r.fill(n); err != nil {
		return 0, err
	}
	shifted := r.stage.shr(r.length - n)
	return maskLow64(shifted.lo, n), nil
}

// Read returns the next n bits (1 <= n <= 64) and advances the cursor past
// them.
func (r *Reader) Read(n uint) (uint64, error) {
	v, err := r.Peek(n)
	if err != nil {
		return 0, err
	}
	r.length -= n
	return v, nil
}
