package bitio

import (
	"io"
	"runtime"

	"github.com/mewkiz/pkg/errutil"
)

// Writer packs bits of arbitrary width into bytes and drains full bytes to
// an underlying byte sink as soon as they accumulate.
//
// Bits are appended LSB-adjacent to the existing fractional tail and drained
// MSB-first: Write(bits, n) appends n bits to the stream in MSB-first order,
// so the first bit written occupies the earliest (most significant) position
// not yet emitted.
type Writer struct {
	dst    io.Writer
	stage  uint128
	length uint
}

// NewWriter returns a Writer that drains bytes to dst. Callers must invoke
// Flush when done; if the Writer is garbage collected without an explicit
// Flush, a best-effort flush is attempted and its error discarded.
func NewWriter(dst io.Writer) *Writer {
	w := &Writer{dst: dst}
	runtime.SetFinalizer(w, func(w *Writer) {
		_ = w.Flush()
	})
	return w
}

// Write appends the low n bits of bits to the stream, n >= 0. For n > 64 the
// upper n-64 bits are treated as zero, which accommodates unary prefixes
// longer than 64 bits: the caller passes bits=1 (the terminating one) with
// n = h+1 and this method supplies the n-64 (that is, h-63) leading zero
// bits ahead of the final 64-bit field itself.
func (w *Writer) Write(bits uint64, n int) error {
	if n < 0 {
		return errutil.Newf("bitio: Write: negative bit width %d", n)
	}
	for n > 64 {
		chunk := n - 64
		if chunk > 64 {
			chunk = 64
		}
		if err := w.writeChunk(0, uint(chunk)); err != nil {
			return err
		}
		n -= chunk
	}
	return w.writeChunk(bits, uint(n))
}

// writeChunk appends the low n bits (0 <= n <= 64) of value and drains any
// full bytes that accumulate.
func (w *Writer) writeChunk(value uint64, n uint) error {
	if n == 0 {
		return nil
	}
	w.stage = w.stage.shl(n).or(fromUint64(maskLow64(value, n)))
	w.length += n
	for w.length >= 8 {
		b := byte(w.stage.shr(w.length - 8).lo)
		if _, err := w.dst.Write([]byte{b}); err != nil {
			return errutil.Err(err)
		}
		w.length -= 8
	}
	return nil
}

// Flush pads the staging bits with zeros up to the next byte boundary (if
// any remain), drains them, and flushes the underlying sink if it exposes a
// Flush method. Flushing an already byte-aligned writer emits no additional
// byte.
func (w *Writer) Flush() error {
	if w.length > 0 {
		pad := 8 - w.length
		b := byte(w.stage.shl(pad).lo)
		if _, err := w.dst.Write([]byte{b}); err != nil {
			return errutil.Err(err)
		}
		w.length = 0
	}
	if f, ok := w.dst.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return errutil.Err(err)
		}
	}
	return nil
}
