// Package rice implements the entropy codec used to encode prediction
// residuals: a zig-zag fold from signed to unsigned integers, followed by a
// Golomb/Rice-style split of the unsigned value into a unary-coded quotient
// and a fixed-width binary remainder.
package rice

import (
	"github.com/mewkiz/rgb48/bitio"
)

// FoldZigZag maps a signed 32-bit integer to an unsigned 32-bit integer,
// interleaving positive and negative values:
//
//	 0 =>  0
//	-1 =>  1
//	 1 =>  2
//	-2 =>  3
//	 2 =>  4
//
// The arithmetic shift by 30 (rather than the usual width-1 shift used by a
// plain zig-zag fold) supplies the sign mask from bit 30 of x, since 2*x may
// already have set bit 31 for the largest representable residuals.
func FoldZigZag(x int32) uint32 {
	return uint32((x >> 30) ^ (2 * x))
}

// UnfoldZigZag reverses FoldZigZag.
func UnfoldZigZag(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// Encode writes the Rice/Golomb code for residual x under parameter k to w:
// a unary-coded quotient h+1 (h zero bits then a terminating one, where
// h = u>>k and u is the zig-zag fold of x) followed by the low k bits of u
// written raw.
func Encode(w *bitio.Writer, k uint, x int32) error {
	u := FoldZigZag(x)
	h := uint64(u) >> k
	// h zero bits followed by a single one bit is the bit pattern of the
	// (h+1)-bit value 1, written MSB-first.
	if err := w.Write(1, int(h+1)); err != nil {
		return err
	}
	if k == 0 {
		return nil
	}
	low := uint64(u) & (1<<k - 1)
	return w.Write(low, int(k))
}

// Decode reads a Rice/Golomb code under parameter k from r and returns the
// residual it represents.
func Decode(r *bitio.Reader, k uint) (int32, error) {
	var h uint64
	for {
		bit, err := r.Read(1)
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}
		h++
	}
	var low uint64
	if k > 0 {
		v, err := r.Read(k)
		if err != nil {
			return 0, err
		}
		low = v
	}
	u := uint32(h<<k) | uint32(low)
	return UnfoldZigZag(u), nil
}
