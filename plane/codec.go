package plane

import (
	"github.com/mewkiz/rgb48/bitio"
	"github.com/mewkiz/rgb48/rice"
)

// predict computes the fixed median-edge predictor P(a,b,c): the smaller of
// a and b if c dominates both, the larger if c is dominated by both, and a
// planar extrapolation otherwise. Inputs are unsigned 16-bit samples; the
// planar branch may exceed 16 bits in either direction, hence the signed
// 32-bit result.
func predict(a, b, c uint16) int32 {
	minAB, maxAB := a, b
	if minAB > maxAB {
		minAB, maxAB = maxAB, minAB
	}
	switch {
	case c >= maxAB:
		return int32(minAB)
	case c <= minAB:
		return int32(maxAB)
	default:
		return int32(a) + int32(b) - int32(c)
	}
}

// activityK returns the smallest k such that 3<<k is at least the local
// activity |d-b|+|b-c|+|c-a|, the Rice parameter used to code the residual
// at this sample. Holding the neighbor tuple fixed, increasing any one of
// the three absolute differences can only grow the activity and so can only
// grow or hold k, never shrink it.
func activityK(a, b, c, d uint16) uint {
	activity := abs32(int32(d)-int32(b)) + abs32(int32(b)-int32(c)) + abs32(int32(c)-int32(a))
	var k uint
	for int32(3<<k) < activity {
		k++
	}
	return k
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Encode writes the Rice-coded prediction residuals of src, in raster order,
// to w. Flushing is the caller's responsibility (frame framing byte-aligns
// each plane stream on its own).
func Encode(w *bitio.Writer, src ReadView) error {
	var a, b, c, d uint16
	for row := 0; row < src.Height; row++ {
		a, c = 0, 0
		for col := 0; col < src.Width; col++ {
			x := src.At(col, row)
			d = 0
			if row > 0 && col+1 < src.Width {
				d = src.At(col+1, row-1)
			}

			k := activityK(a, b, c, d)
			residual := int32(x) - predict(a, b, c)
			if err := rice.Encode(w, k, residual); err != nil {
				return err
			}

			c, b, a = b, d, x
		}
		// Row-boundary fix-up: seed the next row's initial b with the first
		// sample of the row just finished, rather than leaving the stale
		// value carried over from the rightmost column. Encoder and decoder
		// must perform this identically; it is a format contract, not a bug.
		b = src.At(0, row)
	}
	return nil
}

// Decode reads Rice-coded prediction residuals from r, in raster order, and
// reconstructs them into dst.
func Decode(r *bitio.Reader, dst WriteView) error {
	var a, b, c, d uint16
	for row := 0; row < dst.Height; row++ {
		a, c = 0, 0
		for col := 0; col < dst.Width; col++ {
			d = 0
			if row > 0 && col+1 < dst.Width {
				d = dst.At(col+1, row-1)
			}

			k := activityK(a, b, c, d)
			residual, err := rice.Decode(r, k)
			if err != nil {
				return err
			}

			x := uint16(predict(a, b, c) + residual)
			dst.Set(col, row, x)

			c, b, a = b, d, x
		}
		b = dst.At(0, row)
	}
	return nil
}
