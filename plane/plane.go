// Package plane drives the raster-scan codec for a single 2D plane of
// 16-bit samples: the causal-neighborhood predictor, the activity-derived
// Rice parameter, and the scan that sequences them through package rice.
package plane

// View is a non-owning window over a contiguous 16-bit sample buffer.
// Sample (col, row) is addressable at base+row*RowStride+col*SampleStride;
// every such index must lie inside the backing buffer.
type View struct {
	Width, Height           int
	SampleStride, RowStride int
}

// sampleIndex returns the buffer offset of sample (col, row).
func (v View) sampleIndex(col, row int) int {
	return row*v.RowStride + col*v.SampleStride
}

// ReadView pairs a View with a read-only backing slice.
type ReadView struct {
	View
	Data []uint16
}

// At returns the sample at (col, row).
func (v ReadView) At(col, row int) uint16 {
	return v.Data[v.sampleIndex(col, row)]
}

// WriteView pairs a View with a mutable backing slice.
type WriteView struct {
	View
	Data []uint16
}

// At returns the sample at (col, row).
func (v WriteView) At(col, row int) uint16 {
	return v.Data[v.sampleIndex(col, row)]
}

// Set stores x at (col, row).
func (v WriteView) Set(col, row int, x uint16) {
	v.Data[v.sampleIndex(col, row)] = x
}
