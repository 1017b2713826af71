// Package rgb48 implements a lossless compression codec for 16-bit-per-
// channel raster images, modeled on JPEG-LS-style median-edge prediction
// with Rice/Golomb entropy coding parameterized by local activity.
//
// A Frame owns a plane-interleaved buffer of 16-bit samples (1 to 4 planes);
// Encode and Decode convert between that buffer and the on-disk codestream.
package rgb48

import (
	"io"

	"github.com/mewkiz/pkg/errutil"
	"github.com/mewkiz/rgb48/bitio"
	"github.com/mewkiz/rgb48/plane"
)

// MaxPlanes is the largest plane count the wire format can represent: the
// header stores plane count minus one in 2 bits.
const MaxPlanes = 4

// Frame is an owned buffer of plane-interleaved 16-bit samples: samples for
// plane p sit at offsets p, p+P, p+2P, ... within Data.
type Frame struct {
	Data          []uint16
	Width, Height int
	Planes        int
}

// NewFrame allocates a zeroed Frame with the given dimensions and plane
// count (1 <= planes <= MaxPlanes).
func NewFrame(width, height, planes int) (*Frame, error) {
	if planes < 1 || planes > MaxPlanes {
		return nil, errutil.Newf("rgb48: NewFrame: invalid plane count %d", planes)
	}
	return &Frame{
		Data:   make([]uint16, width*height*planes),
		Width:  width,
		Height: height,
		Planes: planes,
	}, nil
}

// view returns the read-only interleaved view of plane p.
func (f *Frame) view(p int) plane.ReadView {
	return plane.ReadView{
		View: plane.View{
			Width: f.Width, Height: f.Height,
			SampleStride: f.Planes, RowStride: f.Planes * f.Width,
		},
		Data: f.Data[p:],
	}
}

// writeView returns the mutable interleaved view of plane p.
func (f *Frame) writeView(p int) plane.WriteView {
	return plane.WriteView{
		View: plane.View{
			Width: f.Width, Height: f.Height,
			SampleStride: f.Planes, RowStride: f.Planes * f.Width,
		},
		Data: f.Data[p:],
	}
}

// Equal reports whether f and g have matching dimensions, plane count, and
// sample data.
func (f *Frame) Equal(g *Frame) bool {
	if f.Width != g.Width || f.Height != g.Height || f.Planes != g.Planes {
		return false
	}
	if len(f.Data) != len(g.Data) {
		return false
	}
	for i, x := range f.Data {
		if g.Data[i] != x {
			return false
		}
	}
	return true
}

// Encode writes the frame header and each plane's codestream to w: a 2-bit
// P-1 header, byte-aligned, followed by each plane's Rice-coded residual
// stream, each itself byte-aligned on entry and exit.
func Encode(w io.Writer, f *Frame) error {
	hdr := bitio.NewWriter(w)
	if err := hdr.Write(uint64(f.Planes-1), 2); err != nil {
		return err
	}
	if err := hdr.Flush(); err != nil {
		return err
	}
	for p := 0; p < f.Planes; p++ {
		bw := bitio.NewWriter(w)
		if err := plane.Encode(bw, f.view(p)); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a frame of the given dimensions from r. The plane count is
// recovered from the header; callers do not supply it.
func Decode(r io.Reader, width, height int) (*Frame, error) {
	hdr := bitio.NewReader(r)
	p, err := hdr.Read(2)
	if err != nil {
		return nil, err
	}
	planes := int(p) + 1

	f, err := NewFrame(width, height, planes)
	if err != nil {
		return nil, err
	}
	for i := 0; i < planes; i++ {
		br := bitio.NewReader(r)
		if err := plane.Decode(br, f.writeView(i)); err != nil {
			return nil, err
		}
	}
	return f, nil
}
