// Package tiffio adapts between TIFF files and the rgb48.Frame planar
// sample buffer: a producer that delivers a raw planar buffer with known
// width, height, and plane count, and a consumer that writes one back out.
// Neither side is part of the core codec.
package tiffio

import (
	"image"
	"image/color"
	"io"
	"log"

	"golang.org/x/image/tiff"

	"github.com/mewkiz/pkg/errutil"
	"github.com/mewkiz/rgb48"
	"github.com/mewkiz/rgb48/internal/bufseekio"
)

// Read decodes a 16-bit-per-channel TIFF from r into a Frame. Gray16 images
// decode to a single plane; RGB(16) images (represented by Go's image
// package as RGBA64, alpha discarded) decode to three interleaved planes.
// TIFF has no standard 16-bit photometric interpretation for 2- or
// 4-channel data, so those plane counts are not reachable through this
// adapter; callers needing them must build a Frame directly.
func Read(r io.ReadSeeker) (*rgb48.Frame, error) {
	buffered := bufseekio.NewReadSeeker(r)
	img, err := tiff.Decode(buffered)
	if err != nil {
		return nil, errutil.Err(err)
	}

	switch px := img.(type) {
	case *image.Gray16:
		return readGray16(px), nil
	case *image.RGBA64:
		return readRGBA64(px), nil
	case *image.NRGBA64:
		return readNRGBA64(px), nil
	default:
		return nil, errutil.Newf("tiffio: Read: unsupported TIFF pixel format %T", img)
	}
}

func readGray16(px *image.Gray16) *rgb48.Frame {
	b := px.Bounds()
	width, height := b.Dx(), b.Dy()
	f, _ := rgb48.NewFrame(width, height, 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.Data[y*width+x] = px.Gray16At(b.Min.X+x, b.Min.Y+y).Y
		}
	}
	return f
}

func readRGBA64(px *image.RGBA64) *rgb48.Frame {
	b := px.Bounds()
	width, height := b.Dx(), b.Dy()
	f, _ := rgb48.NewFrame(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := px.RGBA64At(b.Min.X+x, b.Min.Y+y)
			i := (y*width + x) * 3
			f.Data[i], f.Data[i+1], f.Data[i+2] = c.R, c.G, c.B
		}
	}
	return f
}

func readNRGBA64(px *image.NRGBA64) *rgb48.Frame {
	b := px.Bounds()
	width, height := b.Dx(), b.Dy()
	f, _ := rgb48.NewFrame(width, height, 3)
	if px.Opaque() {
		log.Printf("tiffio: Read: discarding fully-opaque alpha channel")
	} else {
		log.Printf("tiffio: Read: discarding non-trivial alpha channel; rgb48 carries no alpha plane")
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := px.NRGBA64At(b.Min.X+x, b.Min.Y+y)
			i := (y*width + x) * 3
			f.Data[i], f.Data[i+1], f.Data[i+2] = c.R, c.G, c.B
		}
	}
	return f
}

// Write encodes f back out as a TIFF: a Gray16 image for single-plane
// frames, an RGBA64 image (opaque alpha) for three-plane frames. Two- and
// four-plane frames have no standard TIFF representation and return an
// error rather than silently dropping a plane.
func Write(w io.Writer, f *rgb48.Frame) error {
	switch f.Planes {
	case 1:
		img := image.NewGray16(image.Rect(0, 0, f.Width, f.Height))
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				img.SetGray16(x, y, color.Gray16{Y: f.Data[y*f.Width+x]})
			}
		}
		if err := tiff.Encode(w, img, nil); err != nil {
			return errutil.Err(err)
		}
		return nil
	case 3:
		img := image.NewRGBA64(image.Rect(0, 0, f.Width, f.Height))
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				i := (y*f.Width + x) * 3
				img.SetRGBA64(x, y, color.RGBA64{
					R: f.Data[i], G: f.Data[i+1], B: f.Data[i+2], A: 0xFFFF,
				})
			}
		}
		if err := tiff.Encode(w, img, nil); err != nil {
			return errutil.Err(err)
		}
		return nil
	default:
		return errutil.Newf("tiffio: Write: no TIFF representation for a %d-plane frame", f.Planes)
	}
}
