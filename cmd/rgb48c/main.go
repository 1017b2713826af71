// Command rgb48c encodes and decodes 16-bit-per-channel TIFF rasters using
// the rgb48 codec. It ingests/egresses TIFF and drives the core codec, but
// is not itself part of the core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/mewkiz/rgb48"
	"github.com/mewkiz/rgb48/internal/checksum"
	"github.com/mewkiz/rgb48/internal/tiffio"
)

func main() {
	var (
		force        bool
		useChecksum  bool
		decodeWidth  int
		decodeHeight int
	)
	flag.BoolVar(&force, "f", false, "force overwrite of an existing output file")
	flag.BoolVar(&useChecksum, "checksum", false, "wrap the encoded stream with a CRC-16 integrity trailer")
	flag.IntVar(&decodeWidth, "width", 0, "frame width in samples (required for decode)")
	flag.IntVar(&decodeHeight, "height", 0, "frame height in samples (required for decode)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		log.Fatalf("usage: rgb48c [flags] encode|decode <path>")
	}
	cmd, path := args[0], args[1]

	var err error
	switch cmd {
	case "encode":
		err = runEncode(path, force, useChecksum)
	case "decode":
		err = runDecode(path, force, useChecksum, decodeWidth, decodeHeight)
	default:
		log.Fatalf("unknown command %q; want encode or decode", cmd)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

func runEncode(tiffPath string, force, useChecksum bool) error {
	r, err := os.Open(tiffPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer r.Close()

	f, err := tiffio.Read(r)
	if err != nil {
		return errors.WithStack(err)
	}

	outPath := pathutil.TrimExt(tiffPath) + ".rgb48"
	if !force && osutil.Exists(outPath) {
		return errors.Errorf("output file %q already present; use -f to force overwrite", outPath)
	}
	w, err := os.Create(outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer w.Close()

	if useChecksum {
		if err := checksum.WriteFrame(w, f); err != nil {
			return errors.WithStack(err)
		}
	} else if err := rgb48.Encode(w, f); err != nil {
		return errors.WithStack(err)
	}

	fmt.Printf("encoded %s: %dx%d, %d plane(s)\n", outPath, f.Width, f.Height, f.Planes)
	return nil
}

func runDecode(encPath string, force, useChecksum bool, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("decode requires -width and -height")
	}

	r, err := os.Open(encPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer r.Close()

	var f *rgb48.Frame
	if useChecksum {
		f, err = checksum.ReadFrame(r, width, height)
	} else {
		f, err = rgb48.Decode(r, width, height)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	outPath := pathutil.TrimExt(encPath) + ".decoded.tif"
	if !force && osutil.Exists(outPath) {
		return errors.Errorf("output file %q already present; use -f to force overwrite", outPath)
	}
	w, err := os.Create(outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer w.Close()

	if err := tiffio.Write(w, f); err != nil {
		return errors.WithStack(err)
	}

	fmt.Printf("decoded %s: %dx%d, %d plane(s)\n", outPath, f.Width, f.Height, f.Planes)
	return nil
}
