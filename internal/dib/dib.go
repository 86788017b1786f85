// Package dib builds device-independent bitmap sections from parsed BMP
// containers. A Section owns a writable copy of the pixel rows laid out as the
// descriptor says and can be handed to a display backend.
package dib

import (
	"errors"
	"fmt"
	"image"

	"github.com/Faultbox/bin2hdr/pkg/formats"
)

// MaxSectionBytes caps the bit buffer a Section may allocate.
const MaxSectionBytes = 512 << 20

// Section errors.
var (
	ErrAllocationFailed   = errors.New("failed to create bitmap section")
	ErrPixelDataTruncated = errors.New("pixel data shorter than bitmap")
	ErrReleased           = errors.New("bitmap section already released")
)

// Info describes a section: the BMP info header plus the single leading
// color table record.
type Info struct {
	Header formats.BMPInfoHeader
	Colors [1]formats.RGBQuad
}

// Section is a writable bitmap. Bits holds the scan lines in the order the
// descriptor defines: bottom-up for positive heights, top-down for negative.
type Section struct {
	info     Info
	width    int
	height   int
	stride   int
	topDown  bool
	bits     []byte
	released bool
}

// New allocates a zeroed section for info.
func New(info Info) (*Section, error) {
	h := info.Header
	switch {
	case h.Width <= 0:
		return nil, fmt.Errorf("%w: width %d", ErrAllocationFailed, h.Width)
	case h.Height == 0:
		return nil, fmt.Errorf("%w: height 0", ErrAllocationFailed)
	case h.Planes != 1:
		return nil, fmt.Errorf("%w: %d planes", ErrAllocationFailed, h.Planes)
	case h.Compression != formats.BIRGB:
		return nil, fmt.Errorf("%w: compression %d not supported", ErrAllocationFailed, h.Compression)
	case h.BitCount != 24 && h.BitCount != 32:
		return nil, fmt.Errorf("%w: %d bpp not supported", ErrAllocationFailed, h.BitCount)
	}

	width := int(h.Width)
	height := int(h.Height)
	topDown := height < 0
	if topDown {
		height = -height
	}

	stride := formats.Stride(width, int(h.BitCount))
	if int64(stride)*int64(height) > MaxSectionBytes {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d bytes", ErrAllocationFailed, width, height, MaxSectionBytes)
	}

	return &Section{
		info:    info,
		width:   width,
		height:  height,
		stride:  stride,
		topDown: topDown,
		bits:    make([]byte, stride*height),
	}, nil
}

// Build creates a section from a parsed BMP and copies its pixel rows in.
func Build(b *formats.BMP) (*Section, error) {
	s, err := New(Info{Header: b.InfoHeader, Colors: [1]formats.RGBQuad{b.Color}})
	if err != nil {
		return nil, err
	}
	if _, err := s.SetBits(0, s.height, b.PixelData); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// SetBits copies count scan lines from src into the section starting at scan
// line start. Scan lines are numbered in storage order. It returns the number
// of lines copied.
func (s *Section) SetBits(start, count int, src []byte) (int, error) {
	if s.released {
		return 0, ErrReleased
	}
	if start < 0 || count < 0 || start+count > s.height {
		return 0, fmt.Errorf("scan range %d+%d outside %d lines", start, count, s.height)
	}
	need := count * s.stride
	if len(src) < need {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrPixelDataTruncated, need, len(src))
	}
	copy(s.bits[start*s.stride:], src[:need])
	return count, nil
}

// Info returns the descriptor the section was created with.
func (s *Section) Info() Info { return s.info }

// Width returns the width in pixels.
func (s *Section) Width() int { return s.width }

// Height returns the number of rows.
func (s *Section) Height() int { return s.height }

// Stride returns the padded row size in bytes.
func (s *Section) Stride() int { return s.stride }

// TopDown reports whether scan line 0 is the top row.
func (s *Section) TopDown() bool { return s.topDown }

// Bits returns the raw scan lines in storage order.
func (s *Section) Bits() []byte { return s.bits }

// Row returns the pixel bytes of display row y, where y = 0 is the top of
// the image.
func (s *Section) Row(y int) []byte {
	scan := y
	if !s.topDown {
		scan = s.height - 1 - y
	}
	off := scan * s.stride
	return s.bits[off : off+s.width*s.bytesPerPixel()]
}

func (s *Section) bytesPerPixel() int {
	return int(s.info.Header.BitCount) / 8
}

// RGBA converts the section to an RGBA image, top row first. BGR and BGRX
// pixels are opaque.
func (s *Section) RGBA() (*image.RGBA, error) {
	if s.released {
		return nil, ErrReleased
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	bpp := s.bytesPerPixel()

	for y := 0; y < s.height; y++ {
		row := s.Row(y)
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < s.width; x++ {
			i := x * bpp
			d := x * 4
			dst[d+0] = row[i+2]
			dst[d+1] = row[i+1]
			dst[d+2] = row[i]
			dst[d+3] = 0xFF
		}
	}
	return img, nil
}

// Release frees the bit buffer. A section may be released once.
func (s *Section) Release() error {
	if s.released {
		return ErrReleased
	}
	s.released = true
	s.bits = nil
	return nil
}

// Released reports whether Release has been called.
func (s *Section) Released() bool { return s.released }
