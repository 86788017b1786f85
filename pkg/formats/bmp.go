package formats

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Faultbox/bin2hdr/pkg/blob"
)

// BMP layout sizes.
const (
	BMPFileHeaderSize = 14
	BMPInfoHeaderSize = 40
	RGBQuadSize       = 4

	// bmpHeadersSize is the smallest valid pixel data offset.
	bmpHeadersSize = BMPFileHeaderSize + BMPInfoHeaderSize
	// bmpMinSize covers both headers and the first color record.
	bmpMinSize = bmpHeadersSize + RGBQuadSize
)

// BIRGB marks uncompressed pixel data, the only compression rendered.
const BIRGB = 0

// BMP format errors.
var (
	ErrInvalidBMPMagic       = errors.New("invalid BMP magic: expected 'BM'")
	ErrTruncatedBMPData      = errors.New("truncated BMP data")
	ErrPixelOffsetOutOfRange = errors.New("BMP pixel data offset out of range")
)

// BMPFileHeader is the 14-byte header at offset 0 of a BMP file.
type BMPFileHeader struct {
	Signature       [2]byte
	FileSize        uint32
	Reserved1       uint16
	Reserved2       uint16
	PixelDataOffset uint32 // from the start of the file
}

// BMPInfoHeader is the 40-byte BITMAPINFOHEADER following the file header.
type BMPInfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // negative = top-down rows
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// RGBQuad is one color table record.
type RGBQuad struct {
	Blue, Green, Red, Reserved uint8
}

// BMP is a parsed bitmap container. PixelData aliases the input buffer.
type BMP struct {
	FileHeader BMPFileHeader
	InfoHeader BMPInfoHeader
	Color      RGBQuad // first color table record only
	PixelData  []byte
}

// ParseBMP reads the headers of a BMP file held in memory. Fields are read at
// fixed offsets in little-endian order; nothing is copied.
func ParseBMP(data []byte) (*BMP, error) {
	if len(data) < bmpMinSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncatedBMPData, len(data), bmpMinSize)
	}

	le := binary.LittleEndian
	b := &BMP{}

	// File header
	fh := &b.FileHeader
	copy(fh.Signature[:], data[0:2])
	if fh.Signature != [2]byte{'B', 'M'} {
		return nil, ErrInvalidBMPMagic
	}
	fh.FileSize = le.Uint32(data[2:6])
	fh.Reserved1 = le.Uint16(data[6:8])
	fh.Reserved2 = le.Uint16(data[8:10])
	fh.PixelDataOffset = le.Uint32(data[10:14])

	// Info header
	ih := &b.InfoHeader
	info := data[BMPFileHeaderSize : BMPFileHeaderSize+BMPInfoHeaderSize]
	ih.Size = le.Uint32(info[0:4])
	ih.Width = int32(le.Uint32(info[4:8]))
	ih.Height = int32(le.Uint32(info[8:12]))
	ih.Planes = le.Uint16(info[12:14])
	ih.BitCount = le.Uint16(info[14:16])
	ih.Compression = le.Uint32(info[16:20])
	ih.SizeImage = le.Uint32(info[20:24])
	ih.XPelsPerMeter = int32(le.Uint32(info[24:28]))
	ih.YPelsPerMeter = int32(le.Uint32(info[28:32]))
	ih.ColorsUsed = le.Uint32(info[32:36])
	ih.ColorsImportant = le.Uint32(info[36:40])

	// First color table record
	c := data[bmpHeadersSize:bmpMinSize]
	b.Color = RGBQuad{Blue: c[0], Green: c[1], Red: c[2], Reserved: c[3]}

	off := uint64(fh.PixelDataOffset)
	if off < bmpHeadersSize || off > uint64(len(data)) {
		return nil, fmt.Errorf("%w: offset %d, data length %d", ErrPixelOffsetOutOfRange, off, len(data))
	}
	b.PixelData = data[off:]

	return b, nil
}

// ParseBMPFile parses a BMP file from disk.
func ParseBMPFile(path string) (*BMP, error) {
	data, err := blob.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading BMP file: %w", err)
	}
	return ParseBMP(data)
}

// PixelDataOffset returns the byte offset of the pixel data from the start
// of the container.
func (b *BMP) PixelDataOffset() int {
	return int(b.FileHeader.PixelDataOffset)
}

// TopDown reports whether rows are stored top row first.
func (b *BMP) TopDown() bool {
	return b.InfoHeader.Height < 0
}

// AbsHeight returns the number of rows regardless of row order.
func (b *BMP) AbsHeight() int {
	h := int(b.InfoHeader.Height)
	if h < 0 {
		return -h
	}
	return h
}

// Stride returns the size of one padded row in bytes.
func (b *BMP) Stride() int {
	return Stride(int(b.InfoHeader.Width), int(b.InfoHeader.BitCount))
}

// Stride returns the DWORD-aligned row size for the given width and bit depth.
func Stride(width, bitCount int) int {
	return ((width*bitCount + 31) / 32) * 4
}

// AppendBMP appends a BMP container holding ih, one color record and pixels to
// dst. The file header is filled in; pixel data starts right after the color
// record.
func AppendBMP(dst []byte, ih BMPInfoHeader, color RGBQuad, pixels []byte) []byte {
	le := binary.LittleEndian
	if ih.Size == 0 {
		ih.Size = BMPInfoHeaderSize
	}

	dst = append(dst, 'B', 'M')
	dst = le.AppendUint32(dst, uint32(bmpMinSize+len(pixels)))
	dst = le.AppendUint16(dst, 0)
	dst = le.AppendUint16(dst, 0)
	dst = le.AppendUint32(dst, bmpMinSize)

	dst = le.AppendUint32(dst, ih.Size)
	dst = le.AppendUint32(dst, uint32(ih.Width))
	dst = le.AppendUint32(dst, uint32(ih.Height))
	dst = le.AppendUint16(dst, ih.Planes)
	dst = le.AppendUint16(dst, ih.BitCount)
	dst = le.AppendUint32(dst, ih.Compression)
	dst = le.AppendUint32(dst, ih.SizeImage)
	dst = le.AppendUint32(dst, uint32(ih.XPelsPerMeter))
	dst = le.AppendUint32(dst, uint32(ih.YPelsPerMeter))
	dst = le.AppendUint32(dst, ih.ColorsUsed)
	dst = le.AppendUint32(dst, ih.ColorsImportant)

	dst = append(dst, color.Blue, color.Green, color.Red, color.Reserved)
	return append(dst, pixels...)
}
