//go:build ignore

// This program generates the sample bitmap compiled into the viewer.
// Run with: go run generate_sample.go
// then regenerate ../sample_bmp.go with go generate.
package main

import (
	"os"

	"github.com/Faultbox/bin2hdr/pkg/formats"
)

func main() {
	const width, height = 32, 16
	stride := formats.Stride(width, 24)

	// Rows are stored bottom-up (positive height)
	pixels := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		row := pixels[(height-1-y)*stride:]
		for x := 0; x < width; x++ {
			r, g, b := byte(x*8), byte(y*16), byte(128)
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				r, g, b = 255, 255, 255
			}
			row[x*3+0] = b
			row[x*3+1] = g
			row[x*3+2] = r
		}
	}

	data := formats.AppendBMP(nil, formats.BMPInfoHeader{
		Width:    width,
		Height:   height,
		Planes:   1,
		BitCount: 24,
	}, formats.RGBQuad{}, pixels)

	if err := os.WriteFile("sample.bmp", data, 0644); err != nil {
		panic(err)
	}
}
