// Package formats provides parsers for binary container formats.
package formats

// Note: BMP (Windows bitmap) headers are parsed in bmp.go
