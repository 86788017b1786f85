// Package arraylit renders binary data as a compilable array literal and
// reads such documents back.
package arraylit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValuesPerLine is the number of byte literals emitted per line.
const ValuesPerLine = 32

// Default names, matching the historical bin2hdr output.
const (
	DefaultName    = "BIN_DATA"
	DefaultGuard   = "BIN2HDR_INCL_H"
	DefaultPackage = "data"
)

// Document errors.
var (
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrInvalidName    = errors.New("invalid identifier")
	ErrMalformed      = errors.New("malformed array document")
	ErrLengthMismatch = errors.New("array length does not match element count")
)

// Format selects the language of the emitted document.
type Format int

const (
	// FormatC emits an include-guarded C header.
	FormatC Format = iota
	// FormatGo emits a generated Go source file.
	FormatGo
)

// String returns the format name as accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatC:
		return "c"
	case FormatGo:
		return "go"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the suffix appended to the input path for this format.
func (f Format) Ext() string {
	if f == FormatGo {
		return ".go"
	}
	return ".h"
}

// ParseFormat converts a format name ("c", "h", "go") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "c", "h", "":
		return FormatC, nil
	case "go":
		return FormatGo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Document describes the wrapper around the emitted array.
type Document struct {
	Format  Format
	Name    string // array identifier
	Guard   string // include guard macro (C only)
	Package string // package clause (Go only)
}

// DefaultDocument returns a C document with the default names.
func DefaultDocument() Document {
	return Document{
		Format:  FormatC,
		Name:    DefaultName,
		Guard:   DefaultGuard,
		Package: DefaultPackage,
	}
}

// Validate checks that every identifier the format needs is legal.
func (d Document) Validate() error {
	if !isIdent(d.Name) {
		return fmt.Errorf("%w: array name %q", ErrInvalidName, d.Name)
	}
	switch d.Format {
	case FormatC:
		if !isIdent(d.Guard) {
			return fmt.Errorf("%w: guard %q", ErrInvalidName, d.Guard)
		}
	case FormatGo:
		if !isIdent(d.Package) {
			return fmt.Errorf("%w: package %q", ErrInvalidName, d.Package)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, d.Format)
	}
	return nil
}

// Emit writes data as an array literal document to w. Each byte is formatted
// and written as it is visited. It returns the number of bytes written to w.
func Emit(w io.Writer, data []byte, doc Document) (int64, error) {
	if err := doc.Validate(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	switch doc.Format {
	case FormatC:
		fmt.Fprintf(bw, "#ifndef %s\n#define %s\n", doc.Guard, doc.Guard)
		fmt.Fprintf(bw, "const char* %s [%d] = {\n", doc.Name, len(data))
	case FormatGo:
		fmt.Fprintf(bw, "// Code generated by bin2hdr; DO NOT EDIT.\n\npackage %s\n\n", doc.Package)
		fmt.Fprintf(bw, "var %s = [%d]byte{\n", doc.Name, len(data))
	}

	var lit [6]byte
	for i, b := range data {
		formatByte(lit[:], b)
		if (i+1)%ValuesPerLine == 0 {
			lit[4], lit[5] = ',', '\n'
		} else {
			lit[4], lit[5] = ',', ' '
		}
		bw.Write(lit[:])
	}

	switch doc.Format {
	case FormatC:
		fmt.Fprintf(bw, "};\n#endif /*%s*/\n", doc.Guard)
	case FormatGo:
		bw.WriteString("}\n")
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("writing array document: %w", err)
	}
	return cw.n, nil
}

const hexDigits = "0123456789ABCDEF"

// formatByte writes "0xHH" for b into dst[:4].
func formatByte(dst []byte, b byte) {
	dst[0] = '0'
	dst[1] = 'x'
	dst[2] = hexDigits[b>>4]
	dst[3] = hexDigits[b&0x0F]
}

// OutputPath appends the format's suffix to the input path.
func OutputPath(in string, f Format) string {
	return in + f.Ext()
}

// IdentFromPath derives an upper-case identifier from a file name,
// e.g. "img/sample.bmp" becomes "SAMPLE_BMP".
func IdentFromPath(path string) string {
	base := filepath.Base(path)
	var sb strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	ident := sb.String()
	if ident == "" || (ident[0] >= '0' && ident[0] <= '9') {
		ident = "_" + ident
	}
	return ident
}

// GuardFromPath derives an include guard macro from a file name.
func GuardFromPath(path string) string {
	return IdentFromPath(path) + "_H"
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
