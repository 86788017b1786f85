package arraylit

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Decoded is an array document read back by Parse.
type Decoded struct {
	Format  Format
	Name    string
	Guard   string
	Package string
	Data    []byte
}

var (
	cGuardRe  = regexp.MustCompile(`^#ifndef (\w+)\n#define (\w+)\n`)
	cDeclRe   = regexp.MustCompile(`(?m)^const char\* (\w+) \[(\d+)\] = \{$`)
	cEndifRe  = regexp.MustCompile(`(?m)^#endif /\*(\w+)\*/\s*$`)
	goPkgRe   = regexp.MustCompile(`(?m)^package (\w+)$`)
	goDeclRe  = regexp.MustCompile(`(?m)^var (\w+) = \[(\d+)\]byte\{$`)
	byteLitRe = regexp.MustCompile(`^0[xX][0-9A-Fa-f]{2}$`)
)

// Parse reads a document produced by Emit (either format) and returns the
// bytes it declares.
func Parse(r io.Reader) (*Decoded, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading array document: %w", err)
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	if strings.HasPrefix(text, "#ifndef") {
		return parseC(text)
	}
	return parseGo(text)
}

func parseC(text string) (*Decoded, error) {
	g := cGuardRe.FindStringSubmatch(text)
	if g == nil || g[1] != g[2] {
		return nil, fmt.Errorf("%w: missing include guard", ErrMalformed)
	}
	e := cEndifRe.FindStringSubmatch(text)
	if e == nil || e[1] != g[1] {
		return nil, fmt.Errorf("%w: missing or mismatched #endif", ErrMalformed)
	}

	d := &Decoded{Format: FormatC, Guard: g[1]}
	if err := parseDecl(text, cDeclRe, "};", d); err != nil {
		return nil, err
	}
	return d, nil
}

func parseGo(text string) (*Decoded, error) {
	p := goPkgRe.FindStringSubmatch(text)
	if p == nil {
		return nil, fmt.Errorf("%w: missing package clause", ErrMalformed)
	}

	d := &Decoded{Format: FormatGo, Package: p[1]}
	if err := parseDecl(text, goDeclRe, "}", d); err != nil {
		return nil, err
	}
	return d, nil
}

// parseDecl locates the array declaration, decodes the body up to the
// closing token and checks the element count against the declared length.
func parseDecl(text string, declRe *regexp.Regexp, closing string, d *Decoded) error {
	loc := declRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return fmt.Errorf("%w: missing array declaration", ErrMalformed)
	}
	d.Name = text[loc[2]:loc[3]]
	declared, err := strconv.Atoi(text[loc[4]:loc[5]])
	if err != nil {
		return fmt.Errorf("%w: array length: %v", ErrMalformed, err)
	}

	body := text[loc[1]:]
	end := strings.Index(body, closing)
	if end < 0 {
		return fmt.Errorf("%w: unterminated array", ErrMalformed)
	}
	body = body[:end]

	d.Data = make([]byte, 0, len(body)/6+1)
	for _, field := range strings.Split(body, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if !byteLitRe.MatchString(field) {
			return fmt.Errorf("%w: bad element %q", ErrMalformed, field)
		}
		v, err := strconv.ParseUint(field[2:], 16, 8)
		if err != nil {
			return fmt.Errorf("%w: bad element %q", ErrMalformed, field)
		}
		d.Data = append(d.Data, byte(v))
	}

	if len(d.Data) != declared {
		return fmt.Errorf("%w: declared %d, found %d", ErrLengthMismatch, declared, len(d.Data))
	}
	return nil
}
