package arraylit

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func allBytes() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func emitString(t *testing.T, data []byte, doc Document) string {
	t.Helper()
	var buf bytes.Buffer
	n, err := Emit(&buf, data, doc)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("Emit reported %d bytes, buffer holds %d", n, buf.Len())
	}
	return buf.String()
}

func TestEmit_CGolden(t *testing.T) {
	got := emitString(t, []byte{0x00, 0x7F, 0xFF}, DefaultDocument())
	want := "#ifndef BIN2HDR_INCL_H\n" +
		"#define BIN2HDR_INCL_H\n" +
		"const char* BIN_DATA [3] = {\n" +
		"0x00, 0x7F, 0xFF, };\n" +
		"#endif /*BIN2HDR_INCL_H*/\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmit_CEmpty(t *testing.T) {
	got := emitString(t, nil, DefaultDocument())
	want := "#ifndef BIN2HDR_INCL_H\n" +
		"#define BIN2HDR_INCL_H\n" +
		"const char* BIN_DATA [0] = {\n" +
		"};\n" +
		"#endif /*BIN2HDR_INCL_H*/\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "0x") {
		t.Error("empty input must not emit literals")
	}
}

func TestEmit_GoGolden(t *testing.T) {
	doc := Document{Format: FormatGo, Name: "SampleBMP", Package: "assets"}
	got := emitString(t, []byte{0x42, 0x4D}, doc)
	want := "// Code generated by bin2hdr; DO NOT EDIT.\n\n" +
		"package assets\n\n" +
		"var SampleBMP = [2]byte{\n" +
		"0x42, 0x4D, }\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmit_Layout(t *testing.T) {
	for _, n := range []int{1, 31, 32, 33, 64, 65, 100, 256} {
		data := make([]byte, n)
		text := emitString(t, data, DefaultDocument())

		start := strings.Index(text, "= {\n") + len("= {\n")
		end := strings.Index(text, "};")
		body := text[start:end]

		if got := strings.Count(body, "0x"); got != n {
			t.Errorf("n=%d: expected %d literals, got %d", n, n, got)
		}
		if got := strings.Count(body, "\n"); got != n/ValuesPerLine {
			t.Errorf("n=%d: expected %d line breaks, got %d", n, n/ValuesPerLine, got)
		}

		lines := strings.Split(body, "\n")
		for i, line := range lines[:len(lines)-1] {
			if c := strings.Count(line, "0x"); c != ValuesPerLine {
				t.Errorf("n=%d line %d: expected %d values, got %d", n, i, ValuesPerLine, c)
			}
			if !strings.HasSuffix(line, ",") {
				t.Errorf("n=%d line %d: expected trailing comma, got %q", n, i, line)
			}
		}

		last := lines[len(lines)-1]
		if n%ValuesPerLine == 0 {
			if last != "" {
				t.Errorf("n=%d: expected no partial line, got %q", n, last)
			}
		} else {
			if c := strings.Count(last, "0x"); c != n%ValuesPerLine {
				t.Errorf("n=%d: expected %d values on last line, got %d", n, n%ValuesPerLine, c)
			}
			if !strings.HasSuffix(last, ", ") {
				t.Errorf("n=%d: expected separator before close, got %q", n, last)
			}
		}
	}
}

func TestEmit_DeclaredLength(t *testing.T) {
	text := emitString(t, make([]byte, 1234), DefaultDocument())
	if !strings.Contains(text, "const char* BIN_DATA [1234] = {\n") {
		t.Error("declared length does not match input size")
	}
}

// Every byte value must survive, including 0x00 and values whose low bits are
// zero; a logical-AND mask would collapse them to 0x00/0x01.
func TestEmit_RoundTripAllValues(t *testing.T) {
	for _, doc := range []Document{
		DefaultDocument(),
		{Format: FormatGo, Name: "BIN_DATA", Package: "data"},
	} {
		t.Run(doc.Format.String(), func(t *testing.T) {
			data := allBytes()
			text := emitString(t, data, doc)

			for i := 0; i < 256; i++ {
				lit := []byte("0x00")
				formatByte(lit, byte(i))
				if !strings.Contains(text, string(lit)) {
					t.Errorf("literal %s missing from output", lit)
				}
			}

			dec, err := Parse(strings.NewReader(text))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !bytes.Equal(dec.Data, data) {
				t.Fatal("round trip mismatch")
			}
			if dec.Name != doc.Name || dec.Format != doc.Format {
				t.Errorf("got name %q format %s", dec.Name, dec.Format)
			}
		})
	}
}

func TestEmit_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 32, 4097} {
		data := make([]byte, n)
		rng.Read(data)

		dec, err := Parse(strings.NewReader(emitString(t, data, DefaultDocument())))
		if err != nil {
			t.Fatalf("n=%d: Parse failed: %v", n, err)
		}
		if !bytes.Equal(dec.Data, data) {
			t.Errorf("n=%d: round trip mismatch", n)
		}
		if dec.Guard != DefaultGuard {
			t.Errorf("n=%d: expected guard %s, got %s", n, DefaultGuard, dec.Guard)
		}
	}
}

func TestFormatByte(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{0x00, "0x00"},
		{0x01, "0x01"},
		{0x0A, "0x0A"},
		{0x80, "0x80"},
		{0xAB, "0xAB"},
		{0xFF, "0xFF"},
	}
	for _, tt := range tests {
		buf := make([]byte, 4)
		formatByte(buf, tt.in)
		if string(buf) != tt.want {
			t.Errorf("formatByte(%#x) = %s, want %s", tt.in, buf, tt.want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestEmit_WriteError(t *testing.T) {
	_, err := Emit(failingWriter{}, make([]byte, 10), DefaultDocument())
	if err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{"default", DefaultDocument(), nil},
		{"empty name", Document{Name: "", Guard: "G"}, ErrInvalidName},
		{"name with dash", Document{Name: "my-data", Guard: "G"}, ErrInvalidName},
		{"leading digit", Document{Name: "1data", Guard: "G"}, ErrInvalidName},
		{"bad guard", Document{Name: "DATA", Guard: "A B"}, ErrInvalidName},
		{"go without package", Document{Format: FormatGo, Name: "Data"}, ErrInvalidName},
		{"go ok", Document{Format: FormatGo, Name: "Data", Package: "assets"}, nil},
		{"unknown format", Document{Format: Format(9), Name: "Data"}, ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"c": FormatC, "H": FormatC, "": FormatC, "go": FormatGo, "Go": FormatGo} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("rust"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestPathHelpers(t *testing.T) {
	if got := OutputPath("img/sample.bmp", FormatC); got != "img/sample.bmp.h" {
		t.Errorf("OutputPath C = %s", got)
	}
	if got := OutputPath("img/sample.bmp", FormatGo); got != "img/sample.bmp.go" {
		t.Errorf("OutputPath Go = %s", got)
	}

	tests := map[string]string{
		"sample.bmp":      "SAMPLE_BMP",
		"dir/my-file.bin": "MY_FILE_BIN",
		"1st.dat":         "_1ST_DAT",
	}
	for in, want := range tests {
		if got := IdentFromPath(in); got != want {
			t.Errorf("IdentFromPath(%q) = %s, want %s", in, got, want)
		}
	}
	if got := GuardFromPath("sample.bmp"); got != "SAMPLE_BMP_H" {
		t.Errorf("GuardFromPath = %s", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "length mismatch",
			text:    "#ifndef G\n#define G\nconst char* D [3] = {\n0x01, 0x02, };\n#endif /*G*/\n",
			wantErr: ErrLengthMismatch,
		},
		{
			name:    "guard mismatch",
			text:    "#ifndef G\n#define H\nconst char* D [0] = {\n};\n#endif /*G*/\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "missing endif",
			text:    "#ifndef G\n#define G\nconst char* D [0] = {\n};\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "bad literal",
			text:    "#ifndef G\n#define G\nconst char* D [1] = {\n0xZZ, };\n#endif /*G*/\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "unterminated go",
			text:    "package data\n\nvar D = [1]byte{\n0x01, ",
			wantErr: ErrMalformed,
		},
		{
			name:    "not a document",
			text:    "hello world",
			wantErr: ErrMalformed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
