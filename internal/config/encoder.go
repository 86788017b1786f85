package config

import "github.com/Faultbox/bin2hdr/pkg/arraylit"

// Auto asks for a name derived from the input file.
const Auto = "auto"

// Document resolves the encoder settings for one input file.
func (e EncoderConfig) Document(inputPath string) (arraylit.Document, error) {
	format, err := arraylit.ParseFormat(e.Format)
	if err != nil {
		return arraylit.Document{}, err
	}

	doc := arraylit.Document{
		Format:  format,
		Name:    e.ArrayName,
		Guard:   e.GuardName,
		Package: e.Package,
	}
	if doc.Name == Auto {
		doc.Name = arraylit.IdentFromPath(inputPath)
	}
	if doc.Guard == Auto {
		doc.Guard = arraylit.GuardFromPath(inputPath)
	}

	if err := doc.Validate(); err != nil {
		return arraylit.Document{}, err
	}
	return doc, nil
}
