package names

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPalette is returned when a palette document cannot be used.
var ErrInvalidPalette = errors.New("names: invalid palette")

// LoadPalette reads a YAML mapping of names to hex colors, keeping the
// document order:
//
//	brand: "#0a84ff"
//	ink: "#1c1c1e"
func LoadPalette(r io.Reader) (*Palette, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewPalette(), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidPalette)
	}

	p := NewPalette()
	m := doc.Content[0]
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: %q must map to a hex string", ErrInvalidPalette, key.Line, key.Value)
		}
		c, err := colorful.Hex(val.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %w", ErrInvalidPalette, val.Line, key.Value, err)
		}
		r, g, b := c.RGB255()
		p.Add(key.Value, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return p, nil
}
