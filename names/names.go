// Package names maps color names to sRGB values and back.
//
// The built-in CSS palette holds the SVG 1.1 keywords plus the CSS Color
// Level 4 addition "rebeccapurple". Custom palettes can be built in code or
// loaded from YAML.
package names

import (
	"image/color"
	"slices"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Palette is an ordered set of named opaque colors. Names are matched
// case-insensitively. A Palette is safe for concurrent reads once built.
type Palette struct {
	names  []string
	colors map[string]color.RGBA
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{colors: make(map[string]color.RGBA)}
}

// fold normalizes a name for lookup. A Caser keeps state, so each call
// gets its own.
func fold(name string) string {
	return cases.Fold().String(name)
}

// Add inserts or replaces a named color. Alpha is forced to opaque.
func (p *Palette) Add(name string, c color.RGBA) {
	key := fold(name)
	c.A = 0xff
	if _, ok := p.colors[key]; !ok {
		p.names = append(p.names, key)
	}
	p.colors[key] = c
}

// Len returns the number of names.
func (p *Palette) Len() int {
	return len(p.names)
}

// Names returns the names in palette order.
func (p *Palette) Names() []string {
	return slices.Clone(p.names)
}

// Lookup returns the color with the given name.
func (p *Palette) Lookup(name string) (color.RGBA, bool) {
	c, ok := p.colors[fold(name)]
	return c, ok
}

// NameOf returns the first name whose color matches the 8-bit rgb value of
// c exactly. Alpha is ignored.
func (p *Palette) NameOf(c color.Color) (string, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for _, name := range p.names {
		v := p.colors[name]
		if v.R == n.R && v.G == n.G && v.B == n.B {
			return name, true
		}
	}
	return "", false
}

// Nearest returns the name whose color is closest to c by CIE76 distance
// in L*a*b*. Ties go to the earlier name. An empty palette yields "".
func (p *Palette) Nearest(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	target := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}

	best, bestDist := "", 0.0
	for _, name := range p.names {
		v := p.colors[name]
		cand := colorful.Color{R: float64(v.R) / 255, G: float64(v.G) / 255, B: float64(v.B) / 255}
		d := target.DistanceLab(cand)
		if best == "" || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// rebeccaPurple is the CSS Color Level 4 keyword missing from SVG 1.1.
var rebeccaPurple = color.RGBA{0x66, 0x33, 0x99, 0xff}

var css = sync.OnceValue(func() *Palette {
	p := NewPalette()
	all := append(slices.Clone(colornames.Names), "rebeccapurple")
	slices.Sort(all)
	for _, name := range all {
		if name == "rebeccapurple" {
			p.Add(name, rebeccaPurple)
			continue
		}
		p.Add(name, colornames.Map[name])
	}
	return p
})

// CSS returns the shared built-in palette, in alphabetical order. It must
// not be modified.
func CSS() *Palette {
	return css()
}
