package names

import (
	"errors"
	"image/color"
	"slices"
	"strings"
	"testing"
)

func TestCSSLookup(t *testing.T) {
	tests := []struct {
		name string
		want color.RGBA
		ok   bool
	}{
		{"red", color.RGBA{0xff, 0, 0, 0xff}, true},
		{"DarkSlateGray", color.RGBA{0x2f, 0x4f, 0x4f, 0xff}, true},
		{"rebeccapurple", color.RGBA{0x66, 0x33, 0x99, 0xff}, true},
		{"notacolor", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CSS().Lookup(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCSSSorted(t *testing.T) {
	p := CSS()
	if !slices.IsSorted(p.Names()) {
		t.Error("CSS names are not sorted")
	}
	if p.Len() != 148 {
		t.Errorf("Len() = %d, want 148", p.Len())
	}
	if CSS() != p {
		t.Error("CSS() is not shared")
	}
}

func TestNameOf(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
		ok   bool
	}{
		{color.RGBA{0, 0xff, 0xff, 0xff}, "aqua", true},
		{color.RGBA{0xff, 0, 0xff, 0xff}, "fuchsia", true},
		{color.NRGBA{0x80, 0x80, 0x80, 0x40}, "gray", true},
		{color.RGBA{1, 2, 3, 0xff}, "", false},
	}
	for _, tt := range tests {
		got, ok := CSS().NameOf(tt.c)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NameOf(%v) = %q, %v, want %q, %v", tt.c, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.RGBA{0xfe, 0, 0, 0xff}, "red"},
		{color.RGBA{0, 0, 1, 0xff}, "black"},
		{color.RGBA{0x66, 0x33, 0x98, 0xff}, "rebeccapurple"},
	}
	for _, tt := range tests {
		if got := CSS().Nearest(tt.c); got != tt.want {
			t.Errorf("Nearest(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}

	if got := NewPalette().Nearest(color.Black); got != "" {
		t.Errorf("empty Nearest() = %q, want empty", got)
	}
}

func TestPaletteAdd(t *testing.T) {
	p := NewPalette()
	p.Add("Ink", color.RGBA{1, 2, 3, 0})
	p.Add("paper", color.RGBA{250, 250, 250, 0xff})
	p.Add("INK", color.RGBA{4, 5, 6, 0x10})

	if got, want := p.Names(), []string{"ink", "paper"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	got, ok := p.Lookup("ink")
	if !ok || got != (color.RGBA{4, 5, 6, 0xff}) {
		t.Errorf("Lookup(ink) = %v, %v", got, ok)
	}
}

func TestLoadPalette(t *testing.T) {
	doc := `
brand: "#0a84ff"
ink: "#1c1c1e"
Accent: "#f0a"
`
	p, err := LoadPalette(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	if got, want := p.Names(), []string{"brand", "ink", "accent"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if c, _ := p.Lookup("ACCENT"); c != (color.RGBA{0xff, 0, 0xaa, 0xff}) {
		t.Errorf("Lookup(accent) = %v", c)
	}
	if c, _ := p.Lookup("brand"); c != (color.RGBA{0x0a, 0x84, 0xff, 0xff}) {
		t.Errorf("Lookup(brand) = %v", c)
	}
}

func TestLoadPaletteEmpty(t *testing.T) {
	p, err := LoadPalette(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestLoadPaletteErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"sequence", "- red\n- blue\n"},
		{"nested", "brand:\n  light: \"#fff\"\n"},
		{"bad hex", "brand: \"#zzzzzz\"\n"},
		{"syntax", "brand: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPalette(strings.NewReader(tt.doc)); !errors.Is(err, ErrInvalidPalette) {
				t.Errorf("LoadPalette() error = %v, want ErrInvalidPalette", err)
			}
		})
	}
}
