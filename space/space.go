// Package space is the color space registry: a closed set of spaces, the
// channel layout of each, and the table that converts channel values
// between them.
//
// Channel bounds follow the conventions of CSS and the color-space npm
// registry: rgb on 0..255, percentages on 0..100, hues in degrees.
package space

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSpace is returned for a space outside the registry.
	ErrInvalidSpace = errors.New("space: invalid color space")

	// ErrChannelCount is returned when a value slice does not match the
	// channel count of its space.
	ErrChannelCount = errors.New("space: wrong number of channels")
)

// Space identifies a color space.
type Space uint8

const (
	RGB       Space = iota // sRGB, 0..255
	HSL                    // hue, saturation, lightness
	HSV                    // hue, saturation, value
	HWB                    // hue, whiteness, blackness
	CMYK                   // cyan, magenta, yellow, key
	XYZ                    // CIE 1931 XYZ, D65
	Lab                    // CIE L*a*b*, D65
	LCHab                  // cylindrical Lab
	Luv                    // CIE L*u*v*, D65
	LCHuv                  // cylindrical Luv
	LinearRGB              // linear-light sRGB, 0..1

	spaceCount
)

// Kind tells how a channel interpolates.
type Kind uint8

const (
	// Linear channels interpolate on a straight line and clamp to bounds.
	Linear Kind = iota
	// Hue channels are angles in [0, 360) and interpolate along the
	// shorter arc.
	Hue
)

// Channel describes one coordinate of a space.
type Channel struct {
	Name     string
	Kind     Kind
	Min, Max float64
}

// Range returns Max - Min.
func (c Channel) Range() float64 {
	return c.Max - c.Min
}

// Clamp restricts v to [Min, Max].
func (c Channel) Clamp(v float64) float64 {
	return min(max(v, c.Min), c.Max)
}

// Descriptor is the static metadata of a space. The Channels slice is
// shared with the registry and must not be modified.
type Descriptor struct {
	Name     string
	Channels []Channel
}

// Len returns the number of channels.
func (d Descriptor) Len() int {
	return len(d.Channels)
}

// Index returns the position of the named channel, or -1.
func (d Descriptor) Index(name string) int {
	for i, ch := range d.Channels {
		if ch.Name == name {
			return i
		}
	}
	return -1
}

func lin(name string, lo, hi float64) Channel {
	return Channel{Name: name, Kind: Linear, Min: lo, Max: hi}
}

var hue = Channel{Name: "hue", Kind: Hue, Min: 0, Max: 360}

var registry = [spaceCount]Descriptor{
	RGB: {"rgb", []Channel{lin("red", 0, 255), lin("green", 0, 255), lin("blue", 0, 255)}},
	HSL: {"hsl", []Channel{hue, lin("saturation", 0, 100), lin("lightness", 0, 100)}},
	HSV: {"hsv", []Channel{hue, lin("saturation", 0, 100), lin("value", 0, 100)}},
	HWB: {"hwb", []Channel{hue, lin("whiteness", 0, 100), lin("blackness", 0, 100)}},
	CMYK: {"cmyk", []Channel{
		lin("cyan", 0, 100), lin("magenta", 0, 100), lin("yellow", 0, 100), lin("key", 0, 100),
	}},
	XYZ:       {"xyz", []Channel{lin("x", 0, 95.047), lin("y", 0, 100), lin("z", 0, 108.883)}},
	Lab:       {"lab", []Channel{lin("lightness", 0, 100), lin("a", -100, 100), lin("b", -100, 100)}},
	LCHab:     {"lchab", []Channel{lin("lightness", 0, 100), lin("chroma", 0, 100), hue}},
	Luv:       {"luv", []Channel{lin("lightness", 0, 100), lin("u", -134, 224), lin("v", -140, 122)}},
	LCHuv:     {"lchuv", []Channel{lin("lightness", 0, 100), lin("chroma", 0, 100), hue}},
	LinearRGB: {"lrgb", []Channel{lin("red", 0, 1), lin("green", 0, 1), lin("blue", 0, 1)}},
}

var aliases = map[string]Space{
	"lch":    LCHab,
	"hcl":    LCHab,
	"linear": LinearRGB,
	"srgb":   RGB,
}

// All returns every registered space in declaration order.
func All() []Space {
	out := make([]Space, 0, spaceCount)
	for s := RGB; s < spaceCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is registered.
func (s Space) Valid() bool {
	return s < spaceCount
}

// String returns the registry name, e.g. "hsl".
func (s Space) String() string {
	if s.Valid() {
		return registry[s].Name
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// Channels returns the channel count of s, or 0 for an invalid space.
func (s Space) Channels() int {
	if !s.Valid() {
		return 0
	}
	return len(registry[s].Channels)
}

// Describe returns the descriptor of s.
func Describe(s Space) (Descriptor, error) {
	if !s.Valid() {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidSpace, s)
	}
	return registry[s], nil
}

// Parse looks a space up by name, ignoring case.
func Parse(name string) (Space, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s := RGB; s < spaceCount; s++ {
		if registry[s].Name == key {
			return s, nil
		}
	}
	if s, ok := aliases[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSpace, name)
}

// Names returns the registry names of all spaces.
func Names() []string {
	out := make([]string, 0, spaceCount)
	for _, s := range All() {
		out = append(out, s.String())
	}
	return out
}
