package tint

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/tint/space"
)

// Color is an immutable color value: channel values in a color space, an
// alpha, and an optional link to the color it was converted from.
//
// The zero value is not usable; build colors with New, NewAlpha, the
// per-space shorthands, Hex, Named or Parse.
type Color struct {
	values []float64
	space  space.Space
	alpha  float64

	// original is owned exclusively by this Color. It is set only by a
	// forward conversion and never forms a cycle.
	original *Color
}

// Verify at compile time that *Color implements color.Color.
var _ color.Color = (*Color)(nil)

// New creates an opaque color from values in the given space.
func New(values []float64, sp space.Space) (*Color, error) {
	return NewAlpha(values, 1, sp)
}

// NewAlpha creates a color from values in the given space with an explicit
// alpha. The values slice is copied.
func NewAlpha(values []float64, alpha float64, sp space.Space) (*Color, error) {
	if !sp.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpace, sp)
	}
	if len(values) != sp.Channels() {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrChannelCount, sp, sp.Channels(), len(values))
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}
	return newColor(slices.Clone(values), alpha, sp), nil
}

// newColor takes ownership of values.
func newColor(values []float64, alpha float64, sp space.Space) *Color {
	return &Color{values: values, space: sp, alpha: alpha}
}

// RGB creates an opaque sRGB color with channels on the 0..255 scale.
func RGB(r, g, b float64) *Color {
	return newColor([]float64{r, g, b}, 1, space.RGB)
}

// RGBA creates an sRGB color with channels on the 0..255 scale and alpha in [0, 1].
func RGBA(r, g, b, a float64) *Color {
	return newColor([]float64{r, g, b}, a, space.RGB)
}

// HSL creates a color from hue [0, 360), saturation and lightness [0, 100].
func HSL(h, s, l float64) *Color {
	return newColor([]float64{h, s, l}, 1, space.HSL)
}

// HSV creates a color from hue [0, 360), saturation and value [0, 100].
func HSV(h, s, v float64) *Color {
	return newColor([]float64{h, s, v}, 1, space.HSV)
}

// HWB creates a color from hue [0, 360), whiteness and blackness [0, 100].
func HWB(h, w, b float64) *Color {
	return newColor([]float64{h, w, b}, 1, space.HWB)
}

// CMYK creates a color from cyan, magenta, yellow and key [0, 100].
func CMYK(c, m, y, k float64) *Color {
	return newColor([]float64{c, m, y, k}, 1, space.CMYK)
}

// XYZ creates a color from CIE XYZ tristimulus values (Y of white = 100).
func XYZ(x, y, z float64) *Color {
	return newColor([]float64{x, y, z}, 1, space.XYZ)
}

// Lab creates a color from CIE L*a*b* values.
func Lab(l, a, b float64) *Color {
	return newColor([]float64{l, a, b}, 1, space.Lab)
}

// LCHab creates a color from cylindrical Lab: lightness, chroma, hue.
func LCHab(l, c, h float64) *Color {
	return newColor([]float64{l, c, h}, 1, space.LCHab)
}

// Luv creates a color from CIE L*u*v* values.
func Luv(l, u, v float64) *Color {
	return newColor([]float64{l, u, v}, 1, space.Luv)
}

// LCHuv creates a color from cylindrical Luv: lightness, chroma, hue.
func LCHuv(l, c, h float64) *Color {
	return newColor([]float64{l, c, h}, 1, space.LCHuv)
}

// LinearRGB creates an opaque color from linear-light sRGB channels in [0, 1].
func LinearRGB(r, g, b float64) *Color {
	return newColor([]float64{r, g, b}, 1, space.LinearRGB)
}

// FromColor converts a standard color.Color to an sRGB Color.
func FromColor(c color.Color) *Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}

// Values returns a copy of the channel values.
func (c *Color) Values() []float64 {
	return slices.Clone(c.values)
}

// Space returns the space the values are expressed in.
func (c *Color) Space() space.Space {
	return c.space
}

// Alpha returns the alpha value.
func (c *Color) Alpha() float64 {
	return c.alpha
}

// Original returns a copy of the color this one was converted from, or nil.
func (c *Color) Original() *Color {
	if c.original == nil {
		return nil
	}
	return c.original.Clone()
}

// Depth returns the length of the lineage chain behind c.
func (c *Color) Depth() int {
	n := 0
	for o := c.original; o != nil; o = o.original {
		n++
	}
	return n
}

// Clone returns a deep copy of c, including its whole lineage.
func (c *Color) Clone() *Color {
	out := newColor(slices.Clone(c.values), c.alpha, c.space)
	if c.original != nil {
		out.original = c.original.Clone()
	}
	return out
}

// WithAlpha returns a copy of c with a different alpha. The alpha is
// applied along the lineage too, so later conversions keep it.
func (c *Color) WithAlpha(alpha float64) *Color {
	out := c.Clone()
	for o := out; o != nil; o = o.original {
		o.alpha = alpha
	}
	return out
}

// NRGBA returns the 8-bit, non-premultiplied sRGB form of c, with channels
// rounded and clamped.
func (c *Color) NRGBA() color.NRGBA {
	rgb := c.mustConvert(space.RGB)
	return color.NRGBA{
		R: channel8(rgb.values[0]),
		G: channel8(rgb.values[1]),
		B: channel8(rgb.values[2]),
		A: channel8(rgb.alpha * 255),
	}
}

// RGBA implements the color.Color interface.
func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// channel8 rounds v and clamps it to [0, 255]. NaN maps to 0.
func channel8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(min(max(math.Round(v), 0), 255))
}
