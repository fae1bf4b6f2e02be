package tint

import (
	"math"

	"github.com/gogpu/tint/internal/blend"
	"github.com/gogpu/tint/space"
)

// BlendMode selects a compositing operator.
type BlendMode = blend.Mode

// Compositing operators. Formulas are given for channels a (receiver) and
// b (argument) on the 0..255 scale.
const (
	BlendAdd      = blend.ModeAdd      // min(a+b, 255)
	BlendSubtract = blend.ModeSubtract // max(a-b, 0)
	BlendMultiply = blend.ModeMultiply // a*b/255
	BlendDivide   = blend.ModeDivide   // min(255*a/b, 255), 255 when b = 0
	BlendScreen   = blend.ModeScreen   // 255 - (255-a)*(255-b)/255
	BlendOverlay  = blend.ModeOverlay  // multiply below 128, screen above
	BlendDodge    = blend.ModeDodge    // min(255, b*255/(255-a)), 255 when a = 255
	BlendBurn     = blend.ModeBurn     // max(0, 255 - 255*(255-b)/a)
)

// ParseBlendMode looks a compositing operator up by name, e.g. "multiply".
func ParseBlendMode(name string) (BlendMode, error) {
	return blend.ParseMode(name)
}

// BlendModes returns every compositing operator in declaration order.
func BlendModes() []BlendMode {
	return blend.Modes()
}

// Composite combines c and other with the given operator.
//
// Both colors are converted to rgb and their channels premultiplied by
// alpha before the operator is applied. Add and subtract combine alphas as
// min(sqrt(a² + b²), 1); the other operators apply themselves to the alphas
// scaled to 0..255. The result is an rgb color without lineage, and its
// channels stay premultiplied.
func (c *Color) Composite(other *Color, mode BlendMode) (*Color, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	return c.composite(other, mode, true), nil
}

// CompositeOpaque combines c and other channel by channel, ignoring alpha
// altogether: channels are not premultiplied and the result is opaque.
//
// Its burn guards against a zero channel in c, while Composite's burn
// admits it and saturates through the division by zero instead.
func (c *Color) CompositeOpaque(other *Color, mode BlendMode) (*Color, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	return c.composite(other, mode, false), nil
}

func (c *Color) composite(other *Color, mode blend.Mode, premultiply bool) *Color {
	f := blend.OpaqueFunc(mode)
	if premultiply {
		f = blend.Func(mode)
	}
	a := c.mustConvert(space.RGB)
	b := other.mustConvert(space.RGB)

	values := make([]float64, len(a.values))
	for i := range values {
		av, bv := a.values[i], b.values[i]
		if premultiply {
			av *= a.alpha
			bv *= b.alpha
		}
		values[i] = f(av, bv)
	}

	alpha := 1.0
	if premultiply {
		alpha = blend.Alpha(mode, a.alpha, b.alpha)
	}
	return newColor(values, alpha, space.RGB)
}

// Add composites with min(a+b, 255).
func (c *Color) Add(other *Color) *Color { return c.composite(other, blend.ModeAdd, true) }

// Subtract composites with max(a-b, 0).
func (c *Color) Subtract(other *Color) *Color { return c.composite(other, blend.ModeSubtract, true) }

// Multiply composites with a*b/255.
func (c *Color) Multiply(other *Color) *Color { return c.composite(other, blend.ModeMultiply, true) }

// Divide composites with min(255*a/b, 255).
func (c *Color) Divide(other *Color) *Color { return c.composite(other, blend.ModeDivide, true) }

// Screen composites with 255 - (255-a)*(255-b)/255.
func (c *Color) Screen(other *Color) *Color { return c.composite(other, blend.ModeScreen, true) }

// Overlay multiplies where c is dark and screens where it is light.
func (c *Color) Overlay(other *Color) *Color { return c.composite(other, blend.ModeOverlay, true) }

// Dodge brightens other to reflect c.
func (c *Color) Dodge(other *Color) *Color { return c.composite(other, blend.ModeDodge, true) }

// Burn darkens other to reflect c.
func (c *Color) Burn(other *Color) *Color { return c.composite(other, blend.ModeBurn, true) }

// Exponent raises each normalized rgb channel and the alpha to power.
// Channels are computed as min((v/255)^power, 255) * 255.
func (c *Color) Exponent(power float64) *Color {
	a := c.mustConvert(space.RGB)
	values := make([]float64, len(a.values))
	for i, v := range a.values {
		values[i] = math.Min(math.Pow(v/255, power), 255) * 255
	}
	return newColor(values, math.Pow(a.alpha, power), space.RGB)
}
