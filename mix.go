package tint

import (
	"fmt"
	"math"

	"github.com/gogpu/tint/space"
)

// Mix blends other into c. The default amount is 0.5 and the default mode
// is rgb; see WithAmount and WithMode.
//
// Both colors are converted to the mode. Hue channels move along the
// shorter arc and wrap into [0, 360); every other channel is interpolated
// linearly and clamped to its bounds. The result is in the mode's space and
// carries no lineage.
//
// The result alpha is c.Alpha() + (c.Alpha() - other.Alpha()) * amount.
// It is not clamped and moves away from other's alpha as amount grows.
func (c *Color) Mix(other *Color, opts ...Option) (*Color, error) {
	o := applyOptions(0.5, space.RGB, opts)
	d, err := space.Describe(o.mode)
	if err != nil {
		return nil, err
	}
	a, err := c.Convert(o.mode)
	if err != nil {
		return nil, err
	}
	b, err := other.Convert(o.mode)
	if err != nil {
		return nil, err
	}

	t := o.amount
	values := make([]float64, d.Len())
	for i, ch := range d.Channels {
		av, bv := a.values[i], b.values[i]
		if ch.Kind == space.Hue {
			values[i] = mixHue(av, bv, t)
			continue
		}
		values[i] = ch.Clamp(av*(1-t) + bv*t)
	}
	alpha := a.alpha + (a.alpha-b.alpha)*t
	return newColor(values, alpha, o.mode), nil
}

// mixHue interpolates two angles in degrees along the shorter arc.
func mixHue(a, b, t float64) float64 {
	if math.Abs(a-b) > 180 {
		if b > a {
			b -= 360
		} else {
			b += 360
		}
	}
	v := a*(1-t) + b*t
	if v < 0 {
		return v + 360
	}
	if v >= 360 {
		return v - 360
	}
	return v
}

// Lighten raises the lightness of c. The default amount is 0.1 of the
// lightness range and the default mode is hsl; the mode must have a
// "lightness" channel.
//
// The result is converted back to c's space from the adjusted values, not
// from c, so it carries a fresh lineage and may lose some precision.
func (c *Color) Lighten(opts ...Option) (*Color, error) {
	o := applyOptions(0.1, space.HSL, opts)
	return c.lighten(o.amount, o.mode)
}

// Darken lowers the lightness of c. It is Lighten with the amount negated.
func (c *Color) Darken(opts ...Option) (*Color, error) {
	o := applyOptions(0.1, space.HSL, opts)
	return c.lighten(-o.amount, o.mode)
}

func (c *Color) lighten(amount float64, mode space.Space) (*Color, error) {
	d, err := space.Describe(mode)
	if err != nil {
		return nil, err
	}
	i := d.Index("lightness")
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLightnessChannel, mode)
	}

	n, err := c.Convert(mode)
	if err != nil {
		return nil, err
	}
	ch := d.Channels[i]
	n.values[i] = ch.Clamp(n.values[i] + amount*ch.Range())

	// The adjusted values no longer match the lineage.
	n.original = nil
	Logger().Debug("tint: lineage dropped", "op", "lighten", "mode", mode.String())

	return n.Convert(c.space)
}
