package tint

import (
	"fmt"

	"github.com/gogpu/tint/space"
)

// Convert returns c expressed in the target space.
//
// Converting to c's own space returns a clone with the same lineage. If c
// was itself produced by a conversion, the conversion starts again from
// the original color, so repeated conversions never compound rounding
// error. Otherwise the values go through space.Default and the result
// records a copy of c as its original.
func (c *Color) Convert(target space.Space) (*Color, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpace, target)
	}
	if c.space == target {
		return c.Clone(), nil
	}
	if c.original != nil {
		return c.original.Convert(target)
	}

	values, err := space.Default.Convert(c.space, target, c.values)
	if err != nil {
		return nil, err
	}
	Logger().Debug("tint: forward conversion", "from", c.space.String(), "to", target.String())

	out := newColor(values, c.alpha, target)
	out.original = c.Clone()
	return out, nil
}

// ConvertTo is Convert with the target given by name, e.g. "hsl".
func (c *Color) ConvertTo(name string) (*Color, error) {
	sp, err := space.Parse(name)
	if err != nil {
		return nil, err
	}
	return c.Convert(sp)
}

// mustConvert converts to a space known to be valid. Colors are validated
// on construction, so the table cannot reject them.
func (c *Color) mustConvert(target space.Space) *Color {
	out, err := c.Convert(target)
	if err != nil {
		panic(err)
	}
	return out
}
