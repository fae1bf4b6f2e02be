package tint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/tint/names"
)

// Named creates an opaque sRGB color from a CSS color name, e.g.
// "rebeccapurple". Matching ignores case.
func Named(name string) (*Color, error) {
	c, ok := names.CSS().Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return RGB(float64(c.R), float64(c.G), float64(c.B)), nil
}

// Parse creates a color from a hex string or a CSS color name. Strings
// starting with '#' are always treated as hex.
func Parse(s string) (*Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	if c, err := Named(s); err == nil {
		return c, nil
	}
	c, err := Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither hex nor a color name", ErrUnknownName, s)
	}
	return c, nil
}

// Name returns the CSS name of c's 8-bit rgb value, if it has one.
func (c *Color) Name() (string, bool) {
	return names.CSS().NameOf(c.opaque())
}

// ClosestName returns the CSS name perceptually closest to c.
func (c *Color) ClosestName() string {
	return names.CSS().Nearest(c.opaque())
}

// opaque returns the 8-bit rgb value of c with alpha forced to 0xff, so a
// translucent color is not premultiplied on its way into the palette.
func (c *Color) opaque() color.NRGBA {
	n := c.NRGBA()
	n.A = 0xff
	return n
}
