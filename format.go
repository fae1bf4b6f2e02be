package tint

import (
	"strconv"
	"strings"

	"github.com/gogpu/tint/space"
)

// String renders c in functional notation, e.g. "hsl(180, 100, 50)".
//
// A non-opaque rgb or hsl color uses the CSS alpha forms "rgba(...)" and
// "hsla(...)". Other spaces have no standard alpha syntax, so the alpha is
// annotated as "[alpha = a]" inside the parentheses.
func (c *Color) String() string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = formatFloat(v)
	}
	name := c.space.String()
	args := strings.Join(parts, ", ")

	if c.alpha == 1 {
		return name + "(" + args + ")"
	}
	a := formatFloat(c.alpha)
	switch c.space {
	case space.RGB, space.HSL:
		return name + "a(" + args + ", " + a + ")"
	}
	return name + "(" + args + ", [alpha = " + a + "])"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
