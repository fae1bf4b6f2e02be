package tint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/tint/space"
)

// Hex creates an sRGB color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Short forms repeat each digit.
func Hex(s string) (*Color, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3, 4:
		var sb strings.Builder
		for i := 0; i < len(hex); i++ {
			sb.WriteByte(hex[i])
			sb.WriteByte(hex[i])
		}
		hex = sb.String()
	case 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, s, len(hex))
	}

	var ch [4]float64
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		ch[i] = float64(v)
	}

	alpha := 1.0
	if len(hex)%3 != 0 {
		alpha = ch[3] / 255
	}
	return RGBA(ch[0], ch[1], ch[2], alpha), nil
}

// MustHex is like Hex but panics if s cannot be parsed.
// It simplifies initialization of package-level colors.
func MustHex(s string) *Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders c as "#rrggbb", with an "aa" alpha byte appended when alpha
// is below 1. Channels are rounded and clamped to [0, 255]; a NaN channel,
// as produced by Burn over a zero channel, renders as 00.
func (c *Color) Hex() string {
	rgb := c.mustConvert(space.RGB)

	var sb strings.Builder
	sb.Grow(9)
	sb.WriteByte('#')
	for _, v := range rgb.values {
		fmt.Fprintf(&sb, "%02x", channel8(v))
	}
	if rgb.alpha < 1 {
		fmt.Fprintf(&sb, "%02x", channel8(rgb.alpha*255))
	}
	return sb.String()
}
