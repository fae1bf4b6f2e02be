package space

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	icolor "github.com/gogpu/tint/internal/color"
)

// Table converts channel values between spaces.
type Table interface {
	Convert(from, to Space, values []float64) ([]float64, error)
}

// Default is the built-in conversion table. It routes every conversion
// through sRGB: go-colorful supplies the HSL, HSV, CIE and cylindrical
// formulas, while CMYK, HWB and linear RGB are computed directly.
var Default Table = hubTable{}

// Convert converts values from one space to another using Default.
func Convert(from, to Space, values []float64) ([]float64, error) {
	return Default.Convert(from, to, values)
}

type hubTable struct{}

func (hubTable) Convert(from, to Space, values []float64) ([]float64, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpace, from)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpace, to)
	}
	if len(values) != from.Channels() {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrChannelCount, from, from.Channels(), len(values))
	}
	if from == to {
		return append([]float64(nil), values...), nil
	}
	return fromRGB(to, toRGB(from, values)), nil
}

// toRGB decodes values of s into encoded sRGB on the 0..255 scale.
func toRGB(s Space, v []float64) icolor.Triple {
	switch s {
	case RGB:
		return icolor.Triple{v[0], v[1], v[2]}
	case HSL:
		return fromColorful(colorful.Hsl(v[0], v[1]/100, v[2]/100))
	case HSV:
		return fromColorful(colorful.Hsv(v[0], v[1]/100, v[2]/100))
	case HWB:
		return hwbToRGB(v[0], v[1]/100, v[2]/100)
	case CMYK:
		return cmykToRGB(v[0]/100, v[1]/100, v[2]/100, v[3]/100)
	case XYZ:
		return fromColorful(colorful.Xyz(v[0]/100, v[1]/100, v[2]/100))
	case Lab:
		return fromColorful(colorful.Lab(v[0]/100, v[1]/100, v[2]/100))
	case LCHab:
		return fromColorful(colorful.Hcl(v[2], v[1]/100, v[0]/100))
	case Luv:
		return fromColorful(colorful.Luv(v[0]/100, v[1]/100, v[2]/100))
	case LCHuv:
		return fromColorful(colorful.LuvLCh(v[0]/100, v[1]/100, v[2]))
	case LinearRGB:
		return icolor.LinearToEncoded(icolor.Triple{v[0], v[1], v[2]})
	}
	panic("space: unreachable " + s.String())
}

// fromRGB encodes an sRGB triple into the channels of s.
func fromRGB(s Space, rgb icolor.Triple) []float64 {
	c := toColorful(rgb)
	switch s {
	case RGB:
		return []float64{rgb[0], rgb[1], rgb[2]}
	case HSL:
		h, sat, l := c.Hsl()
		return []float64{h, sat * 100, l * 100}
	case HSV:
		h, sat, v := c.Hsv()
		return []float64{h, sat * 100, v * 100}
	case HWB:
		h, sat, v := c.Hsv()
		return []float64{h, (1 - sat) * v * 100, (1 - v) * 100}
	case CMYK:
		return rgbToCMYK(c.R, c.G, c.B)
	case XYZ:
		x, y, z := c.Xyz()
		return []float64{x * 100, y * 100, z * 100}
	case Lab:
		l, a, b := c.Lab()
		return []float64{l * 100, a * 100, b * 100}
	case LCHab:
		h, ch, l := c.Hcl()
		return []float64{l * 100, ch * 100, h}
	case Luv:
		l, u, v := c.Luv()
		return []float64{l * 100, u * 100, v * 100}
	case LCHuv:
		l, ch, h := c.LuvLCh()
		return []float64{l * 100, ch * 100, h}
	case LinearRGB:
		lin := icolor.EncodedToLinear(rgb)
		return lin[:]
	}
	panic("space: unreachable " + s.String())
}

func toColorful(t icolor.Triple) colorful.Color {
	return colorful.Color{R: t[0] / icolor.ChannelMax, G: t[1] / icolor.ChannelMax, B: t[2] / icolor.ChannelMax}
}

func fromColorful(c colorful.Color) icolor.Triple {
	return icolor.Triple{c.R * icolor.ChannelMax, c.G * icolor.ChannelMax, c.B * icolor.ChannelMax}
}

// rgbToCMYK converts normalized sRGB to CMYK percentages.
func rgbToCMYK(r, g, b float64) []float64 {
	k := 1 - max(r, g, b)
	if k >= 1 {
		return []float64{0, 0, 0, 100}
	}
	d := 1 - k
	return []float64{
		(1 - r - k) / d * 100,
		(1 - g - k) / d * 100,
		(1 - b - k) / d * 100,
		k * 100,
	}
}

func cmykToRGB(c, m, y, k float64) icolor.Triple {
	return icolor.Triple{
		(1 - c) * (1 - k) * icolor.ChannelMax,
		(1 - m) * (1 - k) * icolor.ChannelMax,
		(1 - y) * (1 - k) * icolor.ChannelMax,
	}
}

// hwbToRGB converts hue, whiteness and blackness (0..1) via HSV.
// Whiteness and blackness summing past 1 collapse to a gray.
func hwbToRGB(h, w, b float64) icolor.Triple {
	if w+b >= 1 {
		gray := w / (w + b) * icolor.ChannelMax
		return icolor.Triple{gray, gray, gray}
	}
	v := 1 - b
	return fromColorful(colorful.Hsv(h, 1-w/v, v))
}
