package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are nominally in [0,1]; values outside are mirrored
// through the origin so out-of-gamut colors survive a round trip.
func SRGBToLinear(s float64) float64 {
	if s < 0 {
		return -SRGBToLinear(-s)
	}
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l < 0 {
		return -LinearToSRGB(-l)
	}
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// EncodedToLinear converts 0..255 sRGB channels to linear light in [0,1].
func EncodedToLinear(c Triple) Triple {
	return Triple{
		SRGBToLinear(c[0] / ChannelMax),
		SRGBToLinear(c[1] / ChannelMax),
		SRGBToLinear(c[2] / ChannelMax),
	}
}

// LinearToEncoded converts linear light channels back to the 0..255 sRGB scale.
// No clamping is applied.
func LinearToEncoded(c Triple) Triple {
	return Triple{
		LinearToSRGB(c[0]) * ChannelMax,
		LinearToSRGB(c[1]) * ChannelMax,
		LinearToSRGB(c[2]) * ChannelMax,
	}
}
