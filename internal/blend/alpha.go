package blend

import "math"

// Alpha combines the alphas of both operands for the given mode.
// Inputs are in [0,1]; the result is clamped to [0,1].
//
// Add and subtract take the Euclidean sum of both alphas. Every other mode
// applies its own alpha-aware kernel to the alphas on the 0..255 scale.
func Alpha(mode Mode, a, b float64) float64 {
	switch mode {
	case ModeAdd, ModeSubtract:
		return math.Min(math.Sqrt(a*a+b*b), 1)
	}
	f := Func(mode)
	if f == nil {
		return clamp01(math.Max(a, b))
	}
	return clamp01(f(a*channelMax, b*channelMax) / channelMax)
}
