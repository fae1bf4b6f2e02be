package blend

// channelMax is the top of the channel scale every kernel works on.
const channelMax = 255.0

// mulDiv255 multiplies two channels and rescales the product to 0..255.
func mulDiv255(a, b float64) float64 {
	return a * b / channelMax
}

// inv255 computes 255 - x.
func inv255(x float64) float64 {
	return channelMax - x
}

// addClamp adds two channels and clamps to 255.
func addClamp(a, b float64) float64 {
	return min(a+b, channelMax)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b float64) float64 {
	return max(a-b, 0)
}

// clamp01 restricts an alpha value to [0, 1]. NaN passes through.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
