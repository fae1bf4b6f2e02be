package blend

// ChannelFunc combines one channel of each operand. Inputs and output are on
// the 0..255 scale.
type ChannelFunc func(a, b float64) float64

// Func returns the alpha-aware kernel for the given mode, meant for
// premultiplied channels. Returns nil for an invalid mode.
func Func(mode Mode) ChannelFunc {
	switch mode {
	case ModeAdd:
		return addClamp
	case ModeSubtract:
		return subClamp
	case ModeMultiply:
		return mulDiv255
	case ModeDivide:
		return divide
	case ModeScreen:
		return screen
	case ModeOverlay:
		return overlay
	case ModeDodge:
		return dodge
	case ModeBurn:
		return burnPremultiplied
	}
	return nil
}

// OpaqueFunc returns the kernel for straight, alpha-unaware channels.
// It differs from Func only for ModeBurn, whose zero guard is a != 0 here.
func OpaqueFunc(mode Mode) ChannelFunc {
	if mode == ModeBurn {
		return burn
	}
	return Func(mode)
}

// divide scales a by the inverse of b.
// A zero divisor saturates to 255.
func divide(a, b float64) float64 {
	if b == 0 {
		return channelMax
	}
	return min(channelMax*a/b, channelMax)
}

// screen produces a lighter result than multiply.
// Formula: 255 - (255-a)*(255-b)/255
func screen(a, b float64) float64 {
	return channelMax - mulDiv255(inv255(a), inv255(b))
}

// overlay multiplies dark values of a and screens light ones.
func overlay(a, b float64) float64 {
	if a < 128 {
		return 2 * a * b / channelMax
	}
	return channelMax - 2*inv255(a)*inv255(b)/channelMax
}

// dodge brightens b to reflect a.
// Formula: if a == 255: 255, else: min(255, b*255/(255-a))
func dodge(a, b float64) float64 {
	if a < channelMax {
		return min(channelMax, b*channelMax/inv255(a))
	}
	return channelMax
}

// burn darkens b to reflect a, with a zero guard on a.
// Formula: if a == 0: 0, else: max(0, 255 - 255*(255-b)/a)
func burn(a, b float64) float64 {
	if a != 0 {
		return max(0, channelMax-channelMax*inv255(b)/a)
	}
	return 0
}

// burnPremultiplied is burn as the alpha-aware path has always computed it:
// the guard admits a == 0, so a zero channel divides by zero. With b < 255
// that yields -Inf and saturates to 0; with b == 255 the result is NaN.
func burnPremultiplied(a, b float64) float64 {
	if a >= 0 {
		return max(0, channelMax-channelMax*inv255(b)/a)
	}
	return 0
}
