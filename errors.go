package tint

import (
	"errors"

	"github.com/gogpu/tint/internal/blend"
	"github.com/gogpu/tint/space"
)

var (
	// ErrInvalidSpace is returned when a color is constructed in, or
	// converted to, a space outside the registry.
	ErrInvalidSpace = space.ErrInvalidSpace

	// ErrChannelCount is returned when the number of values does not match
	// the channel count of the space.
	ErrChannelCount = space.ErrChannelCount

	// ErrInvalidAlpha is returned for a NaN or infinite alpha.
	ErrInvalidAlpha = errors.New("tint: alpha must be finite")

	// ErrInvalidHex is returned for a malformed hex color string.
	ErrInvalidHex = errors.New("tint: invalid hex color")

	// ErrNoLightnessChannel is returned by Lighten and Darken when the
	// requested mode has no "lightness" channel.
	ErrNoLightnessChannel = errors.New("tint: mode has no lightness channel")

	// ErrUnknownName is returned for a color name outside the palette.
	ErrUnknownName = errors.New("tint: unknown color name")

	// ErrInvalidMode is returned for an undefined blend mode.
	ErrInvalidMode = blend.ErrUnknownMode
)
