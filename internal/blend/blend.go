// Package blend implements the per-channel compositing kernels behind
// tint's channel algebra.
//
// Kernels work on float64 channels on the 0..255 scale. The alpha-aware
// path feeds them premultiplied channels (value * alpha); the opaque path
// feeds straight channels and ignores alpha entirely.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names outside the mode table.
var ErrUnknownMode = errors.New("blend: unknown mode")

// Mode represents a compositing operator.
type Mode uint8

const (
	ModeAdd      Mode = iota // min(a+b, 255)
	ModeSubtract             // max(a-b, 0)
	ModeMultiply             // a*b/255
	ModeDivide               // min(255*a/b, 255)
	ModeScreen               // 255 - (255-a)*(255-b)/255
	ModeOverlay              // multiply or screen depending on a
	ModeDodge                // b*255/(255-a)
	ModeBurn                 // 255 - 255*(255-b)/a

	modeCount
)

var modeNames = [modeCount]string{
	ModeAdd:      "add",
	ModeSubtract: "subtract",
	ModeMultiply: "multiply",
	ModeDivide:   "divide",
	ModeScreen:   "screen",
	ModeOverlay:  "overlay",
	ModeDodge:    "dodge",
	ModeBurn:     "burn",
}

// String returns the lower-case operator name.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid reports whether m is one of the defined operators.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Modes returns every operator in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, modeCount)
	for m := ModeAdd; m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMode looks an operator up by name, ignoring case and surrounding space.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == key {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
