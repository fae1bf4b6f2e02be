package tint

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in    string
		want  []float64
		alpha float64
		out   string
	}{
		{"#f00", []float64{255, 0, 0}, 1, "#ff0000"},
		{"#f008", []float64{255, 0, 0}, 0x88 / 255.0, "#ff000088"},
		{"#123456", []float64{0x12, 0x34, 0x56}, 1, "#123456"},
		{"#12345678", []float64{0x12, 0x34, 0x56}, 0x78 / 255.0, "#12345678"},
		{"abcdef", []float64{0xab, 0xcd, 0xef}, 1, "#abcdef"},
		{"#ABCDEF", []float64{0xab, 0xcd, 0xef}, 1, "#abcdef"},
		{"#000000ff", []float64{0, 0, 0}, 1, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q) error = %v", tt.in, err)
			}
			assertValues(t, c, tt.want...)
			if c.Alpha() != tt.alpha {
				t.Errorf("Alpha() = %v, want %v", c.Alpha(), tt.alpha)
			}
			if got := c.Hex(); got != tt.out {
				t.Errorf("Hex() = %q, want %q", got, tt.out)
			}
		})
	}
}

func TestHexErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#123456789", "#ggg", "#12345z"} {
		t.Run(in, func(t *testing.T) {
			if _, err := Hex(in); !errors.Is(err, ErrInvalidHex) {
				t.Errorf("Hex(%q) error = %v, want ErrInvalidHex", in, err)
			}
		})
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex did not panic")
		}
	}()
	MustHex("nope")
}

func TestHexRender(t *testing.T) {
	tests := []struct {
		name string
		c    *Color
		want string
	}{
		{"clamped", RGB(300, -5, 127.5), "#ff0080"},
		{"half alpha", RGBA(255, 255, 255, 128.0/255), "#ffffff80"},
		{"hsl", HSL(240, 100, 50), "#0000ff"},
		{"opaque above one", RGBA(0, 0, 0, 1.25), "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexNaNChannels(t *testing.T) {
	// Burn over a zero channel with a white backdrop divides 0 by 0.
	c := RGB(0, 0, 0).Burn(RGB(255, 255, 255))
	for i, v := range c.Values() {
		if !math.IsNaN(v) {
			t.Fatalf("channel %d = %v, want NaN", i, v)
		}
	}
	if got := c.Hex(); got != "#000000" {
		t.Errorf("Hex() = %q, want #000000", got)
	}
	if got := c.NRGBA(); got != (color.NRGBA{A: 0xff}) {
		t.Errorf("NRGBA() = %v, want opaque black", got)
	}
}
