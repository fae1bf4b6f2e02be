package tint

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		c    *Color
		want string
	}{
		{RGB(255, 0, 127.5), "rgb(255, 0, 127.5)"},
		{RGBA(255, 0, 0, 0.5), "rgba(255, 0, 0, 0.5)"},
		{HSL(180, 100, 50), "hsl(180, 100, 50)"},
		{HSL(180, 100, 50).WithAlpha(0.25), "hsla(180, 100, 50, 0.25)"},
		{HSV(10, 20, 30).WithAlpha(0.5), "hsv(10, 20, 30, [alpha = 0.5])"},
		{CMYK(0, 100, 100, 0), "cmyk(0, 100, 100, 0)"},
		{LinearRGB(0.25, 0, 1), "lrgb(0.25, 0, 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
