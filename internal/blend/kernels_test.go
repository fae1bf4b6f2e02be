package blend

import (
	"math"
	"testing"
)

// TestFunc tests the alpha-aware kernels on hand-computed channel pairs.
func TestFunc(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		a, b float64
		want float64
	}{
		{"add black black", ModeAdd, 0, 0, 0},
		{"add clamps", ModeAdd, 200, 100, 255},
		{"add sum", ModeAdd, 0x11, 0x44, 0x55},
		{"subtract clamps", ModeSubtract, 0x11, 0x44, 0},
		{"subtract diff", ModeSubtract, 0x44, 0x11, 0x33},
		{"multiply white", ModeMultiply, 255, 77, 77},
		{"multiply gray", ModeMultiply, 0x11, 0x44, 0x11 * 0x44 / 255.0},
		{"divide", ModeDivide, 51, 102, 127.5},
		{"divide saturates", ModeDivide, 200, 100, 255},
		{"divide by zero", ModeDivide, 10, 0, 255},
		{"screen black", ModeScreen, 0, 99, 99},
		{"screen white", ModeScreen, 255, 99, 255},
		{"overlay dark", ModeOverlay, 0x11, 0x44, 2 * 0x11 * 0x44 / 255.0},
		{"overlay light", ModeOverlay, 200, 100, 255 - 2*55*155/255.0},
		{"dodge", ModeDodge, 0x11, 0x44, 0x44 * 255 / 238.0},
		{"dodge white", ModeDodge, 255, 10, 255},
		{"dodge saturates", ModeDodge, 200, 100, 255},
		{"burn", ModeBurn, 0x99, 0x99, 255 - 255*102/153.0},
		{"burn floor", ModeBurn, 10, 0, 0},
		{"burn zero a", ModeBurn, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Func(tt.mode)(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.mode, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestBurnGuards characterises the two burn guards.
func TestBurnGuards(t *testing.T) {
	if got := OpaqueFunc(ModeBurn)(0, 255); got != 0 {
		t.Errorf("opaque burn(0, 255) = %v, want 0", got)
	}
	if got := Func(ModeBurn)(0, 255); !math.IsNaN(got) {
		t.Errorf("premultiplied burn(0, 255) = %v, want NaN", got)
	}
	if got := Func(ModeBurn)(0, 254); got != 0 {
		t.Errorf("premultiplied burn(0, 254) = %v, want 0", got)
	}
}

// TestOpaqueFuncMatches checks that only burn differs between the two paths.
func TestOpaqueFuncMatches(t *testing.T) {
	samples := []float64{0, 1, 17, 127, 128, 200, 254, 255}
	for _, m := range Modes() {
		if m == ModeBurn {
			continue
		}
		f, g := Func(m), OpaqueFunc(m)
		for _, a := range samples {
			for _, b := range samples {
				if f(a, b) != g(a, b) {
					t.Errorf("%v(%v, %v): premultiplied %v, opaque %v", m, a, b, f(a, b), g(a, b))
				}
			}
		}
	}
}

// TestKernelRange checks that results stay within [0, 255] for in-range
// inputs, apart from the documented burn NaN.
func TestKernelRange(t *testing.T) {
	for _, m := range Modes() {
		f := OpaqueFunc(m)
		for a := 0.0; a <= 255; a += 15 {
			for b := 0.0; b <= 255; b += 15 {
				got := f(a, b)
				if got < 0 || got > 255 || math.IsNaN(got) {
					t.Fatalf("%v(%v, %v) = %v out of range", m, a, b, got)
				}
			}
		}
	}
}

func TestFuncInvalid(t *testing.T) {
	if Func(modeCount) != nil {
		t.Error("Func(modeCount) should be nil")
	}
}
