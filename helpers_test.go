package tint

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares float slices with a small absolute margin.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertValues(t *testing.T, c *Color, want ...float64) {
	t.Helper()
	if diff := cmp.Diff(want, c.Values(), approx); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

// assertAbout checks that c, rendered in rgb, lies within 13/255 per channel
// and 0.05 alpha of the hex color want.
func assertAbout(t *testing.T, c *Color, want string) {
	t.Helper()
	w := MustHex(want)
	got := c.mustConvert(w.Space())
	for i, v := range w.values {
		if math.Abs(got.values[i]-v) > 13 {
			t.Errorf("channel %d = %v, want about %v (%s vs %s)", i, got.values[i], v, c.Hex(), want)
		}
	}
	if math.Abs(got.alpha-w.alpha) > 0.05 {
		t.Errorf("alpha = %v, want about %v", got.alpha, w.alpha)
	}
}
