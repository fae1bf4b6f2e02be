package tint

import "github.com/gogpu/tint/space"

// Option configures Mix, Lighten and Darken.
//
// Example:
//
//	// Mix a quarter of b into a, interpolating in HSL
//	m, err := a.Mix(b, tint.WithAmount(0.25), tint.WithMode(space.HSL))
type Option func(*options)

// options holds the parameters shared by the interpolating operations.
type options struct {
	amount float64
	mode   space.Space
}

// WithAmount sets how far an operation moves: the share of the other color
// for Mix, or the fraction of the lightness range for Lighten and Darken.
func WithAmount(amount float64) Option {
	return func(o *options) {
		o.amount = amount
	}
}

// WithMode sets the space an operation works in.
func WithMode(mode space.Space) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// applyOptions starts from the operation's defaults and applies opts in order.
func applyOptions(amount float64, mode space.Space, opts []Option) options {
	o := options{amount: amount, mode: mode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
