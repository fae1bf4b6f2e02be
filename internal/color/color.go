// Package color provides the sRGB transfer functions behind tint's
// linear-light space.
package color

// Triple is an RGB channel triple. Encoded triples are on the 0..255 scale,
// linear triples on 0..1.
type Triple [3]float64

// ChannelMax is the top of the encoded channel scale.
const ChannelMax = 255.0
