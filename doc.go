// Package tint provides immutable color values that live in any of a fixed
// set of color spaces, convert between them without accumulating error, and
// support mixing, lightening and Photoshop-style compositing.
//
// # Overview
//
// A [Color] holds channel values, the [space.Space] they belong to and an
// alpha in [0, 1]. Every operation returns a new Color; none modifies its
// receiver.
//
//	c := tint.MustHex("#123456")
//	hsl, _ := c.Convert(space.HSL)
//	back, _ := hsl.Convert(space.RGB) // exactly #123456 again
//
// # Lineage
//
// A converted color remembers the color it was converted from. Converting it
// again starts from that original rather than from the converted values, so
// chains such as rgb -> hsl -> hsv -> cmyk -> lab -> rgb are lossless.
// Lighten and Darken deliberately drop this lineage before converting back
// to the receiver's space.
//
// # Algebra
//
// Mix interpolates in any space, taking the short way round on hue
// channels. The compositing operators (Add, Subtract, Multiply, Divide,
// Screen, Overlay, Dodge, Burn) work on alpha-premultiplied sRGB channels on
// the 0..255 scale. Exponent raises normalized channels to a power.
//
// # Logging
//
// tint is silent by default. Call [SetLogger] to receive debug records for
// forward conversions and dropped lineage.
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
