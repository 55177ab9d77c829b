// Package colour holds the canonical colour value used by the hsl tools and
// the conversions between HSL and RGB.
//
// A Colour is stored as hue, saturation, lightness and alpha. Colours outside
// the sRGB gamut can't be represented. Two colours are equal when they look
// the same on an 8-bit display, see Colour.Equal.
package colour

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Colour is an immutable colour value. The zero value is transparent black.
type Colour struct {
	hue        Hue
	saturation Scalar
	lightness  Scalar
	alpha      Scalar
}

// RGBA is a red, green, blue and alpha view of a Colour. T is either Scalar,
// with channels between 0.0 and 1.0, or uint8, with channels between 0 and
// 255. Alpha is always a Scalar between 0.0 and 1.0.
type RGBA[T Scalar | uint8] struct {
	R, G, B T
	Alpha   Scalar
}

// HSLA is a hue, saturation, lightness and alpha view of a Colour. H is in
// degrees between 0.0 and 360.0, the others are between 0.0 and 1.0.
type HSLA struct {
	H, S, L, Alpha Scalar
}

// FromHSLA creates a Colour. The values are stored verbatim, nothing is
// clamped.
func FromHSLA(hue, saturation, lightness, alpha Scalar) Colour {
	return Colour{
		hue:        HueFrom(hue),
		saturation: saturation,
		lightness:  lightness,
		alpha:      alpha,
	}
}

func FromHSL(hue, saturation, lightness Scalar) Colour {
	return FromHSLA(hue, saturation, lightness, 1.0)
}

// FromRGBA creates a Colour from 8-bit RGB values and an alpha value between
// 0.0 and 1.0.
func FromRGBA(r, g, b uint8, alpha Scalar) Colour {
	// See https://en.wikipedia.org/wiki/HSL_and_HSV
	maxChroma := max(r, g, b)
	minChroma := min(r, g, b)

	chroma := maxChroma - minChroma
	chromaS := Scalar(chroma) / 255

	rS := Scalar(r) / 255
	gS := Scalar(g) / 255
	bS := Scalar(b) / 255

	var hue Scalar
	switch {
	case chroma == 0:
		hue = 0
	case r == maxChroma:
		hue = modPositive((gS-bS)/chromaS, 6)
	case g == maxChroma:
		hue = (bS-rS)/chromaS + 2
	default:
		hue = (rS-gS)/chromaS + 4
	}
	hue *= 60

	lightness := (Scalar(maxChroma) + Scalar(minChroma)) / (255 * 2)
	saturation := 0.0
	if chroma != 0 {
		saturation = chromaS / (1 - math.Abs(2*lightness-1))
	}

	return FromHSLA(hue, saturation, lightness, alpha)
}

func FromRGB(r, g, b uint8) Colour {
	return FromRGBA(r, g, b, 1.0)
}

// FromRGBAScaled creates a Colour from RGB and alpha values between 0.0 and
// 1.0. RGB values outside that range are clamped.
func FromRGBAScaled(r, g, b, alpha Scalar) Colour {
	return FromRGBA(scaledToByte(r), scaledToByte(g), scaledToByte(b), alpha)
}

func FromRGBScaled(r, g, b Scalar) Colour {
	return FromRGBAScaled(r, g, b, 1.0)
}

// scaledToByte maps [0.0, 1.0] onto [0, 255]. Clamping happens before
// rounding so the result can't wrap.
func scaledToByte(x Scalar) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return safecast.MustConv[uint8](int(math.Round(clamp(0, 255, 255*x))))
}

// Black is pure black.
func Black() Colour {
	return FromHSL(0, 0, 0)
}

// White is pure white.
func White() Colour {
	return FromHSL(0, 0, 1)
}

// Gray creates a grey from a lightness value, 0.0 is black and 1.0 is white.
func Gray(lightness Scalar) Colour {
	return FromHSL(0, 0, lightness)
}

// ToHSLA returns the hue in degrees between 0.0 and 360.0 and the other
// components as stored.
func (c Colour) ToHSLA() HSLA {
	return HSLA{
		H:     c.hue.Value(),
		S:     c.saturation,
		L:     c.lightness,
		Alpha: c.alpha,
	}
}

// ToRGBA returns 8-bit RGB values and the alpha value. The result is only
// meaningful when saturation and lightness are between 0.0 and 1.0.
func (c Colour) ToRGBA() RGBA[uint8] {
	s := c.ToRGBAScaled()
	return RGBA[uint8]{
		R:     uint8(math.Round(255 * s.R)),
		G:     uint8(math.Round(255 * s.G)),
		B:     uint8(math.Round(255 * s.B)),
		Alpha: c.alpha,
	}
}

// ToRGBAScaled returns RGB and alpha values between 0.0 and 1.0.
func (c Colour) ToRGBAScaled() RGBA[Scalar] {
	hS := c.hue.Value() / 60
	chr := (1 - math.Abs(2*c.lightness-1)) * c.saturation
	m := c.lightness - chr/2
	x := chr * (1 - math.Abs(math.Mod(hS, 2)-1))

	var r, g, b Scalar
	switch {
	case hS < 1:
		r, g, b = chr, x, 0
	case hS < 2:
		r, g, b = x, chr, 0
	case hS < 3:
		r, g, b = 0, chr, x
	case hS < 4:
		r, g, b = 0, x, chr
	case hS < 5:
		r, g, b = x, 0, chr
	default:
		r, g, b = chr, 0, x
	}

	return RGBA[Scalar]{
		R:     r + m,
		G:     g + m,
		B:     b + m,
		Alpha: c.alpha,
	}
}

// Equal reports whether c and other have the same 8-bit RGB values and
// exactly the same alpha. The stored HSL values are not compared; HSL has
// many representations of black, for example.
func (c Colour) Equal(other Colour) bool {
	return c.ToRGBA() == other.ToRGBA()
}

// String formats the colour as CSS-style hsla.
func (c Colour) String() string {
	hsla := c.ToHSLA()
	return fmt.Sprintf("hsla(%.1f, %.1f%%, %.1f%%, %g)",
		hsla.H, 100*hsla.S, 100*hsla.L, hsla.Alpha)
}
