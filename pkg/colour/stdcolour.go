package colour

import (
	"image/color"
	"math"

	"fortio.org/safecast"
)

// Model converts any color.Color to a Colour.
var Model = color.ModelFunc(colourModel)

func colourModel(c color.Color) color.Color {
	return FromStdColour(c)
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the 8-bit non-premultiplied equivalent. Alpha is clamped and
// rounded to a byte.
func (c Colour) NRGBA() color.NRGBA {
	v := c.ToRGBA()
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: alphaToByte(v.Alpha)}
}

// FromStdColour converts a color.Color via its 8-bit non-premultiplied form.
func FromStdColour(c color.Color) Colour {
	if col, ok := c.(Colour); ok {
		return col
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, Scalar(n.A)/255)
}

func alphaToByte(a Scalar) uint8 {
	if math.IsNaN(a) {
		return 0
	}
	return safecast.MustConv[uint8](int(math.Round(255 * clamp(0, 1, a))))
}
