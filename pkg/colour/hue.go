package colour

// Hue is an angle in degrees. It is stored as given and only normalised when
// read.
type Hue struct {
	unclipped Scalar
}

// HueFrom wraps an angle (degrees) which may lie outside [0, 360].
func HueFrom(unclipped Scalar) Hue {
	return Hue{unclipped: unclipped}
}

// Value returns the hue in the interval [0, 360]. Exactly 360 is kept as 360
// rather than wrapping to 0.
func (h Hue) Value() Scalar {
	if h.unclipped == 360 {
		return h.unclipped
	}
	return modPositive(h.unclipped, 360)
}
