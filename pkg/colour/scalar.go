package colour

import "math"

// Scalar is the floating point type used for every non-discrete colour
// component.
type Scalar = float64

// clamp restricts x to the interval [lower, upper]. NaN is passed through.
func clamp(lower, upper, x Scalar) Scalar {
	if x < lower {
		return lower
	}
	if x > upper {
		return upper
	}
	return x
}

// modPositive is a modulo whose result always lies in [0, y) for positive y,
// unlike math.Mod which keeps the sign of x.
func modPositive(x, y Scalar) Scalar {
	return math.Mod(math.Mod(x, y)+y, y)
}
