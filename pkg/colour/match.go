package colour

import (
	"image/color"
	"math"
)

const (
	MATCH_WEIGHT_R = 0.299
	MATCH_WEIGHT_G = 0.587
	MATCH_WEIGHT_B = 0.114

	GOOD_MATCH = 0.001
)

// SqByteDiff returns the square of the difference between two colour words
// normalised from range (0-65535) to (0.0-1.0). The words are uint32 with
// 16-bits of precision because that's what color.Color.RGBA returns.
func SqByteDiff(a, b uint32) Scalar {
	d := Scalar(int64(a) - int64(b))
	return d * d / (65535.0 * 65535.0)
}

// Match compares two colours, returning a number between 0 and 1. 0 means a
// perfect match, 1 means complete mismatch. Alpha is ignored.
func Match(c1, c2 color.Color) Scalar {
	r1, g1, b1, _ := c1.RGBA()
	r2, g2, b2, _ := c2.RGBA()
	return math.Sqrt(SqByteDiff(r1, r2)*MATCH_WEIGHT_R +
		SqByteDiff(g1, g2)*MATCH_WEIGHT_G +
		SqByteDiff(b1, b2)*MATCH_WEIGHT_B)
}

// IsGoodMatch is true if Match(c1, c2) is below GOOD_MATCH.
func IsGoodMatch(c1, c2 color.Color) bool {
	return Match(c1, c2) < GOOD_MATCH
}
