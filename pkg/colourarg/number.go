package colourarg

import (
	"strconv"

	"github.com/realh/hslcore/pkg/colour"
)

// NumberArg parses a numeric command line argument such as an angle or a
// lightness.
func NumberArg(s string) (colour.Scalar, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &Error{Kind: KindCouldNotParseNumber, Text: s, Err: err}
	}
	return v, nil
}
