// Package parse is a minimal colour parser for the hsl binaries. It knows
// hex codes and the SVG 1.1 colour keywords, nothing else.
package parse

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/image/colornames"

	"github.com/realh/hslcore/pkg/colour"
)

// Colour parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" (the '#' is
// optional) or a colour keyword such as "cornflowerblue". Keywords are
// case-insensitive.
func Colour(text string) (colour.Colour, bool) {
	if c, ok := colornames.Map[strings.ToLower(text)]; ok {
		return colour.FromStdColour(c), true
	}
	return Hex(text)
}

// Hex parses a hex colour code.
func Hex(text string) (colour.Colour, bool) {
	h := strings.TrimPrefix(text, "#")
	var digits []string
	switch len(h) {
	case 3, 4:
		for i := 0; i < len(h); i++ {
			digits = append(digits, h[i:i+1]+h[i:i+1])
		}
	case 6, 8:
		for i := 0; i < len(h); i += 2 {
			digits = append(digits, h[i:i+2])
		}
	default:
		return colour.Colour{}, false
	}
	channels := make([]uint8, 0, 4)
	for _, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return colour.Colour{}, false
		}
		channels = append(channels, safecast.MustConv[uint8](v))
	}
	alpha := 1.0
	if len(channels) == 4 {
		alpha = colour.Scalar(channels[3]) / 255
	}
	return colour.FromRGBA(channels[0], channels[1], channels[2], alpha), true
}
