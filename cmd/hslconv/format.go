package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/realh/hslcore/pkg/colour"
)

// num formats x with a fixed number of decimal places, dropping trailing
// zeros.
func num(x colour.Scalar, precision int) string {
	s := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func formatHSL(c colour.Colour, precision int) string {
	v := c.ToHSLA()
	h, s, l := num(v.H, precision), num(100*v.S, precision), num(100*v.L, precision)
	if v.Alpha == 1 {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", h, s, l)
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", h, s, l, num(v.Alpha, precision+2))
}

func formatRGB(c colour.Colour, precision int) string {
	v := c.ToRGBA()
	if v.Alpha == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", v.R, v.G, v.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", v.R, v.G, v.B, num(v.Alpha, precision+2))
}

func formatScaled(c colour.Colour, precision int) string {
	v := c.ToRGBAScaled()
	p := precision + 2
	if v.Alpha == 1 {
		return fmt.Sprintf("rgb(%s, %s, %s)", num(v.R, p), num(v.G, p), num(v.B, p))
	}
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		num(v.R, p), num(v.G, p), num(v.B, p), num(v.Alpha, p))
}

func formatHex(c colour.Colour, _ int) string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

var formatters = map[string]func(colour.Colour, int) string{
	"hsl":    formatHSL,
	"rgb":    formatRGB,
	"scaled": formatScaled,
	"hex":    formatHex,
}

// Format renders c in the named format. "all" gives every format separated by
// tabs, hex first.
func Format(c colour.Colour, format string, precision int) string {
	if format == "all" {
		parts := make([]string, 0, len(formatters))
		for _, f := range []string{"hex", "rgb", "hsl", "scaled"} {
			parts = append(parts, formatters[f](c, precision))
		}
		return strings.Join(parts, "\t")
	}
	return formatters[format](c, precision)
}
