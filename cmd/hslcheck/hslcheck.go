// hslcheck compares the colour package's HSL conversion with colorconv's for
// every SVG colour keyword, and checks that each colour survives a round trip
// through HSL. Differences are reported on stdout; the exit status is the
// number of mismatches, capped at 125.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"fortio.org/log"
	"github.com/crazy3lf/colorconv"
	"golang.org/x/image/colornames"

	"github.com/realh/hslcore/pkg/colour"
)

const (
	HUE_TOLERANCE = 0.5
	SL_TOLERANCE  = 0.005
)

// referenceHSL gets the HSL triple from colorconv.
func referenceHSL(c color.Color) (h, s, l colour.Scalar) {
	return colorconv.ColorToHSL(c)
}

// hueDiff is the angle between two hues, allowing for wrap-around.
func hueDiff(a, b colour.Scalar) colour.Scalar {
	d := math.Mod(math.Abs(a-b), 360)
	return min(d, 360-d)
}

// check compares one named colour, returning a description of the problem or
// "" if it's fine.
func check(c color.Color) string {
	col := colour.FromStdColour(c)
	hsla := col.ToHSLA()
	h, s, l := referenceHSL(c)
	// Hue is meaningless for greys
	if s > SL_TOLERANCE && hueDiff(h, hsla.H) > HUE_TOLERANCE {
		return fmt.Sprintf("hue %f vs colorconv %f", hsla.H, h)
	}
	if math.Abs(s-hsla.S) > SL_TOLERANCE {
		return fmt.Sprintf("saturation %f vs colorconv %f", hsla.S, s)
	}
	if math.Abs(l-hsla.L) > SL_TOLERANCE {
		return fmt.Sprintf("lightness %f vs colorconv %f", hsla.L, l)
	}
	if !colour.IsGoodMatch(col, c) {
		return fmt.Sprintf("round trip gives %v", col.NRGBA())
	}
	return ""
}

func showHsl(out io.Writer, name string, c color.Color) {
	r, g, b, _ := c.RGBA()
	hsla := colour.FromStdColour(c).ToHSLA()
	fmt.Fprintf(out, "%20s : #%02x%02x%02x : hsl(%f, %f, %f)\n",
		name, r>>8, g>>8, b>>8, hsla.H, hsla.S, hsla.L)
}

// checkAll checks every name and returns the number of mismatches.
func checkAll(out io.Writer, names []string, verbose bool) int {
	mismatches := 0
	for _, name := range names {
		c, ok := colornames.Map[name]
		if !ok {
			log.Warnf("Unknown colour name '%s'", name)
			mismatches++
			continue
		}
		if verbose {
			showHsl(out, name, c)
		}
		if problem := check(c); problem != "" {
			fmt.Fprintf(out, "%20s : %s\n", name, problem)
			mismatches++
		}
	}
	return mismatches
}

func main() {
	verbose := flag.Bool("v", false, "show every colour")
	flag.Parse()
	names := flag.Args()
	if len(names) == 0 {
		names = colornames.Names
	}
	mismatches := checkAll(os.Stdout, names, *verbose)
	log.Infof("Checked %d colours, %d mismatches", len(names), mismatches)
	os.Exit(min(mismatches, 125))
}
