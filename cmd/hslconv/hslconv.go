// hslconv converts colours to HSL, RGB or hex. Colours are taken from the
// arguments or, if there are none, from stdin one per line. An argument of
// "-" reads one line from stdin. The output is on stdout, one line per colour.
//
// Settings are read from hslconv.yaml or hslconv.toml in the current
// directory, if present, or from the file named with -config. Flags override
// the file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fortio.org/log"

	"github.com/realh/hslcore/internal/config"
	"github.com/realh/hslcore/internal/parse"
	"github.com/realh/hslcore/pkg/colour"
	"github.com/realh/hslcore/pkg/colourarg"
)

func loadConfig(path string) (*config.Resolved, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOptional(".")
}

// settings are the resolved config plus options only available as flags.
type settings struct {
	*config.Resolved
	// Alpha replaces each colour's alpha if set.
	Alpha *colour.Scalar
}

// applyFlags overrides cfg with any flags that were given. An empty format,
// negative precision or empty alpha means the flag wasn't given.
func applyFlags(cfg *config.Resolved, format string, precision int,
	alpha string,
) (*settings, error) {
	st := &settings{Resolved: cfg}
	if format != "" {
		format = config.NormaliseFormat(format)
		if err := config.ValidateFormat(format); err != nil {
			return nil, err
		}
		st.Format = format
	}
	if precision >= 0 {
		if err := config.ValidatePrecision(precision); err != nil {
			return nil, err
		}
		st.Precision = precision
	}
	if alpha != "" {
		a, err := colourarg.NumberArg(alpha)
		if err != nil {
			return nil, err
		}
		if a < 0 || a > 1 {
			return nil, fmt.Errorf("alpha %s is outside 0-1", alpha)
		}
		st.Alpha = &a
	}
	return st, nil
}

// run converts every colour the iterator yields and returns the exit status:
// 0 if all went well, 1 if any colour couldn't be read or parsed.
func run(it *colourarg.Iterator, out io.Writer, cfg *settings) int {
	status := 0
	n := 0
	for c, err := range it.All() {
		n++
		if err != nil {
			log.Warnf("Colour %d: %v", n, err)
			status = 1
			continue
		}
		if cfg.Alpha != nil {
			hsla := c.ToHSLA()
			c = colour.FromHSLA(hsla.H, hsla.S, hsla.L, *cfg.Alpha)
		}
		fmt.Fprintln(out, Format(c, cfg.Format, cfg.Precision))
	}
	log.Debugf("Processed %d colours", n)
	return status
}

func main() {
	format := flag.String("format", "", "output format: hsl, rgb, scaled, hex or all")
	precision := flag.Int("precision", -1, "decimal places for HSL and scaled values")
	alpha := flag.String("alpha", "", "replace every colour's alpha (0-1)")
	cfgPath := flag.String("config", "", "settings file (.yaml or .toml)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] [colour|- ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	st, err := applyFlags(cfg, *format, *precision, *alpha)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *verbose || cfg.Verbose {
		log.SetLogLevel(log.Debug)
		colourarg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if cfg.Path != "" {
		log.Debugf("Using settings from %s", cfg.Path)
	}

	it, err := colourarg.New(flag.Args(), parse.Colour)
	if err != nil {
		log.Fatalf("%v", err)
	}
	os.Exit(run(it, os.Stdout, st))
}
