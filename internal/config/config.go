// Package config loads the optional hslconv.yaml or hslconv.toml settings
// file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	YAML_NAME = "hslconv.yaml"
	TOML_NAME = "hslconv.toml"

	DEFAULT_FORMAT    = "hsl"
	DEFAULT_PRECISION = 1
	MAX_PRECISION     = 10
)

// Formats lists the accepted values of Config.Format.
var Formats = []string{"hsl", "rgb", "scaled", "hex", "all"}

// Config holds hslconv's output settings.
type Config struct {
	Format    string `yaml:"format" toml:"format"`
	Precision *int   `yaml:"precision" toml:"precision"`
	Verbose   bool   `yaml:"verbose" toml:"verbose"`
}

// Resolved is a Config with defaults applied and validated.
type Resolved struct {
	Path      string
	Format    string
	Precision int
	Verbose   bool
}

// LoadOptional looks for hslconv.yaml, then hslconv.toml, in dir. If neither
// exists the defaults are returned.
func LoadOptional(dir string) (*Resolved, error) {
	for _, name := range []string{YAML_NAME, TOML_NAME} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to stat %s", path)
		}
	}
	return Resolve(&Config{}, "")
}

// Load reads a config file, choosing the decoder from its extension.
func Load(path string) (*Resolved, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return nil, fmt.Errorf("%s: unknown config file type", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return Resolve(&cfg, path)
}

// Resolve applies defaults to cfg and checks its values. path is only used
// for reporting.
func Resolve(cfg *Config, path string) (*Resolved, error) {
	r := &Resolved{
		Path:      path,
		Format:    NormaliseFormat(cfg.Format),
		Precision: DEFAULT_PRECISION,
		Verbose:   cfg.Verbose,
	}
	if r.Format == "" {
		r.Format = DEFAULT_FORMAT
	}
	if err := ValidateFormat(r.Format); err != nil {
		return nil, err
	}
	if cfg.Precision != nil {
		r.Precision = *cfg.Precision
	}
	if err := ValidatePrecision(r.Precision); err != nil {
		return nil, err
	}
	return r, nil
}

// NormaliseFormat makes format names case-insensitive and ignores surrounding
// space.
func NormaliseFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

// ValidateFormat checks a format name.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q (use one of %s)", format,
		strings.Join(Formats, ", "))
}

// ValidatePrecision checks a number of decimal places.
func ValidatePrecision(precision int) error {
	if precision < 0 || precision > MAX_PRECISION {
		return fmt.Errorf("precision %d outside range 0..%d", precision,
			MAX_PRECISION)
	}
	return nil
}
