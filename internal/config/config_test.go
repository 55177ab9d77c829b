package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptionalMissing(t *testing.T) {
	r, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Resolved{Format: "hsl", Precision: 1}, r)
}

func TestLoadOptionalYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, YAML_NAME, "format: RGB\nprecision: 0\nverbose: true\n")
	writeFile(t, dir, TOML_NAME, "format = \"hex\"\n")

	r, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, &Resolved{Path: path, Format: "rgb", Precision: 0, Verbose: true}, r)
}

func TestLoadOptionalTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, TOML_NAME, "format = \"all\"\nprecision = 3\n")

	r, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, &Resolved{Path: path, Format: "all", Precision: 3}, r)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, content, want string
	}{
		{"bad-format.yaml", "format: cmyk\n", "invalid format"},
		{"bad-precision.toml", "precision = 11\n", "outside range"},
		{"broken.yaml", "format: [\n", "failed to parse"},
		{"broken.toml", "format = \n", "failed to parse"},
		{"settings.ini", "format=hsl\n", "unknown config file type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.name, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	for _, f := range Formats {
		assert.NoError(t, ValidateFormat(f))
	}
	assert.Error(t, ValidateFormat("HSL"))
	assert.NoError(t, ValidateFormat(NormaliseFormat(" HSL\t")))
	assert.Equal(t, "scaled", NormaliseFormat("Scaled"))
	assert.NoError(t, ValidatePrecision(0))
	assert.NoError(t, ValidatePrecision(MAX_PRECISION))
	assert.Error(t, ValidatePrecision(-1))
}
