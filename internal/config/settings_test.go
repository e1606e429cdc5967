package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	// search mode from an empty directory finds nothing
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), *s)
}

func TestLoadSettings_File(t *testing.T) {
	path := writeFile(t, "bdtax.yaml", `brackets: fy2025.yaml
language: bn
format: json
logging:
  level: debug
  format: json
  output_file: /tmp/bdtax.log
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "fy2025.yaml", s.Brackets)
	assert.Equal(t, "bn", s.Language)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
	assert.Equal(t, "/tmp/bdtax.log", s.Logging.OutputFile)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "bdtax.yaml", "language: bn\n")

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "bn", s.Language)
	assert.Equal(t, "console", s.Format)
	assert.Equal(t, "warn", s.Logging.Level)
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	path := writeFile(t, "bdtax.yaml", "format: csv\n")
	t.Setenv("BDTAX_FORMAT", "yaml")
	t.Setenv("BDTAX_LOGGING_LEVEL", "error")

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", s.Format)
	assert.Equal(t, "error", s.Logging.Level)
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	_, err := LoadSettings("/definitely/not/here/bdtax.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings")
}
