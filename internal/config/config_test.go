package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/jsonlog/pkg/logger"
)

// TestValidate checks defaults and rejection of unknown values.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty settings get defaults.
	settings := new(Config)
	require.NoError(t, Validate(settings))
	require.Equal(t, Default(), settings)

	require.ErrorIs(t, Validate(&Config{Level: "verbose"}), ErrUnknownLevel)
	require.ErrorIs(t, Validate(&Config{Format: "xml"}), ErrUnknownFormat)
	require.ErrorIs(t, Validate(&Config{Output: "/var/log/app.log"}), ErrUnknownOutput)

	require.NoError(t, Validate(&Config{Level: "WARN", Format: "console", Output: "stderr"}))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		Level:  "error",
		ID:     "service-a",
		Format: "console",
		Output: "stderr",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.Error(t, Save(path, nil))
}

// TestLoad_Errors covers missing files, bad YAML and invalid values.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("level: [unclosed"), DefaultFilePermissions))

	_, err = Load(broken)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("level: loud\n"), DefaultFilePermissions))

	_, err = Load(invalid)
	require.ErrorIs(t, err, ErrUnknownLevel)
}

// TestLoggerConfig verifies conversion of settings into logger options.
func TestLoggerConfig(t *testing.T) {
	t.Parallel()

	cfg := &Config{Level: "warning", ID: "abc", Format: "console", Output: "stderr"}

	loggerConfig, err := cfg.LoggerConfig()
	require.NoError(t, err)
	require.Equal(t, logger.SeverityWarning, loggerConfig.Threshold)
	require.Equal(t, "abc", loggerConfig.ID)
	require.Equal(t, logger.RendererConsole, loggerConfig.Renderer)
	require.Same(t, os.Stderr, loggerConfig.Output)
	require.Nil(t, loggerConfig.Sink)

	_, err = (&Config{Output: "syslog"}).LoggerConfig()
	require.ErrorIs(t, err, ErrUnknownOutput)
}
