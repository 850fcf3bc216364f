package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/jsonlog/internal/config"
)

// decode parses the JSON lines written by a run.
func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))

		records = append(records, record)
	}

	return records
}

// TestRun_Defaults runs without a settings file and expects every sample at debug level.
func TestRun_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(t.TempDir(), config.DefaultConfigFilename),
		ID:         "demo",
		Output:     &buf,
	})
	require.NoError(t, err)

	records := decode(t, &buf)
	require.Len(t, records, len(samples()))

	for i, s := range samples() {
		require.Equal(t, s.message, records[i]["event"])
		require.Equal(t, s.severity.String(), records[i]["level"])
		require.Equal(t, "demo", records[i]["id"])
		require.NotEmpty(t, records[i]["timestamp"])
	}

	require.Equal(t, "abc", records[5]["xyz"])
	require.Equal(t, float64(20), records[1]["logger_level"])
}

// TestRun_SettingsFile verifies file values apply and flags override them.
func TestRun_SettingsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, &config.Config{Level: "warning", ID: "from-file"}))

	var buf bytes.Buffer

	require.NoError(t, Run(context.Background(), &Options{
		ConfigPath:     path,
		ConfigRequired: true,
		Output:         &buf,
	}))

	records := decode(t, &buf)
	require.Len(t, records, 2)
	require.Equal(t, "Hello World 3", records[0]["event"])
	require.Equal(t, "Hello World 4", records[1]["event"])
	require.Equal(t, "from-file", records[0]["id"])

	buf.Reset()

	require.NoError(t, Run(context.Background(), &Options{
		ConfigPath: path,
		Level:      "critical",
		ID:         "from-flag",
		Output:     &buf,
	}))

	records = decode(t, &buf)
	require.Len(t, records, 1)
	require.Equal(t, "from-flag", records[0]["id"])
}

// TestRun_Errors covers a required missing file, bad overrides and a canceled context.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")

	err := Run(context.Background(), &Options{ConfigPath: missing, ConfigRequired: true})
	require.ErrorIs(t, err, os.ErrNotExist)

	err = Run(context.Background(), &Options{ConfigPath: missing, Level: "loud"})
	require.ErrorIs(t, err, config.ErrUnknownLevel)

	err = Run(context.Background(), &Options{ConfigPath: missing, Format: "xml"})
	require.ErrorIs(t, err, config.ErrUnknownFormat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer

	err = Run(ctx, &Options{ConfigPath: missing, Output: &buf})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, buf.String())
}
