package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/oshokin/jsonlog/internal/config"
	"github.com/oshokin/jsonlog/internal/version"
	"github.com/oshokin/jsonlog/pkg/logger"
)

// Options configures a demo run.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ConfigRequired makes a missing settings file an error instead of falling back to defaults.
	ConfigRequired bool

	// Level overrides the configured minimum severity when non-empty.
	Level string

	// ID overrides the configured correlation id when non-empty.
	ID string

	// Format overrides the configured renderer when non-empty.
	Format string

	// Output replaces the configured stream when set.
	Output io.Writer
}

// sample is one record written by the demo.
type sample struct {
	severity logger.Severity
	message  string
	fields   logger.Fields
}

// Run builds the logger and writes the sample records.
// It stops early if ctx is canceled.
func Run(ctx context.Context, opts *Options) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	loggerConfig, err := settings.LoggerConfig()
	if err != nil {
		return fmt.Errorf("logger settings: %w", err)
	}

	if opts.Output != nil {
		loggerConfig.Output = opts.Output
	}

	l, err := logger.New(loggerConfig)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	defer func() {
		_ = l.Sync()
	}()

	ctx = logger.ToContext(ctx, l)

	return writeSamples(ctx, samples())
}

// loadSettings reads the settings file and applies the command-line overrides.
func loadSettings(opts *Options) (*config.Config, error) {
	settings, err := config.Load(opts.ConfigPath)

	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !opts.ConfigRequired:
		settings = config.Default()
	default:
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.Level != "" {
		settings.Level = opts.Level
	}

	if opts.ID != "" {
		settings.ID = opts.ID
	}

	if opts.Format != "" {
		settings.Format = opts.Format
	}

	return settings, nil
}

// writeSamples emits each sample through the logger carried by ctx.
func writeSamples(ctx context.Context, records []sample) error {
	l := logger.FromContext(ctx)

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := l.Log(r.severity, r.message, r.fields); err != nil {
			return fmt.Errorf("write %q: %w", r.message, err)
		}
	}

	return nil
}

// samples returns the records written by a demo run, starting with the build info.
func samples() []sample {
	return []sample{
		{logger.SeverityInfo, "jsonlog demo starting", version.Fields()},
		{logger.SeverityInfo, "Hello World 1", logger.Fields{"logger_level": int(logger.SeverityInfo)}},
		{logger.SeverityDebug, "Hello World 2", logger.Fields{"logger_level": int(logger.SeverityDebug)}},
		{logger.SeverityError, "Hello World 3", logger.Fields{"logger_level": int(logger.SeverityError)}},
		{logger.SeverityCritical, "Hello World 4", logger.Fields{"logger_level": int(logger.SeverityCritical)}},
		{logger.SeverityInfo, "Hello World 5", logger.Fields{"xyz": "abc"}},
		{logger.SeverityInfo, "Hello World 6", nil},
	}
}
