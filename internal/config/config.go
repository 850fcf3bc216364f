package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/jsonlog/pkg/logger"
)

// Config holds the logger settings read from YAML.
type Config struct {
	// Level is the minimum severity name (debug, info, warning, error, critical).
	Level string `yaml:"level"`
	// ID is the correlation identifier; empty means one is generated.
	ID string `yaml:"id,omitempty"`
	// Format is the record encoding: json or console.
	Format string `yaml:"format"`
	// Output is the stream records go to: stdout or stderr.
	Output string `yaml:"output"`
}

const (
	// DefaultConfigFilename is the default filename for logger settings.
	DefaultConfigFilename = "jsonlog-settings.yaml"

	// DefaultLevel is used when no level is configured.
	DefaultLevel = "debug"

	// DefaultFormat is used when no format is configured.
	DefaultFormat = "json"

	// OutputStdout and OutputStderr are the accepted output names.
	OutputStdout = "stdout"
	OutputStderr = "stderr"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrUnknownLevel is returned for level names ParseSeverity rejects.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrUnknownFormat is returned for formats other than json and console.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrUnknownOutput is returned for outputs other than stdout and stderr.
	ErrUnknownOutput = errors.New("unknown output")
)

// Default returns settings with every field at its default.
func Default() *Config {
	return &Config{
		Level:  DefaultLevel,
		Format: DefaultFormat,
		Output: OutputStdout,
	}
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults for empty fields and rejects unknown values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}

	if _, ok := logger.ParseSeverity(cfg.Level); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, cfg.Level)
	}

	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}

	if _, ok := logger.ParseRenderer(cfg.Format); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	if cfg.Output == "" {
		cfg.Output = OutputStdout
	}

	if _, err := outputWriter(cfg.Output); err != nil {
		return err
	}

	return nil
}

// LoggerConfig converts validated settings into a logger configuration.
func (c *Config) LoggerConfig() (logger.Config, error) {
	if err := Validate(c); err != nil {
		return logger.Config{}, err
	}

	threshold, _ := logger.ParseSeverity(c.Level)
	renderer, _ := logger.ParseRenderer(c.Format)

	output, err := outputWriter(c.Output)
	if err != nil {
		return logger.Config{}, err
	}

	return logger.Config{
		Threshold: threshold,
		ID:        c.ID,
		Renderer:  renderer,
		Output:    output,
	}, nil
}

// outputWriter maps an output name to its stream.
func outputWriter(name string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case OutputStdout:
		return os.Stdout, nil
	case OutputStderr:
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, name)
	}
}
