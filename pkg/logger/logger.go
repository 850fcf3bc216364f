package logger

import (
	"io"

	"github.com/google/uuid"
)

// Config controls how New builds a Logger.
type Config struct {
	// Threshold is the minimum severity emitted. Zero means SeverityDebug.
	Threshold Severity
	// ID is the correlation identifier stamped on every record.
	// Empty means a random UUID is generated.
	ID string
	// Renderer picks the encoding of the default sink. Empty means RendererJSON.
	Renderer Renderer
	// Output is where the default sink writes. Nil means os.Stdout.
	Output io.Writer
	// Sink replaces the default zap sink. It is used as-is: the host owns its
	// lifecycle and its level filtering, and Threshold, Renderer and Output are
	// not applied to it.
	Sink Sink
}

// Logger stamps its id on every record and hands the record to a sink.
// It holds no mutable state and is safe for concurrent use when its sink is.
type Logger struct {
	// id is the correlation identifier, fixed at construction.
	id string
	// threshold is the configured minimum severity, fixed at construction.
	threshold Severity
	// sink renders and writes records; not owned by the logger.
	sink Sink
}

// newID generates a random (v4) UUID for loggers configured without an id.
func newID() string {
	return uuid.NewString()
}

// New validates cfg and returns a logger.
// The default sink is created lazily on the first record, but configuration
// errors are reported here.
func New(cfg Config) (*Logger, error) {
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = SeverityDebug
	}

	if err := threshold.validate(); err != nil {
		return nil, err
	}

	if err := cfg.Renderer.validate(); err != nil {
		return nil, err
	}

	id := cfg.ID
	if id == "" {
		id = newID()
	}

	sink := cfg.Sink
	if sink == nil {
		sinkConfig := SinkConfig{
			Threshold: threshold,
			Renderer:  cfg.Renderer,
			Output:    cfg.Output,
		}

		sink = NewCachedSink(func() (Sink, error) {
			return NewZapSink(sinkConfig)
		})
	}

	return &Logger{
		id:        id,
		threshold: threshold,
		sink:      sink,
	}, nil
}

// ID returns the correlation identifier stamped on every record.
func (l *Logger) ID() string {
	return l.id
}

// Threshold returns the configured minimum severity.
func (l *Logger) Threshold() Severity {
	return l.threshold
}

// Log enriches fields with the logger id and emits the record at severity.
// Sink errors are returned unchanged.
func (l *Logger) Log(severity Severity, message string, fields Fields) error {
	return l.sink.Emit(severity, message, Enrich(fields, l.id))
}

// Debug emits a debug record.
func (l *Logger) Debug(message string, fields Fields) error {
	return l.Log(SeverityDebug, message, fields)
}

// Info emits an info record.
func (l *Logger) Info(message string, fields Fields) error {
	return l.Log(SeverityInfo, message, fields)
}

// Warning emits a warning record.
func (l *Logger) Warning(message string, fields Fields) error {
	return l.Log(SeverityWarning, message, fields)
}

// Error emits an error record.
func (l *Logger) Error(message string, fields Fields) error {
	return l.Log(SeverityError, message, fields)
}

// Critical emits a critical record.
func (l *Logger) Critical(message string, fields Fields) error {
	return l.Log(SeverityCritical, message, fields)
}

// Sync flushes the sink if it buffers output.
func (l *Logger) Sync() error {
	return syncSink(l.sink)
}
