package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink renders and emits a single log record.
// Implementations own level filtering: Emit with a severity below the sink's
// threshold is a no-op that returns nil.
type Sink interface {
	Emit(severity Severity, message string, fields Fields) error
}

// Renderer selects the output encoding of a ZapSink.
type Renderer string

const (
	// RendererJSON writes one JSON object per line.
	RendererJSON Renderer = "json"
	// RendererConsole writes human-readable, comma separated lines.
	RendererConsole Renderer = "console"
)

// Record keys used by ZapSink.
const (
	MessageKey   = "event"
	LevelKey     = "level"
	TimestampKey = "timestamp"
)

var (
	// ErrUnknownRenderer is returned for renderer names other than json and console.
	ErrUnknownRenderer = errors.New("unknown renderer")
	// ErrUnserializableField is returned when a field value cannot be encoded as JSON.
	ErrUnserializableField = errors.New("field value is not serializable")
)

// ParseRenderer converts string input to a renderer.
func ParseRenderer(s string) (Renderer, bool) {
	switch r := Renderer(strings.ToLower(strings.TrimSpace(s))); r {
	case RendererJSON, RendererConsole:
		return r, true
	default:
		return RendererJSON, false
	}
}

// validate accepts the known renderers and the empty value, which means JSON.
func (r Renderer) validate() error {
	switch r {
	case "", RendererJSON, RendererConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, string(r))
	}
}

// SinkConfig configures NewZapSink.
type SinkConfig struct {
	// Threshold is the minimum severity written. Zero means SeverityDebug.
	Threshold Severity
	// Renderer picks the encoding. Empty means RendererJSON.
	Renderer Renderer
	// Output receives encoded records. Nil means os.Stdout.
	Output io.Writer
}

// ZapSink is a Sink backed by a zapcore.Core.
type ZapSink struct {
	// core encodes and writes entries; it is already gated by the threshold.
	core zapcore.Core
	// now stamps entry times.
	now func() time.Time
}

// NewZapSink builds a sink writing to cfg.Output with the fixed record layout:
// the message under "event", the lowercase severity under "level" and an
// ISO-8601 time under "timestamp".
func NewZapSink(cfg SinkConfig) (*ZapSink, error) {
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = SeverityDebug
	}

	if err := threshold.validate(); err != nil {
		return nil, err
	}

	encoder, err := newEncoder(cfg.Renderer)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(output)),
		zapcore.DebugLevel,
	)

	return NewZapSinkFromCore(core, threshold), nil
}

// NewZapSinkFromCore wraps a core owned by the host, gated at threshold.
// The core's encoder and destination are used unchanged.
func NewZapSinkFromCore(core zapcore.Core, threshold Severity) *ZapSink {
	return &ZapSink{
		core: wrapThreshold(core, threshold),
		now:  time.Now,
	}
}

// Emit writes the record if severity passes the threshold.
// Caller fields named like a record key (event, level, timestamp) are dropped,
// so the record's own values win, as the logger id does in Enrich.
// Encoding and write failures are returned to the caller.
func (s *ZapSink) Emit(severity Severity, message string, fields Fields) error {
	if err := severity.validate(); err != nil {
		return err
	}

	entry := zapcore.Entry{
		Level:   severity.zapLevel(),
		Time:    s.now(),
		Message: message,
	}

	if !s.core.Enabled(entry.Level) {
		return nil
	}

	zapFields, err := toZapFields(fields)
	if err != nil {
		return err
	}

	if err := s.core.Write(entry, zapFields); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// Core returns the threshold-gated core, for hosts that also log through zap directly.
//
//nolint:ireturn,nolintlint // zapcore.Core is the integration point.
func (s *ZapSink) Core() zapcore.Core {
	return s.core
}

// Sync flushes buffered records.
func (s *ZapSink) Sync() error {
	return s.core.Sync()
}

// newEncoder returns the zap encoder for r.
//
//nolint:ireturn,nolintlint // zapcore.Encoder is the integration point.
func newEncoder(r Renderer) (zapcore.Encoder, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	//nolint:exhaustruct // Caller and stacktrace keys are intentionally left out.
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     MessageKey,
		LevelKey:       LevelKey,
		TimeKey:        TimestampKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeSeverity,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if r == RendererConsole {
		encoderConfig.ConsoleSeparator = ", "

		return zapcore.NewConsoleEncoder(encoderConfig), nil
	}

	return zapcore.NewJSONEncoder(encoderConfig), nil
}

// recordKey reports whether k is written by the encoder itself.
func recordKey(k string) bool {
	switch k {
	case MessageKey, LevelKey, TimestampKey:
		return true
	default:
		return false
	}
}

// toZapFields converts fields in sorted key order, skipping record keys.
// zap inlines reflection failures as "<key>Error" fields, so reflected values are
// checked up front and reported as ErrUnserializableField instead.
func toZapFields(fields Fields) ([]zapcore.Field, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if !recordKey(k) {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	result := make([]zapcore.Field, 0, len(keys))

	for _, k := range keys {
		field := zap.Any(k, fields[k])
		if field.Type == zapcore.ReflectType {
			if _, err := json.Marshal(field.Interface); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrUnserializableField, k, err)
			}
		}

		result = append(result, field)
	}

	return result, nil
}
