package logger

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Severity is the rank of a log record. Higher values are more severe.
type Severity int

// Severity ranks, ten apart.
const (
	// SeverityDebug is for verbose diagnostic output.
	SeverityDebug Severity = 10
	// SeverityInfo is for normal operational messages.
	SeverityInfo Severity = 20
	// SeverityWarning is for unusual but non-fatal conditions.
	SeverityWarning Severity = 30
	// SeverityError is for failed operations.
	SeverityError Severity = 40
	// SeverityCritical is for failures the host cannot continue past.
	SeverityCritical Severity = 50
)

// ErrInvalidSeverity is returned when a severity is outside the known ranks.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severities lists every valid severity in ascending order.
func Severities() []Severity {
	return []Severity{
		SeverityDebug,
		SeverityInfo,
		SeverityWarning,
		SeverityError,
		SeverityCritical,
	}
}

// String returns the lowercase name rendered in the "level" field.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	default:
		return false
	}
}

// Enabled reports whether a record of severity other passes threshold s.
func (s Severity) Enabled(other Severity) bool {
	return other >= s
}

// validate returns a wrapped ErrInvalidSeverity for unknown ranks.
func (s Severity) validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeverity, int(s))
	}

	return nil
}

// ParseSeverity converts string input to a severity.
// "warn" and "fatal" are accepted as aliases for warning and critical.
func ParseSeverity(s string) (Severity, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "debug":
		return SeverityDebug, true
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	case "critical", "fatal":
		return SeverityCritical, true
	default:
		return SeverityInfo, false
	}
}

// zapLevel maps a severity onto the zap level used to write it.
// Critical uses DPanic, which only panics in development loggers; sinks here never
// enable development mode.
func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case SeverityDebug:
		return zapcore.DebugLevel
	case SeverityInfo:
		return zapcore.InfoLevel
	case SeverityWarning:
		return zapcore.WarnLevel
	case SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

// severityFromZap is the inverse of zapLevel, used by the level encoder.
func severityFromZap(l zapcore.Level) Severity {
	switch {
	case l <= zapcore.DebugLevel:
		return SeverityDebug
	case l == zapcore.InfoLevel:
		return SeverityInfo
	case l == zapcore.WarnLevel:
		return SeverityWarning
	case l == zapcore.ErrorLevel:
		return SeverityError
	default:
		return SeverityCritical
	}
}

// encodeSeverity renders zap levels with this package's severity names,
// so WarnLevel is written as "warning" and DPanic and above as "critical".
func encodeSeverity(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(severityFromZap(l).String())
}
