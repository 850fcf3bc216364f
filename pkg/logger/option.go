package logger

import (
	"go.uber.org/zap/zapcore"
)

// thresholdCore wraps a zapcore.Core with a minimum severity.
// The threshold replaces the wrapped core's own level, so a shared core built at
// one level can back loggers configured with different thresholds.
//
// ZapSink only calls Enabled and Write. Check and With keep the threshold when a
// host hands the wrapped core to zap.New or derives child cores from it.
type thresholdCore struct {
	zapcore.Core

	// threshold is the lowest zap level this core lets through.
	threshold zapcore.Level
}

// wrapThreshold returns core gated at severity s.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func wrapThreshold(core zapcore.Core, s Severity) zapcore.Core {
	return &thresholdCore{
		Core:      core,
		threshold: s.zapLevel(),
	}
}

// Enabled reports whether entries at level l pass the threshold.
func (c *thresholdCore) Enabled(l zapcore.Level) bool {
	return c.threshold.Enabled(l)
}

// Check adds the core to a checked entry if the entry passes the threshold.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *thresholdCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// With returns a child core carrying fields and the same threshold.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *thresholdCore) With(fields []zapcore.Field) zapcore.Core {
	return &thresholdCore{
		Core:      c.Core.With(fields),
		threshold: c.threshold,
	}
}
