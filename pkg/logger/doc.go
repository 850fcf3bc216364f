// Package logger provides a JSON logging facade over zap that:
//   - stamps a per-instance correlation id on every record (Enrich),
//   - gates records by an ordered Severity threshold applied in the sink,
//   - builds its zap sink lazily on first use (CachedSink),
//   - carries loggers through a context (ToContext/FromContext).
//
// Each record is written as one JSON object:
//
//	{"level":"info","timestamp":"2025-01-02T15:04:05.000Z","event":"started","id":"<logger id>"}
//
// Hosts that share a backend between loggers pass their own Sink in Config,
// for example NewZapSinkFromCore over an existing zapcore.Core.
package logger
