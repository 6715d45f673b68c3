// Package logging constructs the single structured logger threaded
// through the core's recoverable-error paths. It never holds a package
// global: the logparser/pairing/bucketizer entry points that report
// diagnostics (NewLineReader, Pair, Bucketize, BucketizeWithCache) take a
// *zap.Logger parameter, defaulting to the nop logger here when nil, the
// same "construct once, pass explicitly" pattern the pack's orchestrator
// and semgrep services build around zerolog.
package logging

import "go.uber.org/zap"

// New builds a development-friendly console logger at the given level
// ("debug", "info", "warn", "error"). An unrecognized level falls back to
// "info".
func New(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "" // transcripts already carry their own timestamps
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// OrNop returns logger unchanged, or a no-op logger when logger is nil.
// Library functions call this on their *zap.Logger parameter so a caller
// who doesn't care about diagnostics doesn't have to construct one.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
