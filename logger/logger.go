// Package logger holds the package-level zap logger used by the
// persistence, metrics and cmd/bitmapctl packages, in the same
// package-level-singleton style as the teacher's server.zaplog.
package logger

import "go.uber.org/zap"

var log *zap.Logger

func init() {
	log = zap.NewNop()
}

// Init replaces the package logger, typically with the logger built from
// config.Config.GetLogger during bitmapctl startup.
func Init(l *zap.Logger) {
	log = l
}

// L returns the current package logger.
func L() *zap.Logger {
	return log
}

// WithField adds fields to a new logger derived from the package one.
// Callers use this to tag log lines with an owner id or backend name.
func WithField(fields ...zap.Field) *zap.Logger {
	return log.With(fields...)
}
