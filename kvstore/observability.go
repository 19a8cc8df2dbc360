package kvstore

import (
	"time"
)

// Logger interface for query logging, operational reporting, warnings, and errors.
// Implementations are typically backed by log/slog; engines treat a nil logger
// as "no logging".
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting engine performance and operational metrics.
// This interface is dependency-free so users can integrate with any metrics
// backend by implementing it.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}
