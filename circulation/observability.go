package circulation

import (
	"context"
	"time"
)

// Logger interface for operational reporting, warnings, and error reporting.
// The store performs no logging unless a logger is injected via WithLogger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging with automatic trace
// correlation. This interface is dependency-free, allowing users to integrate
// with any logging backend that supports context-based correlation.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting store performance and operational
// metrics. This interface is dependency-free so users can integrate with any
// metrics backend by implementing it.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

const (
	logMsgOperation       = "circulation operation: "
	logAttrBookID         = "book_id"
	logAttrStudentID      = "student_id"
	logAttrLoanID         = "loan_id"
	logAttrCount          = "count"
	logMsgBookAdded       = "book added"
	logMsgBookDeleted     = "book deleted"
	logMsgStudentAdded    = "student added"
	logMsgStudentDeleted  = "student deleted"
	logMsgBookLoaned      = "book loaned"
	logMsgBookReturned    = "book returned"
	logMsgLoanDeleted     = "loan deleted without history entry"
	logMsgDataImported    = "data imported"
	logMsgDataCleared     = "all data cleared"
	metricOperationsTotal = "circulation_operations_total"
	labelOperation        = "operation"
)

// logOperation logs operational information at info level if a logger is configured.
// A contextual logger takes precedence over the plain logger.
func (s *Store) logOperation(ctx context.Context, action string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// countOperation counts completed operations if a metrics collector is configured.
func (s *Store) countOperation(operation string) {
	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(metricOperationsTotal, map[string]string{labelOperation: operation})
	}
}
