package circulation

import (
	"errors"
	"time"
)

// DefaultLoanPeriodDays is the loan length used when LoanBook is called
// without a ForDays option.
const DefaultLoanPeriodDays = 14

// ErrInvalidLoanPeriod is returned when a non-positive loan period is configured.
var ErrInvalidLoanPeriod = errors.New("loan period must be positive")

// Clock yields the current time; it is injectable for deterministic tests.
type Clock func() time.Time

// Option defines a functional option for configuring the Store.
type Option func(*Store) error

// WithClock sets the clock used for added dates, loan dates, due dates, and
// overdue checks. Defaults to time.Now.
func WithClock(clock Clock) Option {
	return func(s *Store) error {
		if clock != nil {
			s.clock = clock
		}
		return nil
	}
}

// WithLoanPeriod sets the default loan length in calendar days. Defaults to
// DefaultLoanPeriodDays.
func WithLoanPeriod(days int) Option {
	return func(s *Store) error {
		if days <= 0 {
			return ErrInvalidLoanPeriod
		}

		s.loanPeriodDays = days

		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive operational messages at info level; the store stays
// silent without one.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store. When both a
// plain and a contextual logger are configured, the contextual logger wins.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// The collector will receive a counter per completed mutating operation.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}
