package circulationtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/memoryengine"
)

// Clock is a settable clock for deterministic due-date and overdue tests.
type Clock struct {
	now time.Time
}

// NewClock creates a Clock frozen at the given start time.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current clock time; pass it as circulation.WithClock(clock.Now).
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by the given duration.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// AdvanceDays moves the clock forward by whole calendar days.
func (c *Clock) AdvanceDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}

// DefaultStart is the frozen start time used by GivenStore.
var DefaultStart = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// GivenStore creates a store on a fresh in-memory engine with the given
// clock. A nil clock gets a new one frozen at DefaultStart.
func GivenStore(t testing.TB, clock *Clock, options ...circulation.Option) (*circulation.Store, *Clock) {
	t.Helper()

	if clock == nil {
		clock = NewClock(DefaultStart)
	}

	options = append([]circulation.Option{circulation.WithClock(clock.Now)}, options...)

	store, err := circulation.NewStore(context.Background(), memoryengine.NewEngine(), options...)
	require.NoError(t, err, "error in arranging test data")

	return store, clock
}

// GivenBook adds a book with an auto-assigned id.
func GivenBook(t testing.TB, store *circulation.Store, title string) circulation.Book {
	t.Helper()

	book, err := store.AddBook(context.Background(), circulation.BookInput{Title: title})
	require.NoError(t, err, "error in arranging test data")

	return book
}

// GivenStudent adds a student with an auto-assigned number.
func GivenStudent(t testing.TB, store *circulation.Store, name string) circulation.Student {
	t.Helper()

	student, err := store.AddStudent(context.Background(), circulation.StudentInput{Name: name})
	require.NoError(t, err, "error in arranging test data")

	return student
}

// GivenLoan issues the book to the student with the store's default period.
func GivenLoan(t testing.TB, store *circulation.Store, bookID string, studentID string, options ...circulation.LoanOption) circulation.Loan {
	t.Helper()

	loan, err := store.LoanBook(context.Background(), bookID, studentID, options...)
	require.NoError(t, err, "error in arranging test data")

	return loan
}
