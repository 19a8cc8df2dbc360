package circulation

import (
	"math"
	"sort"
	"time"
)

// LoanFilter selects which active loans a Loans call returns.
type LoanFilter int

const (
	LoanFilterAll LoanFilter = iota
	LoanFilterOnTime
	LoanFilterOverdue
)

// DefaultRankingLimit bounds PopularBooks and TopReaders results when the
// caller passes a non-positive limit.
const DefaultRankingLimit = 5

// Stats is a point-in-time summary over the current collections. It is
// recomputed on every call, never cached.
type Stats struct {
	TotalBooks     int
	AvailableBooks int
	ActiveLoans    int
	OverdueLoans   int
}

// BookRanking pairs a book with its combined active-plus-history loan count.
type BookRanking struct {
	Book  Book
	Count int
}

// ReaderRanking pairs a student with their combined active-plus-history loan
// count.
type ReaderRanking struct {
	Student Student
	Count   int
}

// IsOverdue reports whether the due date lies in the past.
func (s *Store) IsOverdue(dueDate time.Time) bool {
	return dueDate.Before(s.clock())
}

// DaysUntilDue returns the ceiling of the time remaining until the due date
// in whole days; the result turns negative once the loan is overdue.
func (s *Store) DaysUntilDue(dueDate time.Time) int {
	remaining := dueDate.Sub(s.clock())

	return int(math.Ceil(remaining.Hours() / 24))
}

// Loans returns the active loans matching the filter, in insertion order.
func (s *Store) Loans(filter LoanFilter) []Loan {
	loans := make([]Loan, 0, len(s.loans))

	for _, loan := range s.loans {
		switch filter {
		case LoanFilterOnTime:
			if s.IsOverdue(loan.DueDate) {
				continue
			}
		case LoanFilterOverdue:
			if !s.IsOverdue(loan.DueDate) {
				continue
			}
		case LoanFilterAll:
		}

		loans = append(loans, loan)
	}

	return loans
}

// Stats computes the current collection counts.
func (s *Store) Stats() Stats {
	stats := Stats{
		TotalBooks:  len(s.books),
		ActiveLoans: len(s.loans),
	}

	for _, book := range s.books {
		if book.Status == BookStatusAvailable {
			stats.AvailableBooks++
		}
	}

	for _, loan := range s.loans {
		if s.IsOverdue(loan.DueDate) {
			stats.OverdueLoans++
		}
	}

	return stats
}

// PopularBooks tallies loan counts per book across history and active loans
// combined, joins them back to the live catalog, and returns the top entries
// by count descending. Tallies whose book no longer exists are dropped.
// Order among equal counts is unspecified.
func (s *Store) PopularBooks(limit int) []BookRanking {
	counts := make(map[string]int)
	for _, closed := range s.history {
		counts[closed.BookID]++
	}
	for _, loan := range s.loans {
		counts[loan.BookID]++
	}

	rankings := make([]BookRanking, 0, len(counts))
	for bookID, count := range counts {
		book, exists := s.GetBook(bookID)
		if !exists {
			continue
		}

		rankings = append(rankings, BookRanking{Book: book, Count: count})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Count > rankings[j].Count
	})

	return rankings[:rankingCutoff(len(rankings), limit)]
}

// TopReaders is the PopularBooks tally keyed by student instead of book.
func (s *Store) TopReaders(limit int) []ReaderRanking {
	counts := make(map[string]int)
	for _, closed := range s.history {
		counts[closed.StudentID]++
	}
	for _, loan := range s.loans {
		counts[loan.StudentID]++
	}

	rankings := make([]ReaderRanking, 0, len(counts))
	for studentID, count := range counts {
		student, exists := s.GetStudent(studentID)
		if !exists {
			continue
		}

		rankings = append(rankings, ReaderRanking{Student: student, Count: count})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Count > rankings[j].Count
	})

	return rankings[:rankingCutoff(len(rankings), limit)]
}

func rankingCutoff(available int, limit int) int {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	if limit > available {
		return available
	}

	return limit
}
