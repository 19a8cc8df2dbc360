package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Loan is an active loan. At most one active loan exists per book id. The
// referenced book and student must exist when the loan is created; they are
// not re-validated afterwards, so a loan can outlive its referents.
type Loan struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	StudentID string    `json:"studentId"`
	LoanDate  time.Time `json:"loanDate"`
	DueDate   time.Time `json:"dueDate"`
	Note      string    `json:"note,omitempty"`
}

// ClosedLoan is a loan moved to history by ReturnBook. History is
// append-only; entries are never mutated or removed except by ClearAllData.
type ClosedLoan struct {
	Loan
	ReturnDate time.Time `json:"returnDate"`
}

// LoanOption customizes a single LoanBook call.
type LoanOption func(*loanParams)

type loanParams struct {
	days int
	note string
}

// ForDays overrides the store's loan period for this loan.
func ForDays(days int) LoanOption {
	return func(p *loanParams) {
		p.days = days
	}
}

// WithNote attaches a free-text note to the loan.
func WithNote(note string) LoanOption {
	return func(p *loanParams) {
		p.note = note
	}
}

// LoanBook issues the book to the student and flips the book to Loaned. The
// due date is the loan date plus the loan period in calendar days. Nothing
// stops a student from holding several books at once, and an overdue loan
// does not block issuing another; both are deliberate.
func (s *Store) LoanBook(ctx context.Context, bookID string, studentID string, options ...LoanOption) (Loan, error) {
	book, exists := s.GetBook(bookID)
	if !exists {
		return Loan{}, ErrBookNotFound
	}

	if _, exists = s.GetStudent(studentID); !exists {
		return Loan{}, ErrStudentNotFound
	}

	if book.Status == BookStatusLoaned {
		return Loan{}, ErrBookAlreadyLoaned
	}

	params := loanParams{days: s.loanPeriodDays}
	for _, option := range options {
		option(&params)
	}

	now := s.clock()
	loan := Loan{
		ID:        uuid.NewString(),
		BookID:    bookID,
		StudentID: studentID,
		LoanDate:  now,
		DueDate:   now.AddDate(0, 0, params.days),
		Note:      params.note,
	}

	s.loans = append(s.loans, loan)
	s.setBookStatus(bookID, BookStatusLoaned)

	if err := s.persistLoans(ctx); err != nil {
		return loan, err
	}
	if err := s.persistBooks(ctx); err != nil {
		return loan, err
	}

	s.logOperation(ctx, logMsgBookLoaned, logAttrBookID, bookID, logAttrStudentID, studentID, logAttrLoanID, loan.ID)
	s.countOperation("loan_book")

	return loan, nil
}

// ReturnBook closes the active loan on the book: the loan moves to history
// with the current time as return date, and the book flips back to
// Available. If the book record was deleted while on loan, the status flip
// is a no-op. This is the only operation that creates history entries.
func (s *Store) ReturnBook(ctx context.Context, bookID string) (ClosedLoan, error) {
	index := s.activeLoanIndex(bookID)
	if index < 0 {
		return ClosedLoan{}, ErrLoanNotFound
	}

	closed := ClosedLoan{
		Loan:       s.loans[index],
		ReturnDate: s.clock(),
	}

	s.loans = append(s.loans[:index], s.loans[index+1:]...)
	s.history = append(s.history, closed)
	s.setBookStatus(bookID, BookStatusAvailable)

	if err := s.persistLoans(ctx); err != nil {
		return closed, err
	}
	if err := s.persistBooks(ctx); err != nil {
		return closed, err
	}
	if err := s.persistHistory(ctx); err != nil {
		return closed, err
	}

	s.logOperation(ctx, logMsgBookReturned, logAttrBookID, bookID, logAttrLoanID, closed.ID)
	s.countOperation("return_book")

	return closed, nil
}

// DeleteLoan removes the active loan on the book without writing a history
// entry and resets the book to Available. It exists to correct data-entry
// mistakes; unlike ReturnBook it leaves no trace.
func (s *Store) DeleteLoan(ctx context.Context, bookID string) error {
	index := s.activeLoanIndex(bookID)
	if index < 0 {
		return ErrLoanNotFound
	}

	loanID := s.loans[index].ID
	s.loans = append(s.loans[:index], s.loans[index+1:]...)
	s.setBookStatus(bookID, BookStatusAvailable)

	if err := s.persistLoans(ctx); err != nil {
		return err
	}
	if err := s.persistBooks(ctx); err != nil {
		return err
	}

	s.logOperation(ctx, logMsgLoanDeleted, logAttrBookID, bookID, logAttrLoanID, loanID)
	s.countOperation("delete_loan")

	return nil
}

// HasStudentBorrowedBook reports whether the student currently holds the
// book and whether any history entry matches the pair. Callers may use this
// to warn about repeat borrowing; LoanBook itself never consults it.
func (s *Store) HasStudentBorrowedBook(studentID string, bookID string) (current bool, past bool) {
	for _, loan := range s.loans {
		if loan.StudentID == studentID && loan.BookID == bookID {
			current = true
			break
		}
	}

	for _, closed := range s.history {
		if closed.StudentID == studentID && closed.BookID == bookID {
			past = true
			break
		}
	}

	return current, past
}

// StudentLoanHistory returns the student's active loans, their history
// entries in stored order, and nothing else; callers wanting the
// consolidated view concatenate the two with active loans first.
func (s *Store) StudentLoanHistory(studentID string) (active []Loan, closed []ClosedLoan) {
	for _, loan := range s.loans {
		if loan.StudentID == studentID {
			active = append(active, loan)
		}
	}

	for _, entry := range s.history {
		if entry.StudentID == studentID {
			closed = append(closed, entry)
		}
	}

	return active, closed
}

func (s *Store) activeLoanIndex(bookID string) int {
	for index, loan := range s.loans {
		if loan.BookID == bookID {
			return index
		}
	}

	return -1
}

func (s *Store) setBookStatus(bookID string, status BookStatus) {
	for index := range s.books {
		if s.books[index].ID == bookID {
			s.books[index].Status = status
			return
		}
	}
}
