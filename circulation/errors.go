package circulation

import (
	"errors"
)

var (
	// ErrDuplicateBookID is returned when adding a book whose id already exists.
	ErrDuplicateBookID = errors.New("a book with this id already exists")

	// ErrBookOnLoan is returned when deleting a book that is currently loaned out.
	ErrBookOnLoan = errors.New("book is currently on loan and cannot be deleted")

	// ErrBookNotFound is returned when a loan operation references an unknown book id.
	ErrBookNotFound = errors.New("book not found")

	// ErrStudentNotFound is returned when a loan operation references an unknown student id.
	ErrStudentNotFound = errors.New("student not found")

	// ErrBookAlreadyLoaned is returned when loaning a book that is already loaned out.
	ErrBookAlreadyLoaned = errors.New("book is already loaned out")

	// ErrLoanNotFound is returned when returning or deleting a loan for a book
	// that has no active loan.
	ErrLoanNotFound = errors.New("no active loan found for this book")

	// ErrStudentHasActiveLoans is returned when deleting a student who still has
	// active loans. History entries never block deletion.
	ErrStudentHasActiveLoans = errors.New("student still has active loans and cannot be deleted")

	// ErrEmptyBookTitle is returned when adding a book without a title.
	ErrEmptyBookTitle = errors.New("book title must not be empty")

	// ErrEmptyStudentName is returned when adding a student without a name.
	ErrEmptyStudentName = errors.New("student name must not be empty")

	// ErrLoadingCollectionFailed is returned when a collection cannot be loaded
	// or decoded from storage.
	ErrLoadingCollectionFailed = errors.New("loading collection from storage failed")

	// ErrPersistingCollectionFailed is returned when a collection cannot be
	// written to storage. The in-memory mutation that triggered the write is
	// NOT rolled back; in-memory and persisted state may diverge until the
	// next successful save.
	ErrPersistingCollectionFailed = errors.New("persisting collection to storage failed")

	// ErrInvalidSnapshotJSON is returned when backup data is not valid JSON.
	ErrInvalidSnapshotJSON = errors.New("snapshot json is not valid")

	// ErrNilStorage is returned by NewStore when no storage port is supplied.
	ErrNilStorage = errors.New("storage must not be nil")
)
