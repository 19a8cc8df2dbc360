// Package circulation implements a small library circulation tracker: a
// catalog of books, a roster of students, active loans, and loan history,
// persisted through a pluggable key-value document store.
//
// The Store owns all four collections, enforces the referential-integrity
// rules of the loan lifecycle, and persists every mutation. Each book moves
// through a simple per-book state machine (Available -> Loaned -> Available)
// with LoanBook and ReturnBook as the only transitions; ReturnBook is the only
// operation that creates a history entry, while DeleteLoan corrects
// data-entry mistakes without leaving a trace in history.
//
// Persistence is injected as a Storage port (see the kvstore package for
// engines). The four collections are stored as independent JSON documents
// under the keys "books", "students", "loans" and "loanHistory"; a missing
// key loads as an empty collection. Collections are saved one by one, so a
// crash between two saves inside one operation can leave them transiently
// inconsistent; the store makes no atomic multi-key commit.
//
// All validation happens before any write; a failed operation leaves prior
// state untouched. A storage write failure is reported to the caller but does
// not roll back the in-memory mutation that already happened.
//
// The Store is driven by a single caller at a time and is NOT safe for
// concurrent use.
//
// Common usage pattern:
//
//	engine := memoryengine.NewEngine()
//	store, err := circulation.NewStore(ctx, engine, circulation.WithClock(time.Now))
//	if err != nil {
//		// handle error
//	}
//
//	book, err := store.AddBook(ctx, circulation.BookInput{Title: "Dune", Author: "Frank Herbert"})
//	loan, err := store.LoanBook(ctx, book.ID, student.ID, circulation.ForDays(7))
//	closed, err := store.ReturnBook(ctx, book.ID)
package circulation
