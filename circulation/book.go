package circulation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookStatus is the availability state of a book.
type BookStatus string

// The two states of the per-book loan state machine.
const (
	BookStatusAvailable BookStatus = "Available"
	BookStatusLoaned    BookStatus = "Loaned"
)

const (
	autoIDPrefix = "B"
	autoIDDigits = 3
)

// Book is a catalog record. Its ID is immutable after creation; Status is
// Loaned exactly while one active loan references the book.
type Book struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Publisher string     `json:"publisher"`
	Status    BookStatus `json:"status"`
	AddedDate time.Time  `json:"addedDate"`
}

// BookInput carries the caller-supplied fields for AddBook. An empty ID asks
// the store to synthesize the next sequential "B###" id.
type BookInput struct {
	ID        string
	Title     string
	Author    string
	Publisher string
}

// AddBook adds a book to the catalog. A caller-supplied id is used verbatim;
// otherwise the next sequential id in the "B###" scheme is assigned. The new
// book always starts Available.
func (s *Store) AddBook(ctx context.Context, input BookInput) (Book, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Book{}, ErrEmptyBookTitle
	}

	id := input.ID
	if id == "" {
		id = s.nextBookID()
	}

	if _, exists := s.GetBook(id); exists {
		return Book{}, ErrDuplicateBookID
	}

	book := Book{
		ID:        id,
		Title:     input.Title,
		Author:    input.Author,
		Publisher: input.Publisher,
		Status:    BookStatusAvailable,
		AddedDate: s.clock(),
	}

	s.books = append(s.books, book)

	if err := s.persistBooks(ctx); err != nil {
		return book, err
	}

	s.logOperation(ctx, logMsgBookAdded, logAttrBookID, book.ID)
	s.countOperation("add_book")

	return book, nil
}

// nextBookID scans existing ids matching the "B###" scheme, takes the maximum
// numeric suffix, and increments it. Ids outside the scheme are ignored; with
// none matching, the sequence starts at B001.
func (s *Store) nextBookID() string {
	maxSuffix := 0

	for _, book := range s.books {
		suffix, ok := numericSuffix(book.ID)
		if ok && suffix > maxSuffix {
			maxSuffix = suffix
		}
	}

	return fmt.Sprintf("%s%0*d", autoIDPrefix, autoIDDigits, maxSuffix+1)
}

func numericSuffix(id string) (int, bool) {
	digits, found := strings.CutPrefix(id, autoIDPrefix)
	if !found || digits == "" {
		return 0, false
	}

	suffix, err := strconv.Atoi(digits)
	if err != nil || suffix < 0 {
		return 0, false
	}

	return suffix, true
}

// DeleteBook removes a book from the catalog. It fails with ErrBookOnLoan
// while the book is loaned out; removing an id that does not exist is a
// no-op, not an error.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	if book, exists := s.GetBook(id); exists && book.Status == BookStatusLoaned {
		return ErrBookOnLoan
	}

	kept := make([]Book, 0, len(s.books))
	for _, book := range s.books {
		if book.ID != id {
			kept = append(kept, book)
		}
	}
	s.books = kept

	if err := s.persistBooks(ctx); err != nil {
		return err
	}

	s.logOperation(ctx, logMsgBookDeleted, logAttrBookID, id)
	s.countOperation("delete_book")

	return nil
}

// GetBook returns the book with the given id, reporting whether it exists.
func (s *Store) GetBook(id string) (Book, bool) {
	for _, book := range s.books {
		if book.ID == id {
			return book, true
		}
	}

	return Book{}, false
}

// Books returns all books in insertion order.
func (s *Store) Books() []Book {
	books := make([]Book, len(s.books))
	copy(books, s.books)

	return books
}

// SearchBooks matches the query case-insensitively as a substring against id,
// title, and author. An empty query returns the full catalog in insertion
// order.
func (s *Store) SearchBooks(query string) []Book {
	if strings.TrimSpace(query) == "" {
		return s.Books()
	}

	needle := strings.ToLower(query)
	matches := make([]Book, 0)

	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.ID), needle) ||
			strings.Contains(strings.ToLower(book.Title), needle) ||
			strings.Contains(strings.ToLower(book.Author), needle) {
			matches = append(matches, book)
		}
	}

	return matches
}
