package service

import (
	"errors"
	"strings"

	"github.com/emzola/librarium/data"
	"github.com/emzola/librarium/internal/validator"
	"github.com/emzola/librarium/repository"
)

type books interface {
	RegisterBook(book *data.Book) error
	UnregisterBook(isbn string) (bool, error)
	FindBookByISBN(isbn string) (*data.Book, bool)
	SearchBooks(text string) []*data.Book
	ListBooks() string
}

// RegisterBook adds a book to the catalog. It fails when the book is nil,
// the catalog is at capacity, or a book with the same ISBN is already
// registered.
func (s *service) RegisterBook(book *data.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := validator.New()
	if v.Check(book != nil, "book", "must be provided"); !v.Valid() {
		return s.failedValidation(v.Errors)
	}
	err := s.repo.InsertBook(book)
	switch {
	case errors.Is(err, repository.ErrCapacityExceeded):
		v.AddError("books", "no more books can be registered")
		return s.failedValidation(v.Errors)
	case errors.Is(err, repository.ErrDuplicateRecord):
		v.AddError("isbn", "is already registered")
		return s.failedValidation(v.Errors)
	default:
		return err
	}
}

// UnregisterBook removes the book with the given ISBN. It returns false,
// without error, when no such book is registered, and fails when the book
// still has copies attached.
func (s *service) UnregisterBook(isbn string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, exists := s.repo.GetBookByISBN(isbn)
	if !exists {
		return false, nil
	}
	if book.HasCopies() {
		v := validator.New()
		v.AddError("book", "cannot be removed while it has copies")
		return false, s.failedValidation(v.Errors)
	}
	if err := s.repo.DeleteBook(isbn); err != nil {
		return false, err
	}
	return true, nil
}

// FindBookByISBN looks up a book by exact ISBN, ignoring case. Absence is
// not an error.
func (s *service) FindBookByISBN(isbn string) (*data.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.GetBookByISBN(isbn)
}

// SearchBooks returns every book matching the free-text query, in
// registration order. A blank query or a query with no matches yields an
// empty result, not an error.
func (s *service) SearchBooks(text string) []*data.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*data.Book
	for _, book := range s.repo.AllBooks() {
		if book.Matches(text) {
			matches = append(matches, book)
		}
	}
	return matches
}

// ListBooks returns one line per registered book in registration order, or
// a fixed message when the catalog is empty.
func (s *service) ListBooks() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.AllBooks()
	if len(all) == 0 {
		return "no books registered"
	}
	var sb strings.Builder
	for _, book := range all {
		sb.WriteString(book.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
