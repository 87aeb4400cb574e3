package repository

import (
	"strings"

	"github.com/emzola/librarium/data"
)

type books interface {
	InsertBook(book *data.Book) error
	DeleteBook(isbn string) error
	GetBookByISBN(isbn string) (*data.Book, bool)
	AllBooks() []*data.Book
}

// InsertBook appends a book to the catalog. It fails with
// ErrCapacityExceeded at 2000 books and with ErrDuplicateRecord when a
// book with the same ISBN is already registered.
func (r *repository) InsertBook(book *data.Book) error {
	if len(r.books) >= MaxBooks {
		return ErrCapacityExceeded
	}
	if _, exists := r.GetBookByISBN(book.ISBN()); exists {
		return ErrDuplicateRecord
	}
	r.books = append(r.books, book)
	return nil
}

// DeleteBook removes the book with the given ISBN, preserving the relative
// order of the remaining books. It fails with ErrRecordNotFound when no
// such book is registered.
func (r *repository) DeleteBook(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	for i, book := range r.books {
		if strings.EqualFold(book.ISBN(), isbn) {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// GetBookByISBN looks up a book by exact ISBN, ignoring case and
// surrounding whitespace.
func (r *repository) GetBookByISBN(isbn string) (*data.Book, bool) {
	isbn = strings.TrimSpace(isbn)
	for _, book := range r.books {
		if strings.EqualFold(book.ISBN(), isbn) {
			return book, true
		}
	}
	return nil, false
}

// AllBooks returns the registered books in registration order.
func (r *repository) AllBooks() []*data.Book {
	return append([]*data.Book(nil), r.books...)
}
