package handler

import (
	"fmt"

	"github.com/emzola/librarium/data"
)

// registerBook walks through the new-book prompts: bibliographic fields,
// authors, then at least one copy, and registers the result.
func (h *Handler) registerBook() error {
	h.printf("New book registration:\n")
	isbn, err := h.readString("ISBN-13: ")
	if err != nil {
		return err
	}
	title, err := h.readString("Title: ")
	if err != nil {
		return err
	}
	year, err := h.readInt("Publication year: ")
	if err != nil {
		return err
	}
	category, err := h.readCategory()
	if err != nil {
		return err
	}
	authors, err := h.readAuthors()
	if err != nil {
		return err
	}
	book, err := data.NewBook(isbn, title, year, category, authors)
	if err != nil {
		return err
	}
	copies, err := h.readInt("Number of copies (>=1): ")
	if err != nil {
		return err
	}
	if copies < 1 {
		return data.FailedValidation(map[string]string{"copies": "must number at least 1"})
	}
	for i := 0; i < copies; i++ {
		code, err := h.readString(fmt.Sprintf("Code of copy %d: ", i+1))
		if err != nil {
			return err
		}
		copy, err := data.NewCopy(code, book)
		if err != nil {
			return err
		}
		if err := book.AddCopy(copy); err != nil {
			return err
		}
	}
	if err := h.service.RegisterBook(book); err != nil {
		return err
	}
	h.printf("Book registered\n")
	return nil
}

// searchBooks prompts for a query and prints every matching book.
func (h *Handler) searchBooks() error {
	text, err := h.readString("Text to search: ")
	if err != nil {
		return err
	}
	books := h.service.SearchBooks(text)
	if len(books) == 0 {
		h.printf("No matches found\n")
		return nil
	}
	for _, book := range books {
		h.printf("%s\n", book)
	}
	return nil
}
