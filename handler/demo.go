package handler

import (
	"time"

	"github.com/emzola/librarium/data"
)

// RunDemo exercises the happy path against the service without the menu:
// register a book with one copy, register a user, lend the copy, return it
// before the due date.
func (h *Handler) RunDemo() error {
	author, err := data.NewAuthor("George", "Orwell", "British")
	if err != nil {
		return err
	}
	book, err := data.NewBook("9788497592208", "1984", 1949, data.CategoryNovel, []data.Author{author})
	if err != nil {
		return err
	}
	copy, err := data.NewCopy("L-000001", book)
	if err != nil {
		return err
	}
	if err := book.AddCopy(copy); err != nil {
		return err
	}
	if err := h.service.RegisterBook(book); err != nil {
		return err
	}

	address, err := data.NewAddress("High Street", "10", "29001", "Malaga")
	if err != nil {
		return err
	}
	user, err := data.NewUser("u12345", "Ana Perez", "ana@mail.es", address)
	if err != nil {
		return err
	}
	if err := h.service.RegisterUser(user); err != nil {
		return err
	}

	loan, err := h.service.Lend("L-000001", "u12345", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}
	h.printf("Loan created: %s\n", loan)
	h.printf("Due date: %s\n", loan.DueDate().Format("2006-01-02"))

	returned, err := h.service.ReturnCopy("L-000001", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}
	h.printf("Return recorded: %t\n", returned)
	h.printf("Days late: %d\n", loan.DaysLate())
	return nil
}
