package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/emzola/librarium/data"
)

// errInputClosed signals that the input stream ended mid-prompt.
var errInputClosed = errors.New("input closed")

// readLine prompts and reads one trimmed line. ok is false when the input
// stream has ended.
func (h *Handler) readLine(prompt string) (string, bool) {
	h.printf("%s", prompt)
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

// readString reads a line, converting end of input into an error so prompt
// flows can bail out with a single return.
func (h *Handler) readString(prompt string) (string, error) {
	line, ok := h.readLine(prompt)
	if !ok {
		return "", errInputClosed
	}
	return line, nil
}

// readInt reads a line and parses it as a base-10 integer.
func (h *Handler) readInt(prompt string) (int, error) {
	line, err := h.readString(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, data.FailedValidation(map[string]string{"input": "must be a whole number"})
	}
	return n, nil
}

// readDate reads a date in YYYY-MM-DD form. An empty line means today.
func (h *Handler) readDate(prompt string) (time.Time, error) {
	line, err := h.readString(prompt)
	if err != nil {
		return time.Time{}, err
	}
	if line == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", line)
	if err != nil {
		return time.Time{}, data.FailedValidation(map[string]string{"date": "must be in YYYY-MM-DD format"})
	}
	return date, nil
}

// readCategory lists the categories and reads a 1-based selection.
func (h *Handler) readCategory() (data.Category, error) {
	categories := data.Categories()
	for i, category := range categories {
		h.printf("%d. %s\n", i+1, category)
	}
	option, err := h.readInt("Select a category: ")
	if err != nil {
		return "", err
	}
	if option < 1 || option > len(categories) {
		return "", data.FailedValidation(map[string]string{"category": "is not a valid selection"})
	}
	return categories[option-1], nil
}

// readAuthors reads 1 to 3 authors, each as first name, last name and an
// optional nationality.
func (h *Handler) readAuthors() ([]data.Author, error) {
	count, err := h.readInt("How many authors does the book have (1-3): ")
	if err != nil {
		return nil, err
	}
	if count < 1 || count > data.MaxAuthorsPerBook {
		return nil, data.FailedValidation(map[string]string{"authors": "must number between 1 and 3"})
	}
	authors := make([]data.Author, 0, count)
	for i := 0; i < count; i++ {
		h.printf("Author %d\n", i+1)
		firstName, err := h.readString("First name: ")
		if err != nil {
			return nil, err
		}
		lastName, err := h.readString("Last name: ")
		if err != nil {
			return nil, err
		}
		nationality, err := h.readString("Nationality (optional): ")
		if err != nil {
			return nil, err
		}
		author, err := data.NewAuthor(firstName, lastName, nationality)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, nil
}

// readAddress reads the four address fields.
func (h *Handler) readAddress() (data.Address, error) {
	street, err := h.readString("Street: ")
	if err != nil {
		return data.Address{}, err
	}
	number, err := h.readString("Number: ")
	if err != nil {
		return data.Address{}, err
	}
	postalCode, err := h.readString("Postal code (5 digits): ")
	if err != nil {
		return data.Address{}, err
	}
	locality, err := h.readString("Locality: ")
	if err != nil {
		return data.Address{}, err
	}
	return data.NewAddress(street, number, postalCode, locality)
}
