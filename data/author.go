package data

import (
	"strings"

	"github.com/emzola/librarium/internal/validator"
)

// Author is an immutable value object identifying a book author.
// Two authors are the same when their names match after case and
// whitespace normalization, so "Jane  Doe" and "jane doe" are equal.
type Author struct {
	firstName   string
	lastName    string
	nationality string
}

// NewAuthor creates a validated Author. First and last name are required;
// nationality is optional and may be empty.
func NewAuthor(firstName, lastName, nationality string) (Author, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	nationality = strings.TrimSpace(nationality)

	v := validator.New()
	v.Check(firstName != "", "first name", "must be provided")
	v.Check(lastName != "", "last name", "must be provided")
	if !v.Valid() {
		return Author{}, FailedValidation(v.Errors)
	}
	return Author{
		firstName:   firstName,
		lastName:    lastName,
		nationality: nationality,
	}, nil
}

func (a Author) FirstName() string   { return a.firstName }
func (a Author) LastName() string    { return a.lastName }
func (a Author) Nationality() string { return a.nationality }

// FullName returns the author's name in "Last, First" form.
func (a Author) FullName() string {
	return a.lastName + ", " + a.firstName
}

// Initials returns the upper-cased initials of the author's names,
// e.g. "G. O." for George Orwell.
func (a Author) Initials() string {
	first := initialOf(a.firstName)
	var sb strings.Builder
	for _, part := range strings.Fields(a.lastName) {
		sb.WriteString(initialOf(part))
	}
	if sb.Len() == 0 {
		return first
	}
	return first + " " + sb.String()
}

func initialOf(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(word)[0])) + "."
}

// Equals compares two authors by normalized first and last name.
func (a Author) Equals(other Author) bool {
	return normalizeName(a.firstName) == normalizeName(other.firstName) &&
		normalizeName(a.lastName) == normalizeName(other.lastName)
}

func (a Author) String() string {
	if a.nationality == "" {
		return a.FullName()
	}
	return a.FullName() + " (" + a.nationality + ")"
}
