package data

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/emzola/librarium/internal/validator"
)

const (
	MaxAuthorsPerBook = 3
	MaxCopiesPerBook  = 50
)

// A book is considered a classic once it is this many years old.
const classicAgeYears = 50

var isbnRX = regexp.MustCompile(`^\d{13}$`)

// Book is a catalog entry identified by its ISBN-13. A book owns its
// authors (1 to 3, no duplicates by normalized name) and its physical
// copies (up to 50).
type Book struct {
	isbn     string
	title    string
	year     int
	category Category
	authors  []Author
	copies   []*Copy
}

// NewBook creates a validated Book. The ISBN must be exactly 13 digits,
// the title at least 3 characters after trimming, the year positive, the
// category one of the known categories, and between 1 and 3 distinct
// authors must be given.
func NewBook(isbn, title string, year int, category Category, authors []Author) (*Book, error) {
	isbn = strings.TrimSpace(isbn)
	title = strings.TrimSpace(title)

	v := validator.New()
	v.Check(validator.Matches(isbn, isbnRX), "isbn", "must be exactly 13 digits")
	v.Check(validator.MinRunes(title, 3), "title", "must be at least 3 characters long")
	v.Check(year > 0, "year", "must be greater than zero")
	v.Check(category.IsValid(), "category", "must be provided")
	v.Check(len(authors) >= 1, "authors", "must contain at least 1 author")
	v.Check(len(authors) <= MaxAuthorsPerBook, "authors", "must not contain more than 3 authors")
	v.Check(uniqueAuthors(authors), "authors", "must not contain duplicate authors")
	if !v.Valid() {
		return nil, FailedValidation(v.Errors)
	}
	return &Book{
		isbn:     isbn,
		title:    title,
		year:     year,
		category: category,
		authors:  append([]Author(nil), authors...),
	}, nil
}

func uniqueAuthors(authors []Author) bool {
	for i := range authors {
		for j := i + 1; j < len(authors); j++ {
			if authors[i].Equals(authors[j]) {
				return false
			}
		}
	}
	return true
}

func (b *Book) ISBN() string       { return b.isbn }
func (b *Book) Title() string      { return b.title }
func (b *Book) Year() int          { return b.year }
func (b *Book) Category() Category { return b.category }

// Authors returns a copy of the book's author list.
func (b *Book) Authors() []Author {
	return append([]Author(nil), b.authors...)
}

// Copies returns a copy of the book's copy list in registration order.
func (b *Book) Copies() []*Copy {
	return append([]*Copy(nil), b.copies...)
}

// SetTitle replaces the title after re-validating it.
func (b *Book) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if !validator.MinRunes(title, 3) {
		return failedValidationf("title", "must be at least 3 characters long")
	}
	b.title = title
	return nil
}

// SetYear replaces the publication year after re-validating it.
func (b *Book) SetYear(year int) error {
	if year <= 0 {
		return failedValidationf("year", "must be greater than zero")
	}
	b.year = year
	return nil
}

// SetCategory replaces the category after re-validating it.
func (b *Book) SetCategory(category Category) error {
	if !category.IsValid() {
		return failedValidationf("category", "must be provided")
	}
	b.category = category
	return nil
}

// AddAuthor adds an author to the book. It fails when the book already
// has 3 authors or the author is already assigned (by normalized name).
func (b *Book) AddAuthor(author Author) error {
	if author == (Author{}) {
		return failedValidationf("author", "must be provided")
	}
	if len(b.authors) >= MaxAuthorsPerBook {
		return failedValidationf("authors", "must not contain more than 3 authors")
	}
	for _, existing := range b.authors {
		if existing.Equals(author) {
			return failedValidationf("author", "is already assigned to the book")
		}
	}
	b.authors = append(b.authors, author)
	return nil
}

// RemoveAuthor removes an author matched by normalized name. It returns
// false, without error, when the author is not assigned to the book.
func (b *Book) RemoveAuthor(author Author) bool {
	for i, existing := range b.authors {
		if existing.Equals(author) {
			b.authors = append(b.authors[:i], b.authors[i+1:]...)
			return true
		}
	}
	return false
}

// AddCopy attaches a copy to the book. The copy must reference this book,
// its code must not collide with an existing copy of this book (ignoring
// case), and the book must have fewer than 50 copies.
func (b *Book) AddCopy(copy *Copy) error {
	if copy == nil {
		return failedValidationf("copy", "must be provided")
	}
	if copy.book != b {
		return failedValidationf("copy", "must belong to this book")
	}
	if len(b.copies) >= MaxCopiesPerBook {
		return failedValidationf("copies", "must not contain more than 50 copies")
	}
	if _, exists := b.FindCopyByCode(copy.code); exists {
		return failedValidationf("copy", "code is already registered for this book")
	}
	b.copies = append(b.copies, copy)
	return nil
}

// FindCopyByCode looks up a copy of this book by its code, ignoring case
// and surrounding whitespace.
func (b *Book) FindCopyByCode(code string) (*Copy, bool) {
	code = strings.TrimSpace(code)
	for _, copy := range b.copies {
		if strings.EqualFold(copy.code, code) {
			return copy, true
		}
	}
	return nil, false
}

// AvailableCopy returns the first copy not currently out on loan.
func (b *Book) AvailableCopy() (*Copy, bool) {
	for _, copy := range b.copies {
		if copy.IsAvailable() {
			return copy, true
		}
	}
	return nil, false
}

// AvailableCopies returns how many of the book's copies can be lent out.
func (b *Book) AvailableCopies() int {
	n := 0
	for _, copy := range b.copies {
		if copy.IsAvailable() {
			n++
		}
	}
	return n
}

// HasCopies reports whether any copies are attached to the book.
func (b *Book) HasCopies() bool {
	return len(b.copies) > 0
}

// Matches reports whether the book matches a free-text query. The match is
// a case- and diacritic-insensitive substring test against the title or the
// concatenated author list. A blank query never matches.
func (b *Book) Matches(text string) bool {
	pattern := normalizeSearch(text)
	if pattern == "" {
		return false
	}
	if strings.Contains(normalizeSearch(b.title), pattern) {
		return true
	}
	authors := normalizeSearch(b.AuthorsString())
	return authors != "" && strings.Contains(authors, pattern)
}

// AuthorsString returns the book's authors joined by "; ".
func (b *Book) AuthorsString() string {
	parts := make([]string, len(b.authors))
	for i, author := range b.authors {
		parts[i] = author.String()
	}
	return strings.Join(parts, "; ")
}

// TitleWordCount returns the number of words in the title.
func (b *Book) TitleWordCount() int {
	return len(strings.Fields(b.title))
}

// ContainsTitleWord reports whether a whole word of the title equals the
// given word under search normalization.
func (b *Book) ContainsTitleWord(word string) bool {
	pattern := normalizeSearch(word)
	if pattern == "" {
		return false
	}
	for _, titleWord := range strings.Fields(normalizeSearch(b.title)) {
		if titleWord == pattern {
			return true
		}
	}
	return false
}

// TitleContains reports whether the title contains the fragment, ignoring
// case only.
func (b *Book) TitleContains(fragment string) bool {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return false
	}
	return strings.Contains(strings.ToLower(b.title), strings.ToLower(fragment))
}

// UpperTitle returns the title in upper case.
func (b *Book) UpperTitle() string {
	return strings.ToUpper(b.title)
}

// TitleWords returns the words of the title.
func (b *Book) TitleWords() []string {
	return strings.Fields(b.title)
}

// IsClassic reports whether the book was published at least 50 years ago.
func (b *Book) IsClassic() bool {
	return b.year <= timeNow().Year()-classicAgeYears
}

// Compare orders books by case-insensitive title, then by ascending year.
// It returns a negative number, zero, or a positive number as b sorts
// before, equal to, or after other.
func (b *Book) Compare(other *Book) int {
	titleA := strings.ToLower(b.title)
	titleB := strings.ToLower(other.title)
	switch {
	case titleA < titleB:
		return -1
	case titleA > titleB:
		return 1
	}
	return b.year - other.year
}

// Equals compares two books by ISBN.
func (b *Book) Equals(other *Book) bool {
	return other != nil && b.isbn == other.isbn
}

func (b *Book) String() string {
	return b.isbn + "|" + b.title + "|" + strconv.Itoa(b.year) + "|" + string(b.category) + "|[" + b.AuthorsString() + "]"
}
