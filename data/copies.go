package data

import (
	"regexp"
	"strings"

	"github.com/emzola/librarium/internal/validator"
)

// CopyStatus is the lending state of a physical copy.
type CopyStatus string

const (
	CopyAvailable CopyStatus = "AVAILABLE"
	CopyLoaned    CopyStatus = "LOANED"
)

var copyCodeRX = regexp.MustCompile(`^[A-Za-z0-9-]{3,20}$`)

// Copy is one physical instance of a Book, individually loanable. The
// back-reference to its owning Book is a non-owning association.
type Copy struct {
	code   string
	status CopyStatus
	book   *Book
}

// NewCopy creates a copy of book with the given code. The code must be
// 3 to 20 alphanumeric or hyphen characters. New copies start AVAILABLE.
// The copy still has to be attached to its book with Book.AddCopy.
func NewCopy(code string, book *Book) (*Copy, error) {
	code = strings.TrimSpace(code)

	v := validator.New()
	v.Check(validator.Matches(code, copyCodeRX), "code", "must be 3 to 20 characters, letters, digits or hyphens")
	v.Check(book != nil, "book", "must be provided")
	if !v.Valid() {
		return nil, FailedValidation(v.Errors)
	}
	return &Copy{
		code:   code,
		status: CopyAvailable,
		book:   book,
	}, nil
}

func (c *Copy) Code() string       { return c.code }
func (c *Copy) Status() CopyStatus { return c.status }
func (c *Copy) Book() *Book        { return c.book }

// IsAvailable reports whether the copy can be lent out.
func (c *Copy) IsAvailable() bool {
	return c.status == CopyAvailable
}

// lend flips the copy to LOANED. It fails if the copy is already out.
func (c *Copy) lend() error {
	if c.status == CopyLoaned {
		return failedValidationf("copy", "is already loaned")
	}
	c.status = CopyLoaned
	return nil
}

// release makes the copy available again after a return.
func (c *Copy) release() {
	c.status = CopyAvailable
}

func (c *Copy) String() string {
	return c.code + " (" + string(c.status) + ") -> " + c.book.Title()
}
