package data

import (
	"regexp"
	"strings"

	"github.com/emzola/librarium/internal/validator"
)

// MaxActiveLoansPerUser is the most loans a user may hold at once.
const MaxActiveLoansPerUser = 5

var userIDRX = regexp.MustCompile(`^[A-Za-z0-9]{6,12}$`)

// User is a library member identified by an immutable id. A user holds
// references to at most 5 concurrently active loans; the loans themselves
// are owned by the library's loan history.
type User struct {
	id          string
	name        string
	email       string
	address     Address
	activeLoans []*Loan
}

// NewUser creates a validated User. The id must be 6 to 12 alphanumeric
// characters, the name at least 2 characters, the email must contain '@'
// and '.', and the address must have been constructed with NewAddress.
func NewUser(id, name, email string, address Address) (*User, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	v := validator.New()
	v.Check(validator.Matches(id, userIDRX), "id", "must be 6 to 12 alphanumeric characters")
	validateUserName(v, name)
	validateUserEmail(v, email)
	v.Check(!address.IsZero(), "address", "must be provided")
	if !v.Valid() {
		return nil, FailedValidation(v.Errors)
	}
	return &User{
		id:      id,
		name:    name,
		email:   email,
		address: address,
	}, nil
}

func validateUserName(v *validator.Validator, name string) {
	v.Check(validator.MinRunes(name, 2), "name", "must be at least 2 characters long")
}

func validateUserEmail(v *validator.Validator, email string) {
	v.Check(strings.Contains(email, "@") && strings.Contains(email, "."), "email", "must be a valid email address")
}

func (u *User) ID() string       { return u.id }
func (u *User) Name() string     { return u.name }
func (u *User) Email() string    { return u.email }
func (u *User) Address() Address { return u.address }

// ActiveLoans returns a copy of the user's active loan list.
func (u *User) ActiveLoans() []*Loan {
	return append([]*Loan(nil), u.activeLoans...)
}

// SetName replaces the name after re-validating it.
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	v := validator.New()
	if validateUserName(v, name); !v.Valid() {
		return FailedValidation(v.Errors)
	}
	u.name = name
	return nil
}

// SetEmail replaces the email after re-validating it.
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	v := validator.New()
	if validateUserEmail(v, email); !v.Valid() {
		return FailedValidation(v.Errors)
	}
	u.email = email
	return nil
}

// SetAddress replaces the address. The zero Address is rejected.
func (u *User) SetAddress(address Address) error {
	if address.IsZero() {
		return failedValidationf("address", "must be provided")
	}
	u.address = address
	return nil
}

// CanBorrow reports whether the user is below the active-loan limit.
func (u *User) CanBorrow() bool {
	return len(u.activeLoans) < MaxActiveLoansPerUser
}

// addActiveLoan registers a loan with the user, enforcing the limit of 5.
func (u *User) addActiveLoan(loan *Loan) error {
	if loan == nil {
		return failedValidationf("loan", "must be provided")
	}
	if !u.CanBorrow() {
		return failedValidationf("user", "already has the maximum number of active loans")
	}
	u.activeLoans = append(u.activeLoans, loan)
	return nil
}

// removeActiveLoan drops a loan from the user's active list, matching by
// loan identity. It is a no-op if the loan is not in the list.
func (u *User) removeActiveLoan(loan *Loan) {
	if loan == nil {
		return
	}
	for i, active := range u.activeLoans {
		if active.id == loan.id {
			u.activeLoans = append(u.activeLoans[:i], u.activeLoans[i+1:]...)
			return
		}
	}
}

// Matches reports whether the user matches a free-text query. The match is
// a case- and diacritic-insensitive substring test against the user's id,
// name, email and address. A blank query never matches.
func (u *User) Matches(text string) bool {
	pattern := normalizeSearch(text)
	if pattern == "" {
		return false
	}
	candidate := normalizeSearch(u.id + " " + u.name + " " + u.email + " " + u.address.String())
	return strings.Contains(candidate, pattern)
}

func (u *User) String() string {
	return u.id + "|" + u.name + "|" + u.email + "|" + u.address.Locality()
}
