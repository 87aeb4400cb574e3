package data

import (
	"regexp"
	"strings"

	"github.com/emzola/librarium/internal/validator"
)

var postalCodeRX = regexp.MustCompile(`^\d{5}$`)

// Address is an immutable postal address value object. Addresses are
// compared by exact field match.
type Address struct {
	street     string
	number     string
	postalCode string
	locality   string
}

// NewAddress creates a validated Address. Every field must be non-empty
// after trimming and the postal code must be exactly 5 digits.
func NewAddress(street, number, postalCode, locality string) (Address, error) {
	street = strings.TrimSpace(street)
	number = strings.TrimSpace(number)
	postalCode = strings.TrimSpace(postalCode)
	locality = strings.TrimSpace(locality)

	v := validator.New()
	v.Check(street != "", "street", "must be provided")
	v.Check(number != "", "number", "must be provided")
	v.Check(validator.Matches(postalCode, postalCodeRX), "postal code", "must be exactly 5 digits")
	v.Check(locality != "", "locality", "must be provided")
	if !v.Valid() {
		return Address{}, FailedValidation(v.Errors)
	}
	return Address{
		street:     street,
		number:     number,
		postalCode: postalCode,
		locality:   locality,
	}, nil
}

func (a Address) Street() string     { return a.street }
func (a Address) Number() string     { return a.number }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Locality() string   { return a.locality }

// IsZero reports whether a is the zero Address, i.e. it was never
// constructed through NewAddress.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) Equals(other Address) bool {
	return a == other
}

func (a Address) String() string {
	return a.street + " " + a.number + ", " + a.postalCode + " " + a.locality
}
