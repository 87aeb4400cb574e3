// Package repository holds the library's three bounded, insertion-ordered
// collections in memory. Each collection enforces its own capacity and key
// uniqueness; cross-entity rules live in the service layer.
//
// The repository is not safe for concurrent use on its own. The service
// layer serializes every operation behind a single mutex.
package repository

import (
	"github.com/emzola/librarium/data"
)

// Collection capacities. These are fixed limits, not tunables.
const (
	MaxBooks = 2000
	MaxUsers = 1000
	MaxLoans = 10000
)

type Repository interface {
	books
	users
	loans
}

// repository defines the app's repository layer.
type repository struct {
	books []*data.Book
	users []*data.User
	loans []*data.Loan
}

// New creates a new instance of Repository with empty collections.
func New() Repository {
	return &repository{}
}
