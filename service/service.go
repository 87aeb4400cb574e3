// Package service implements the library's operations: registration,
// lookup, search, lending and returns. It enforces every rule that spans
// more than one entity, on top of the bounded collections in the
// repository layer.
package service

import (
	"strings"
	"sync"

	"github.com/emzola/librarium/data"
	"github.com/emzola/librarium/internal/jsonlog"
	"github.com/emzola/librarium/internal/validator"
	"github.com/emzola/librarium/repository"
)

type Service interface {
	Name() string
	Address() data.Address
	books
	users
	loans
}

// service defines the service layer. The mutex is the single
// mutual-exclusion boundary around all library operations; they read
// shared capacity counters and collection contents before writing.
type service struct {
	name    string
	address data.Address
	mu      sync.Mutex
	logger  *jsonlog.Logger
	repo    repository.Repository
}

// New creates a new instance of Service for a library with the given name
// and address. The name must be non-empty and the address must have been
// constructed with data.NewAddress.
func New(name string, address data.Address, logger *jsonlog.Logger, repo repository.Repository) (Service, error) {
	name = strings.TrimSpace(name)

	v := validator.New()
	v.Check(name != "", "name", "must be provided")
	v.Check(!address.IsZero(), "address", "must be provided")
	if !v.Valid() {
		return nil, data.FailedValidation(v.Errors)
	}
	return &service{
		name:    name,
		address: address,
		logger:  logger,
		repo:    repo,
	}, nil
}

// Name returns the library's name.
func (s *service) Name() string {
	return s.name
}

// Address returns the library's address.
func (s *service) Address() data.Address {
	return s.address
}
