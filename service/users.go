package service

import (
	"errors"

	"github.com/emzola/librarium/data"
	"github.com/emzola/librarium/internal/validator"
	"github.com/emzola/librarium/repository"
)

type users interface {
	RegisterUser(user *data.User) error
	UnregisterUser(id string) (bool, error)
	FindUserByID(id string) (*data.User, bool)
	SearchUsers(text string) []*data.User
}

// RegisterUser adds a user to the membership roll. It fails when the user
// is nil, the roll is at capacity, or a user with the same id is already
// registered.
func (s *service) RegisterUser(user *data.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := validator.New()
	if v.Check(user != nil, "user", "must be provided"); !v.Valid() {
		return s.failedValidation(v.Errors)
	}
	err := s.repo.InsertUser(user)
	switch {
	case errors.Is(err, repository.ErrCapacityExceeded):
		v.AddError("users", "no more users can be registered")
		return s.failedValidation(v.Errors)
	case errors.Is(err, repository.ErrDuplicateRecord):
		v.AddError("id", "is already registered")
		return s.failedValidation(v.Errors)
	default:
		return err
	}
}

// UnregisterUser removes the user with the given id. It returns false,
// without error, when no such user is registered, and fails when the user
// still holds active loans.
func (s *service) UnregisterUser(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.repo.GetUserByID(id)
	if !exists {
		return false, nil
	}
	if len(user.ActiveLoans()) > 0 {
		v := validator.New()
		v.AddError("user", "cannot be removed while they have active loans")
		return false, s.failedValidation(v.Errors)
	}
	if err := s.repo.DeleteUser(id); err != nil {
		return false, err
	}
	return true, nil
}

// FindUserByID looks up a user by exact id, ignoring case. Absence is not
// an error.
func (s *service) FindUserByID(id string) (*data.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.GetUserByID(id)
}

// SearchUsers returns every user matching the free-text query, in
// registration order. A blank query or a query with no matches yields an
// empty result, not an error.
func (s *service) SearchUsers(text string) []*data.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*data.User
	for _, user := range s.repo.AllUsers() {
		if user.Matches(text) {
			matches = append(matches, user)
		}
	}
	return matches
}
