package repository

import (
	"strings"

	"github.com/emzola/librarium/data"
)

type users interface {
	InsertUser(user *data.User) error
	DeleteUser(id string) error
	GetUserByID(id string) (*data.User, bool)
	AllUsers() []*data.User
}

// InsertUser appends a user to the membership roll. It fails with
// ErrCapacityExceeded at 1000 users and with ErrDuplicateRecord when a
// user with the same id (ignoring case) is already registered.
func (r *repository) InsertUser(user *data.User) error {
	if len(r.users) >= MaxUsers {
		return ErrCapacityExceeded
	}
	if _, exists := r.GetUserByID(user.ID()); exists {
		return ErrDuplicateRecord
	}
	r.users = append(r.users, user)
	return nil
}

// DeleteUser removes the user with the given id, preserving the relative
// order of the remaining users. It fails with ErrRecordNotFound when no
// such user is registered.
func (r *repository) DeleteUser(id string) error {
	id = strings.TrimSpace(id)
	for i, user := range r.users {
		if strings.EqualFold(user.ID(), id) {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// GetUserByID looks up a user by exact id, ignoring case and surrounding
// whitespace.
func (r *repository) GetUserByID(id string) (*data.User, bool) {
	id = strings.TrimSpace(id)
	for _, user := range r.users {
		if strings.EqualFold(user.ID(), id) {
			return user, true
		}
	}
	return nil, false
}

// AllUsers returns the registered users in registration order.
func (r *repository) AllUsers() []*data.User {
	return append([]*data.User(nil), r.users...)
}
