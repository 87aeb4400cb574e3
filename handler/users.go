package handler

import (
	"github.com/emzola/librarium/data"
)

// registerUser walks through the new-user prompts and registers the result.
func (h *Handler) registerUser() error {
	id, err := h.readString("ID (6-12 alphanumeric characters): ")
	if err != nil {
		return err
	}
	name, err := h.readString("Full name: ")
	if err != nil {
		return err
	}
	email, err := h.readString("Email: ")
	if err != nil {
		return err
	}
	address, err := h.readAddress()
	if err != nil {
		return err
	}
	user, err := data.NewUser(id, name, email, address)
	if err != nil {
		return err
	}
	if err := h.service.RegisterUser(user); err != nil {
		return err
	}
	h.printf("User registered\n")
	return nil
}

// searchUsers prompts for a query and prints every matching user.
func (h *Handler) searchUsers() error {
	text, err := h.readString("Text to search: ")
	if err != nil {
		return err
	}
	users := h.service.SearchUsers(text)
	if len(users) == 0 {
		h.printf("No matches found\n")
		return nil
	}
	for _, user := range users {
		h.printf("%s\n", user)
	}
	return nil
}
