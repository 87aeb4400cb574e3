// Package handler implements the interactive text menu over the library
// service. It reads raw input, constructs value objects and entities, and
// dispatches to the service; validation errors are caught at the top of
// the interaction loop and displayed, then the session continues.
package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/emzola/librarium/config"
	"github.com/emzola/librarium/internal/jsonlog"
	"github.com/emzola/librarium/service"
)

// Handler defines the handler layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	service service.Service
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a new instance of Handler reading from in and writing to out.
func New(cfg config.Config, logger *jsonlog.Logger, service service.Service, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the menu loop until the user quits or input is exhausted.
func (h *Handler) Run() {
	h.printf("Welcome to %s\n", h.service.Name())
	for {
		h.printMenu()
		option, ok := h.readLine("Select an option: ")
		if !ok {
			return
		}
		if option == "0" {
			h.printf("Goodbye\n")
			return
		}
		if err := h.dispatch(option); err != nil {
			switch {
			case errors.Is(err, errInputClosed):
				return
			case errors.Is(err, service.ErrFailedValidation):
				h.printf("Error: %v\n", err)
			default:
				h.logger.PrintError(err, map[string]string{"option": option})
				h.printf("Error: %v\n", err)
			}
		}
	}
}

func (h *Handler) printMenu() {
	h.printf("\n============ MENU ============\n" +
		"1. Register book\n" +
		"2. Register user\n" +
		"3. Search books by text\n" +
		"4. Search users by text\n" +
		"5. Lend a copy\n" +
		"6. Return a copy\n" +
		"7. List a user's active loans\n" +
		"8. List books\n" +
		"9. List loans\n" +
		"0. Quit\n")
}

func (h *Handler) dispatch(option string) error {
	switch option {
	case "1":
		return h.registerBook()
	case "2":
		return h.registerUser()
	case "3":
		return h.searchBooks()
	case "4":
		return h.searchUsers()
	case "5":
		return h.lendCopy()
	case "6":
		return h.returnCopy()
	case "7":
		return h.listUserLoans()
	case "8":
		h.printf("%s\n", h.service.ListBooks())
		return nil
	case "9":
		h.printf("%s\n", h.service.ListLoans())
		return nil
	default:
		h.printf("Invalid option\n")
		return nil
	}
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}
