package service

import (
	"strings"
	"time"

	"github.com/emzola/librarium/data"
	"github.com/emzola/librarium/internal/validator"
	"github.com/emzola/librarium/repository"
)

type loans interface {
	Lend(copyCode, userID string, date time.Time) (*data.Loan, error)
	ReturnCopy(copyCode string, date time.Time) (bool, error)
	ActiveLoansForUser(id string) ([]*data.Loan, error)
	ListLoans() string
	ListActiveLoansForUser(id string) (string, error)
}

// Lend creates a loan of the copy with the given code to the user with the
// given id. Every precondition is checked before any state changes: the
// date must be present, the copy must exist in some registered book and be
// available, the user must exist and be below the active-loan limit, and
// the loan history must be below capacity.
func (s *service) Lend(copyCode, userID string, date time.Time) (*data.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := validator.New()
	if v.Check(!date.IsZero(), "date", "must be provided"); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	copy, exists := s.findCopyByCode(copyCode)
	if !exists {
		v.AddError("copy", "no copy with that code exists")
		return nil, s.failedValidation(v.Errors)
	}
	if !copy.IsAvailable() {
		v.AddError("copy", "is not available")
		return nil, s.failedValidation(v.Errors)
	}
	user, exists := s.repo.GetUserByID(userID)
	if !exists {
		v.AddError("user", "no user with that id exists")
		return nil, s.failedValidation(v.Errors)
	}
	if !user.CanBorrow() {
		v.AddError("user", "already has the maximum number of active loans")
		return nil, s.failedValidation(v.Errors)
	}
	if s.repo.CountLoans() >= repository.MaxLoans {
		v.AddError("loans", "no more loans can be registered")
		return nil, s.failedValidation(v.Errors)
	}
	loan, err := data.NewLoan(copy, user, date)
	if err != nil {
		return nil, err
	}
	// Cannot fail: capacity was checked above under the same lock.
	if err := s.repo.InsertLoan(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// ReturnCopy closes the active loan for the copy with the given code. It
// returns false, without error, when no unreturned loan matches the code.
func (s *service) ReturnCopy(copyCode string, date time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := validator.New()
	v.Check(strings.TrimSpace(copyCode) != "", "copy code", "must be provided")
	v.Check(!date.IsZero(), "date", "must be provided")
	if !v.Valid() {
		return false, s.failedValidation(v.Errors)
	}
	loan, exists := s.repo.GetActiveLoanByCopyCode(copyCode)
	if !exists {
		return false, nil
	}
	if err := loan.MarkReturned(date); err != nil {
		return false, err
	}
	return true, nil
}

// ActiveLoansForUser returns the unreturned loans held by the user with
// the given id, in storage order. The id must be non-blank; an unknown id
// simply yields an empty result.
func (s *service) ActiveLoansForUser(id string) ([]*data.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeLoansForUser(id)
}

func (s *service) activeLoansForUser(id string) ([]*data.Loan, error) {
	v := validator.New()
	if v.Check(strings.TrimSpace(id) != "", "id", "must be provided"); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	return s.repo.ActiveLoansForUser(id), nil
}

// ListLoans returns one line per loan in the history, in creation order,
// or a fixed message when no loans exist.
func (s *service) ListLoans() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.AllLoans()
	if len(all) == 0 {
		return "no loans registered"
	}
	var sb strings.Builder
	for _, loan := range all {
		sb.WriteString(loan.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ListActiveLoansForUser returns one line per active loan held by the
// user, or a fixed message when the user holds none.
func (s *service) ListActiveLoansForUser(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.activeLoansForUser(id)
	if err != nil {
		return "", err
	}
	if len(active) == 0 {
		return "user has no active loans", nil
	}
	var sb strings.Builder
	for _, loan := range active {
		sb.WriteString(loan.String())
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// findCopyByCode searches every registered book for a copy with the given
// code. Copy codes are only guaranteed unique within one book; the first
// match in registration order wins.
func (s *service) findCopyByCode(code string) (*data.Copy, bool) {
	for _, book := range s.repo.AllBooks() {
		if copy, exists := book.FindCopyByCode(code); exists {
			return copy, true
		}
	}
	return nil, false
}
