package repository

import (
	"strings"

	"github.com/emzola/librarium/data"
)

type loans interface {
	InsertLoan(loan *data.Loan) error
	GetActiveLoanByCopyCode(code string) (*data.Loan, bool)
	ActiveLoansForUser(id string) []*data.Loan
	AllLoans() []*data.Loan
	CountLoans() int
}

// InsertLoan appends a loan to the history. It fails with
// ErrCapacityExceeded at 10000 loans. Loans are never deleted, returned
// loans stay in the history.
func (r *repository) InsertLoan(loan *data.Loan) error {
	if len(r.loans) >= MaxLoans {
		return ErrCapacityExceeded
	}
	r.loans = append(r.loans, loan)
	return nil
}

// GetActiveLoanByCopyCode finds the unreturned loan for the copy with the
// given code, ignoring case. The scan runs from the most recent loan
// backward; a copy can only ever be out on one unreturned loan, so at most
// one loan can match.
func (r *repository) GetActiveLoanByCopyCode(code string) (*data.Loan, bool) {
	code = strings.TrimSpace(code)
	for i := len(r.loans) - 1; i >= 0; i-- {
		loan := r.loans[i]
		if !loan.Returned() && strings.EqualFold(loan.Copy().Code(), code) {
			return loan, true
		}
	}
	return nil, false
}

// ActiveLoansForUser returns the unreturned loans held by the user with
// the given id, in storage order.
func (r *repository) ActiveLoansForUser(id string) []*data.Loan {
	id = strings.TrimSpace(id)
	var active []*data.Loan
	for _, loan := range r.loans {
		if !loan.Returned() && strings.EqualFold(loan.User().ID(), id) {
			active = append(active, loan)
		}
	}
	return active
}

// AllLoans returns the full loan history in creation order.
func (r *repository) AllLoans() []*data.Loan {
	return append([]*data.Loan(nil), r.loans...)
}

// CountLoans returns the number of loans in the history, returned or not.
func (r *repository) CountLoans() int {
	return len(r.loans)
}
