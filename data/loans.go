package data

import (
	"strconv"
	"time"

	"github.com/emzola/librarium/internal/validator"
	"github.com/google/uuid"
)

// LoanTermDays is the fixed lending period. The due date of every loan is
// its start date plus this many days.
const LoanTermDays = 21

// Loan binds one Copy to one User for the fixed lending period. Creating a
// loan marks the copy LOANED and registers the loan with the user; a loan
// cannot exist without those side effects having succeeded. Once returned,
// a loan is terminal and stays in the library's history forever.
type Loan struct {
	id         uuid.UUID
	copy       *Copy
	user       *User
	startDate  time.Time
	dueDate    time.Time
	returned   bool
	returnDate time.Time
}

// NewLoan lends copy to user starting on startDate. It fails when any
// argument is missing, the copy is already loaned, or the user is at the
// active-loan limit. No state is mutated on failure.
func NewLoan(copy *Copy, user *User, startDate time.Time) (*Loan, error) {
	v := validator.New()
	v.Check(copy != nil, "copy", "must be provided")
	v.Check(user != nil, "user", "must be provided")
	v.Check(!startDate.IsZero(), "start date", "must be provided")
	if !v.Valid() {
		return nil, FailedValidation(v.Errors)
	}
	loan := &Loan{
		id:        uuid.New(),
		copy:      copy,
		user:      user,
		startDate: startDate,
		dueDate:   startDate.AddDate(0, 0, LoanTermDays),
	}
	if err := copy.lend(); err != nil {
		return nil, err
	}
	if err := user.addActiveLoan(loan); err != nil {
		copy.release()
		return nil, err
	}
	return loan, nil
}

func (l *Loan) ID() uuid.UUID        { return l.id }
func (l *Loan) Copy() *Copy          { return l.copy }
func (l *Loan) User() *User          { return l.user }
func (l *Loan) StartDate() time.Time { return l.startDate }
func (l *Loan) DueDate() time.Time   { return l.dueDate }
func (l *Loan) Returned() bool       { return l.returned }

// ReturnDate returns when the loan was returned. It is the zero time until
// MarkReturned succeeds.
func (l *Loan) ReturnDate() time.Time { return l.returnDate }

// MarkReturned closes the loan on the given date, frees the copy and
// deregisters the loan from the user. It fails, mutating nothing, when the
// date is missing or precedes the start date, or the loan was already
// returned.
func (l *Loan) MarkReturned(date time.Time) error {
	if date.IsZero() {
		return failedValidationf("return date", "must be provided")
	}
	if date.Before(l.startDate) {
		return failedValidationf("return date", "must not precede the start date")
	}
	if l.returned {
		return failedValidationf("loan", "was already returned")
	}
	l.returned = true
	l.returnDate = date
	l.copy.release()
	l.user.removeActiveLoan(l)
	return nil
}

// DaysLate returns the number of whole days past the due date, measured to
// the return date for a returned loan and to the current date otherwise.
// It is 0 for a loan that is not overdue.
func (l *Loan) DaysLate() int {
	reference := timeNow()
	if l.returned {
		reference = l.returnDate
	}
	late := daysBetween(l.dueDate, reference)
	if late < 0 {
		return 0
	}
	return late
}

// IsOverdue reports whether the loan is unreturned and past its due date.
func (l *Loan) IsOverdue() bool {
	return !l.returned && daysBetween(l.dueDate, timeNow()) > 0
}

func (l *Loan) String() string {
	return l.copy.Code() + "|" + l.user.ID() + "|" +
		l.startDate.Format("2006-01-02") + "|" +
		l.dueDate.Format("2006-01-02") + "|" +
		strconv.FormatBool(l.returned)
}
