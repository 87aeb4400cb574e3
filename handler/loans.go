package handler

// lendCopy prompts for a copy code, user id and start date, then creates
// the loan.
func (h *Handler) lendCopy() error {
	code, err := h.readString("Copy code: ")
	if err != nil {
		return err
	}
	userID, err := h.readString("User ID: ")
	if err != nil {
		return err
	}
	date, err := h.readDate("Loan date (YYYY-MM-DD, empty for today): ")
	if err != nil {
		return err
	}
	loan, err := h.service.Lend(code, userID, date)
	if err != nil {
		return err
	}
	h.printf("Loan created: %s\n", loan)
	h.printf("Due date: %s\n", loan.DueDate().Format("2006-01-02"))
	return nil
}

// returnCopy prompts for a copy code and return date, then closes the
// matching active loan if one exists.
func (h *Handler) returnCopy() error {
	code, err := h.readString("Copy code: ")
	if err != nil {
		return err
	}
	date, err := h.readDate("Return date (YYYY-MM-DD, empty for today): ")
	if err != nil {
		return err
	}
	returned, err := h.service.ReturnCopy(code, date)
	if err != nil {
		return err
	}
	if !returned {
		h.printf("No active loan found for that copy\n")
		return nil
	}
	h.printf("Return recorded\n")
	return nil
}

// listUserLoans prompts for a user id and prints their active loans.
func (h *Handler) listUserLoans() error {
	id, err := h.readString("User ID: ")
	if err != nil {
		return err
	}
	listing, err := h.service.ListActiveLoansForUser(id)
	if err != nil {
		return err
	}
	h.printf("%s\n", listing)
	return nil
}
