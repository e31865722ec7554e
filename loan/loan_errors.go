package loan

import (
	"errors"
	"fmt"
	"time"
)

var ErrLoanNotFound = errors.New("loan not found")

var ErrInvalidLoanState = errors.New("loan is not active")

var ErrInvalidStatus = errors.New("invalid loan status")

var ErrInvalidReturnDate = errors.New("estimated return date cannot be in the past")

var (
	ErrGameNotAvailable        = errors.New("game is not available for loan")
	ErrDuplicateUserLoan       = errors.New("user already has an active loan for this game")
	ErrGameAlreadyLoaned       = errors.New("game is already loaned to another user")
	ErrBorrowerHasOverdueLoans = errors.New("user has overdue loans")
)

// GameAlreadyLoanedError identifies who currently holds the game and when it is due back.
type GameAlreadyLoanedError struct {
	HolderID       string
	HolderUsername string
	DueDate        time.Time
}

func (e *GameAlreadyLoanedError) Error() string {
	return fmt.Sprintf("game is already loaned to %s until %s", e.HolderUsername, e.DueDate.Format(time.DateOnly))
}

func (e *GameAlreadyLoanedError) Unwrap() error {
	return ErrGameAlreadyLoaned
}

// IsConstraintViolation reports whether err is a business rule rejection of a new loan.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrGameNotAvailable) ||
		errors.Is(err, ErrDuplicateUserLoan) ||
		errors.Is(err, ErrGameAlreadyLoaned) ||
		errors.Is(err, ErrBorrowerHasOverdueLoans)
}
