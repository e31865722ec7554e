package loan

import (
	"time"

	"github.com/hanksha/boardgame-club-backend/clock"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusReturned Status = "RETURNED"
	StatusLate     Status = "LATE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusReturned, StatusLate:
		return true
	}
	return false
}

type Loan struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"userId"`
	Username            string     `json:"username"`
	GameID              string     `json:"gameId"`
	GameName            string     `json:"gameName"`
	LoanDate            time.Time  `json:"loanDate"`
	EstimatedReturnDate time.Time  `json:"estimatedReturnDate"`
	ActualReturnDate    *time.Time `json:"actualReturnDate"`
	Status              Status     `json:"status"`
}

func (l Loan) IsActive() bool {
	return l.Status == StatusActive
}

// IsOverdue reports whether the game is still out past its estimated return date.
func (l Loan) IsOverdue(today time.Time) bool {
	return l.IsActive() && l.EstimatedReturnDate.Before(today)
}

// DelayDays counts the days past the estimated return date: up to today while the game is
// out, up to the actual return date once it is back. Never negative.
func (l Loan) DelayDays(today time.Time) int {
	end := today

	if l.ActualReturnDate != nil {
		end = *l.ActualReturnDate
	}

	return max(0, clock.DaysBetween(l.EstimatedReturnDate, end))
}
