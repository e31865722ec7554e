package conflict

import (
	"time"

	"github.com/hanksha/boardgame-club-backend/session"
)

// Summary is the view of an upcoming session shown next to a loan.
type Summary struct {
	SessionID          string         `json:"sessionId"`
	Title              string         `json:"title"`
	StartDate          time.Time      `json:"startDate"`
	StartTime          string         `json:"startTime"`
	EndDate            time.Time      `json:"endDate"`
	EndTime            string         `json:"endTime"`
	CreatorName        string         `json:"creatorName"`
	Status             session.Status `json:"status"`
	MultiDay           bool           `json:"multiDay"`
	FormattedDateRange string         `json:"formattedDateRange"`
	FormattedTimeRange string         `json:"formattedTimeRange"`
}

func summarize(s session.Session) Summary {
	return Summary{
		SessionID:          s.ID,
		Title:              s.Title,
		StartDate:          s.StartDate,
		StartTime:          s.StartTime,
		EndDate:            s.EndDate,
		EndTime:            s.EndTime,
		CreatorName:        s.CreatorName,
		Status:             s.Status,
		MultiDay:           s.IsMultiDay(),
		FormattedDateRange: s.FormattedDateRange(),
		FormattedTimeRange: s.FormattedTimeRange(),
	}
}

// covers reports whether date falls within the summary's date span.
func (s Summary) covers(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}

type Report struct {
	HasConflicts        bool      `json:"hasConflicts"`
	UpcomingSessions    []Summary `json:"upcomingSessions"`
	SuggestedReturnDate time.Time `json:"suggestedReturnDate"`
	Message             string    `json:"message"`
}
