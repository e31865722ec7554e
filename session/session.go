package session

import (
	"fmt"
	"time"

	"github.com/hanksha/boardgame-club-backend/clock"
)

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// TimeLayout is the wall clock format of StartTime and EndTime.
const TimeLayout = "15:04"

type Player struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	JoinDate  time.Time `json:"joinDate"`
	Confirmed bool      `json:"confirmed"`
}

type Session struct {
	ID                    string    `json:"id"`
	CreatorID             string    `json:"creatorId"`
	CreatorName           string    `json:"creatorName"`
	GameID                *string   `json:"gameId"` // nil for a custom game
	GameName              string    `json:"gameName"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	CustomGameName        string    `json:"customGameName"`
	CustomGameDescription string    `json:"customGameDescription"`
	CustomImagePath       string    `json:"customImagePath"`
	StartDate             time.Time `json:"startDate"`
	StartTime             string    `json:"startTime"`
	EndDate               time.Time `json:"endDate"`
	EndTime               string    `json:"endTime"`
	MaxPlayers            int       `json:"maxPlayers"`
	Status                Status    `json:"status"`
	Players               []Player  `json:"players"`
}

func (s Session) IsLibraryGame() bool {
	return s.GameID != nil
}

// DisplayGameName is the catalog game's name, or the custom name for ad-hoc games.
func (s Session) DisplayGameName() string {
	if s.IsLibraryGame() && s.GameName != "" {
		return s.GameName
	}
	return s.CustomGameName
}

func (s Session) IsMultiDay() bool {
	return !s.StartDate.Equal(s.EndDate)
}

func (s Session) ConfirmedCount() int {
	count := 0
	for _, p := range s.Players {
		if p.Confirmed {
			count++
		}
	}
	return count
}

func (s Session) IsFull() bool {
	return s.ConfirmedCount() >= s.MaxPlayers
}

// Covers reports whether date falls within [StartDate, EndDate].
func (s Session) Covers(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}

// HasExpired reports whether the session's end lies before now. A session without an
// end time lasts until the end of its end date.
func (s Session) HasExpired(now time.Time) bool {
	today := clock.DateOf(now)

	if s.EndDate.Before(today) {
		return true
	}

	if s.EndDate.After(today) {
		return false
	}

	if s.EndTime == "" {
		// lasts until the end of its end date
		return false
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	end, err := time.Parse(TimeLayout, s.EndTime)

	if err != nil {
		return false
	}

	return nowMinutes > end.Hour()*60+end.Minute()
}

// FormattedDateRange renders "start - end" for multi-day sessions and the single date otherwise.
func (s Session) FormattedDateRange() string {
	if s.IsMultiDay() {
		return fmt.Sprintf("%s - %s", s.StartDate.Format(time.DateOnly), s.EndDate.Format(time.DateOnly))
	}
	return s.StartDate.Format(time.DateOnly)
}

func (s Session) FormattedTimeRange() string {
	switch {
	case s.StartTime != "" && s.EndTime != "":
		return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
	case s.StartTime != "":
		return "From " + s.StartTime
	default:
		return "Time not specified"
	}
}
