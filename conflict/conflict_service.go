package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/session"
)

type SessionFinder interface {
	ListByGame(ctx context.Context, gameID string) ([]session.Session, error)
}

// Service checks proposed loan return dates against the sessions planned for a game.
// It only advises; nothing here prevents a loan.
type Service struct {
	sessions SessionFinder
	clock    clock.Clock
	logger   *slog.Logger
}

func NewService(sessions SessionFinder, clk clock.Clock) *Service {
	return &Service{
		sessions: sessions,
		clock:    clk,
		logger:   slog.Default().With("component", "conflict"),
	}
}

// UpcomingSessionsForGame returns the scheduled sessions of a game starting today or
// later, earliest first.
func (s *Service) UpcomingSessionsForGame(ctx context.Context, gameID string) ([]Summary, error) {
	sessions, err := s.sessions.ListByGame(ctx, gameID)

	if err != nil {
		return nil, err
	}

	today := clock.Today(s.clock)
	upcoming := make([]session.Session, 0, len(sessions))

	for _, sess := range sessions {
		if sess.Status == session.StatusScheduled && !sess.StartDate.Before(today) {
			upcoming = append(upcoming, sess)
		}
	}

	session.SortByStart(upcoming)

	summaries := make([]Summary, 0, len(upcoming))
	for _, sess := range upcoming {
		summaries = append(summaries, summarize(sess))
	}

	return summaries, nil
}

// IsScheduled reports whether the game has any upcoming session.
func (s *Service) IsScheduled(ctx context.Context, gameID string) (bool, error) {
	upcoming, err := s.UpcomingSessionsForGame(ctx, gameID)

	if err != nil {
		return false, err
	}

	return len(upcoming) > 0, nil
}

// SuggestReturnDate returns the day before the first upcoming session that needs the game
// on proposed. When that day is already past for every such session, proposed is returned
// unchanged.
func (s *Service) SuggestReturnDate(ctx context.Context, gameID string, proposed time.Time) (time.Time, error) {
	upcoming, err := s.UpcomingSessionsForGame(ctx, gameID)

	if err != nil {
		return time.Time{}, err
	}

	proposed = clock.DateOf(proposed)
	today := clock.Today(s.clock)

	for _, summary := range upcoming {
		if !summary.covers(proposed) {
			continue
		}

		candidate := summary.StartDate.AddDate(0, 0, -1)

		if !candidate.Before(today) {
			return candidate, nil
		}
	}

	return proposed, nil
}

// CheckConflicts reports every upcoming session of the game whose span contains proposed.
func (s *Service) CheckConflicts(ctx context.Context, gameID string, proposed time.Time) (Report, error) {
	upcoming, err := s.UpcomingSessionsForGame(ctx, gameID)

	if err != nil {
		return Report{}, err
	}

	proposed = clock.DateOf(proposed)
	report := Report{
		UpcomingSessions:    upcoming,
		SuggestedReturnDate: proposed,
	}

	var conflicts []Summary
	for _, summary := range upcoming {
		if summary.covers(proposed) {
			conflicts = append(conflicts, summary)
		}
	}

	switch {
	case len(conflicts) > 0:
		first := conflicts[0]
		suggested := first.StartDate.AddDate(0, 0, -1)

		if suggested.Before(clock.Today(s.clock)) {
			suggested = proposed
		}

		report.HasConflicts = true
		report.SuggestedReturnDate = suggested
		report.Message = fmt.Sprintf("This game is scheduled for an upcoming session: '%s' on %s. Please return it by %s.",
			first.Title, first.FormattedDateRange, suggested.Format(time.DateOnly))

		s.logger.Debug("return date conflicts with sessions", "game", gameID, "proposed", proposed.Format(time.DateOnly), "conflicts", len(conflicts))
	case len(upcoming) == 0:
		report.Message = "No upcoming sessions for this game."
	default:
		report.Message = "There are upcoming sessions for this game, but no conflicts with the proposed return date."
	}

	return report, nil
}
