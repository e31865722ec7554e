package conflict_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/conflict"
	conflict_mocks "github.com/hanksha/boardgame-club-backend/conflict/mocks"
	"github.com/hanksha/boardgame-club-backend/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const gameID = "g1"

type testDeps struct {
	sessions *conflict_mocks.MockSessionFinder
	clock    *clock.Fixed
	service  *conflict.Service
	ctx      context.Context
}

func newTestDeps(t *testing.T, now time.Time) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	sessions := conflict_mocks.NewMockSessionFinder(ctrl)
	clk := clock.NewFixed(now)

	return ctrl, testDeps{
		sessions: sessions,
		clock:    clk,
		service:  conflict.NewService(sessions, clk),
		ctx:      context.Background(),
	}
}

func scheduled(id, title string, start, end time.Time) session.Session {
	id2 := gameID
	return session.Session{
		ID:          id,
		GameID:      &id2,
		Title:       title,
		CreatorName: "Alice",
		StartDate:   start,
		StartTime:   "18:00",
		EndDate:     end,
		MaxPlayers:  4,
		Status:      session.StatusScheduled,
	}
}

var weekend = scheduled("s1", "Catan weekend", clock.Date(2024, time.June, 10), clock.Date(2024, time.June, 12))

func TestUpcomingSessionsForGame(t *testing.T) {
	ctrl, deps := newTestDeps(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	defer ctrl.Finish()

	past := scheduled("past", "Last month", clock.Date(2024, time.May, 1), clock.Date(2024, time.May, 1))
	cancelled := scheduled("cancelled", "Called off", clock.Date(2024, time.June, 5), clock.Date(2024, time.June, 5))
	cancelled.Status = session.StatusCancelled
	soon := scheduled("soon", "Tonight", clock.Date(2024, time.June, 1), clock.Date(2024, time.June, 1))

	deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend, past, cancelled, soon}, nil).Times(1)

	upcoming, err := deps.service.UpcomingSessionsForGame(deps.ctx, gameID)

	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].SessionID)
	assert.False(t, upcoming[0].MultiDay)
	assert.Equal(t, "s1", upcoming[1].SessionID)
	assert.True(t, upcoming[1].MultiDay)
	assert.Equal(t, "2024-06-10 - 2024-06-12", upcoming[1].FormattedDateRange)
	assert.Equal(t, "From 18:00", upcoming[1].FormattedTimeRange)
}

func TestSuggestReturnDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no upcoming sessions", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return(nil, nil).Times(1)

		proposed := clock.Date(2024, time.June, 11)
		got, err := deps.service.SuggestReturnDate(deps.ctx, gameID, proposed)

		require.NoError(t, err)
		require.Equal(t, proposed, got)
	})

	t.Run("proposed inside a multi-day session", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend}, nil).Times(1)

		got, err := deps.service.SuggestReturnDate(deps.ctx, gameID, clock.Date(2024, time.June, 11))

		require.NoError(t, err)
		require.Equal(t, clock.Date(2024, time.June, 9), got)
	})

	t.Run("proposed on the first day", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend}, nil).Times(1)

		got, err := deps.service.SuggestReturnDate(deps.ctx, gameID, clock.Date(2024, time.June, 10))

		require.NoError(t, err)
		require.Equal(t, clock.Date(2024, time.June, 9), got)
	})

	t.Run("no overlap", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend}, nil).Times(1)

		proposed := clock.Date(2024, time.June, 13)
		got, err := deps.service.SuggestReturnDate(deps.ctx, gameID, proposed)

		require.NoError(t, err)
		require.Equal(t, proposed, got)
	})

	t.Run("day before would be in the past", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC))
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend}, nil).Times(1)

		proposed := clock.Date(2024, time.June, 11)
		got, err := deps.service.SuggestReturnDate(deps.ctx, gameID, proposed)

		require.NoError(t, err)
		require.Equal(t, proposed, got)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		errDB := errors.New("db error")
		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return(nil, errDB).Times(1)

		_, err := deps.service.SuggestReturnDate(deps.ctx, gameID, clock.Date(2024, time.June, 11))

		require.ErrorIs(t, err, errDB)
	})
}

func TestCheckConflicts(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("conflicting session", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		later := scheduled("s2", "Second weekend", clock.Date(2024, time.June, 11), clock.Date(2024, time.June, 11))
		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{later, weekend}, nil).Times(1)

		report, err := deps.service.CheckConflicts(deps.ctx, gameID, clock.Date(2024, time.June, 11))

		require.NoError(t, err)
		assert.True(t, report.HasConflicts)
		assert.Equal(t, clock.Date(2024, time.June, 9), report.SuggestedReturnDate)
		assert.Len(t, report.UpcomingSessions, 2)
		assert.Contains(t, report.Message, "Catan weekend")
		assert.Contains(t, report.Message, "2024-06-10 - 2024-06-12")
	})

	t.Run("suggestion clamped to proposed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC))
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend}, nil).Times(1)

		proposed := clock.Date(2024, time.June, 11)
		report, err := deps.service.CheckConflicts(deps.ctx, gameID, proposed)

		require.NoError(t, err)
		assert.True(t, report.HasConflicts)
		assert.Equal(t, proposed, report.SuggestedReturnDate)
	})

	t.Run("sessions without conflict", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend}, nil).Times(1)

		proposed := clock.Date(2024, time.June, 5)
		report, err := deps.service.CheckConflicts(deps.ctx, gameID, proposed)

		require.NoError(t, err)
		assert.False(t, report.HasConflicts)
		assert.Equal(t, proposed, report.SuggestedReturnDate)
		assert.Len(t, report.UpcomingSessions, 1)
		assert.Equal(t, "There are upcoming sessions for this game, but no conflicts with the proposed return date.", report.Message)
	})

	t.Run("no sessions", func(t *testing.T) {
		ctrl, deps := newTestDeps(t, now)
		defer ctrl.Finish()

		deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return(nil, nil).Times(1)

		report, err := deps.service.CheckConflicts(deps.ctx, gameID, clock.Date(2024, time.June, 5))

		require.NoError(t, err)
		assert.False(t, report.HasConflicts)
		assert.Empty(t, report.UpcomingSessions)
		assert.Equal(t, "No upcoming sessions for this game.", report.Message)
	})
}

func TestIsScheduled(t *testing.T) {
	ctrl, deps := newTestDeps(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	defer ctrl.Finish()

	deps.sessions.EXPECT().ListByGame(deps.ctx, gameID).Return([]session.Session{weekend}, nil).Times(1)

	scheduled, err := deps.service.IsScheduled(deps.ctx, gameID)

	require.NoError(t, err)
	require.True(t, scheduled)
}
