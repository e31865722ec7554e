package session_test

import (
	"testing"
	"time"

	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/session"
	"github.com/stretchr/testify/assert"
)

func TestHasExpired(t *testing.T) {
	s := session.Session{
		StartDate: clock.Date(2024, time.June, 1),
		StartTime: "18:00",
		EndDate:   clock.Date(2024, time.June, 1),
		EndTime:   "22:00",
	}
	at := func(hour, minute, second int) time.Time {
		return time.Date(2024, time.June, 1, hour, minute, second, 0, time.UTC)
	}

	t.Run("before end time", func(t *testing.T) {
		assert.False(t, s.HasExpired(at(21, 59, 0)))
	})

	t.Run("after end time", func(t *testing.T) {
		assert.True(t, s.HasExpired(at(22, 1, 0)))
	})

	t.Run("no end time lasts the whole day", func(t *testing.T) {
		allDay := s
		allDay.EndTime = ""
		assert.False(t, allDay.HasExpired(at(23, 59, 59)))
		assert.True(t, allDay.HasExpired(at(23, 59, 59).Add(time.Second)))
	})

	t.Run("ended on an earlier day", func(t *testing.T) {
		assert.True(t, s.HasExpired(at(0, 0, 0).AddDate(0, 0, 1)))
	})
}
