package clock_test

import (
	"testing"
	"time"

	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	instant := time.Date(2024, time.June, 10, 1, 30, 0, 0, loc)

	require.Equal(t, clock.Date(2024, time.June, 10), clock.DateOf(instant))
}

func TestToday(t *testing.T) {
	c := clock.NewFixed(time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC))
	require.Equal(t, clock.Date(2024, time.June, 10), clock.Today(c))

	c.Advance(2 * time.Minute)
	require.Equal(t, clock.Date(2024, time.June, 11), clock.Today(c))
}

func TestDaysBetween(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		require.Equal(t, 3, clock.DaysBetween(clock.Date(2024, time.February, 27), clock.Date(2024, time.March, 1)))
	})

	t.Run("same day", func(t *testing.T) {
		require.Equal(t, 0, clock.DaysBetween(clock.Date(2024, time.June, 1), clock.Date(2024, time.June, 1)))
	})

	t.Run("backward", func(t *testing.T) {
		require.Equal(t, -1, clock.DaysBetween(clock.Date(2024, time.June, 2), clock.Date(2024, time.June, 1)))
	})
}

func TestParseDate(t *testing.T) {
	d, err := clock.ParseDate("2024-06-09")
	require.NoError(t, err)
	require.Equal(t, clock.Date(2024, time.June, 9), d)

	_, err = clock.ParseDate("09/06/2024")
	require.Error(t, err)
}
