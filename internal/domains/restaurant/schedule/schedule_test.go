package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mesa/internal/domains/restaurant/model"
	"mesa/internal/domains/restaurant/schedule"
)

func TestTimeOptions(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		interval int
		expected []string
	}{
		{
			name:     "nine to five with 30 minute interval",
			open:     "09:00",
			close:    "17:00",
			interval: 30,
			expected: []string{
				"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
				"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
				"15:00", "15:30", "16:00", "16:30",
			},
		},
		{
			name:     "hour interval",
			open:     "18:00",
			close:    "21:00",
			interval: 60,
			expected: []string{"18:00", "19:00", "20:00"},
		},
		{
			name:     "zero interval returns empty",
			open:     "09:00",
			close:    "17:00",
			interval: 0,
			expected: []string{},
		},
		{
			name:     "negative interval returns empty",
			open:     "09:00",
			close:    "17:00",
			interval: -15,
			expected: []string{},
		},
		{
			name:     "open after close returns empty",
			open:     "17:00",
			close:    "09:00",
			interval: 30,
			expected: []string{},
		},
		{
			name:     "window smaller than interval returns empty",
			open:     "09:00",
			close:    "09:15",
			interval: 30,
			expected: []string{},
		},
		{
			name:     "malformed open time returns empty",
			open:     "nine",
			close:    "17:00",
			interval: 30,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.TimeOptions(tt.open, tt.close, tt.interval)

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeOptionsNeverIncludesClosingTime(t *testing.T) {
	got := schedule.TimeOptions("09:00", "17:00", 30)

	assert.Len(t, got, 16)
	assert.NotContains(t, got, "17:00")
	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "16:30", got[len(got)-1])
}

func TestWindowOptionsSplitShift(t *testing.T) {
	windows := []model.TimeWindow{
		{Open: "12:00", Close: "14:00"},
		{Open: "19:00", Close: "21:00"},
	}

	got := schedule.WindowOptions(windows, 60)

	assert.Equal(t, []string{"12:00", "13:00", "19:00", "20:00"}, got)
}

func TestDayIndex(t *testing.T) {
	// 2026-08-30 is a Sunday, 2026-08-31 is a Monday.
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 6, schedule.DayIndex(sunday))
	assert.Equal(t, 0, schedule.DayIndex(monday))
	assert.Equal(t, 5, schedule.DayIndex(saturday))
}

func TestAvailableTimes(t *testing.T) {
	opening := model.WeekSchedule{}
	opening[0] = model.DayHours{Hours: []model.TimeWindow{{Open: "08:00", Close: "10:00"}}}

	params := model.ReservationParams{Interval: 30}
	params.ReservationHours[0] = model.DayHours{Hours: []model.TimeWindow{{Open: "18:00", Close: "20:00"}}}

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("uses reservation hours by default", func(t *testing.T) {
		got := schedule.AvailableTimes(monday, opening, params)

		assert.Equal(t, []string{"18:00", "18:30", "19:00", "19:30"}, got)
	})

	t.Run("borrows general opening hours when configured", func(t *testing.T) {
		borrowed := params
		borrowed.SameHoursAsRestaurant = true

		got := schedule.AvailableTimes(monday, opening, borrowed)

		assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30"}, got)
	})

	t.Run("closed day has no slots regardless of hours", func(t *testing.T) {
		closed := params
		closed.ReservationHours[0].IsClosed = true

		got := schedule.AvailableTimes(monday, opening, closed)

		assert.Empty(t, got)
	})

	t.Run("day without windows has no slots", func(t *testing.T) {
		tuesday := monday.AddDate(0, 0, 1)

		got := schedule.AvailableTimes(tuesday, opening, params)

		assert.Empty(t, got)
	})
}

func TestIsBookable(t *testing.T) {
	params := model.ReservationParams{Interval: 30}
	params.ReservationHours[0] = model.DayHours{Hours: []model.TimeWindow{{Open: "18:00", Close: "20:00"}}}

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, schedule.IsBookable(monday, "18:30", model.WeekSchedule{}, params))
	assert.False(t, schedule.IsBookable(monday, "20:00", model.WeekSchedule{}, params))
	assert.False(t, schedule.IsBookable(monday, "18:15", model.WeekSchedule{}, params))
}
