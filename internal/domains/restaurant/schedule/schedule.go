// Package schedule computes bookable time slots from a restaurant's weekly
// opening configuration. All functions are pure.
package schedule

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mesa/internal/domains/restaurant/model"
)

const minutesPerDay = 24 * 60

func parseMinutes(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", value, err)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", value, err)
	}

	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}

	return hours*60 + minutes, nil
}

func formatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// TimeOptions expands a single open/close window into every bookable start
// time, stepping by interval minutes. The closing time itself is never a
// slot. A non-positive interval yields no slots.
func TimeOptions(open, close string, interval int) []string {
	if interval <= 0 {
		log.Error().Int("interval", interval).Msg("invalid slot interval, returning no slots")

		return []string{}
	}

	start, err := parseMinutes(open)
	if err != nil {
		log.Error().Err(err).Msg("invalid open time")

		return []string{}
	}

	end, err := parseMinutes(close)
	if err != nil {
		log.Error().Err(err).Msg("invalid close time")

		return []string{}
	}

	if end > minutesPerDay {
		end = minutesPerDay
	}

	options := []string{}
	for at := start; at <= end-interval; at += interval {
		options = append(options, formatMinutes(at))
	}

	return options
}

// WindowOptions expands each window independently and concatenates the
// results, so split-shift days produce disjoint slot ranges.
func WindowOptions(windows []model.TimeWindow, interval int) []string {
	options := []string{}
	for _, window := range windows {
		options = append(options, TimeOptions(window.Open, window.Close, interval)...)
	}

	return options
}

// DayIndex maps a date's weekday to the Monday-first schedule index:
// Monday=0 .. Sunday=6.
func DayIndex(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		return model.DaysPerWeek - 1
	}

	return weekday - 1
}

// ResolveDay picks the hours definition that governs the given date: the
// general opening hours when the parameters borrow them, the dedicated
// reservation schedule otherwise.
func ResolveDay(date time.Time, opening model.WeekSchedule, params model.ReservationParams) model.DayHours {
	idx := DayIndex(date)

	if params.SameHoursAsRestaurant {
		return opening[idx]
	}

	return params.ReservationHours[idx]
}

// AvailableTimes returns every bookable slot for the date. A closed day, or
// a day with no configured windows, has no slots.
func AvailableTimes(date time.Time, opening model.WeekSchedule, params model.ReservationParams) []string {
	day := ResolveDay(date, opening, params)

	if day.IsClosed || len(day.Hours) == 0 {
		return []string{}
	}

	return WindowOptions(day.Hours, params.Interval)
}

// IsBookable reports whether the "HH:MM" time is one of the generated slots
// for the date.
func IsBookable(date time.Time, timeOfDay string, opening model.WeekSchedule, params model.ReservationParams) bool {
	return slices.Contains(AvailableTimes(date, opening, params), timeOfDay)
}
