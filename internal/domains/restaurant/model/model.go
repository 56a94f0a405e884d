package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"mesa/shared/model"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID                = "id"
	FieldOwnerID           = "owner_id"
	FieldName              = "name"
	FieldAddress           = "address"
	FieldPhone             = "phone"
	FieldEmail             = "email"
	FieldOpeningHours      = "opening_hours"
	FieldReservationParams = "reservation_params"
	FieldActive            = "active"

	// DaysPerWeek is the fixed length of every weekly schedule, Monday first.
	DaysPerWeek = 7
)

// TimeWindow is a single open interval within a day, "HH:MM" strings.
type TimeWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// DayHours describes one weekday. A closed day ignores its windows. Split
// shifts (lunch + dinner) are expressed as multiple windows.
type DayHours struct {
	IsClosed bool         `json:"is_closed"`
	Hours    []TimeWindow `json:"hours"`
}

// WeekSchedule is a full week of day schedules, index 0 = Monday.
type WeekSchedule [DaysPerWeek]DayHours

func (w WeekSchedule) Value() (driver.Value, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal week schedule: %w", err)
	}

	return data, nil
}

func (w *WeekSchedule) Scan(src any) error {
	switch data := src.(type) {
	case []byte:
		if err := json.Unmarshal(data, w); err != nil {
			return fmt.Errorf("failed to unmarshal week schedule: %w", err)
		}

		return nil
	case string:
		if err := json.Unmarshal([]byte(data), w); err != nil {
			return fmt.Errorf("failed to unmarshal week schedule: %w", err)
		}

		return nil
	case nil:
		*w = WeekSchedule{}

		return nil
	default:
		return fmt.Errorf("unsupported week schedule source type %T", src)
	}
}

// ReservationParams configures slot generation for a restaurant. When
// SameHoursAsRestaurant is set the general opening hours are used instead of
// the dedicated reservation schedule.
type ReservationParams struct {
	SameHoursAsRestaurant bool         `json:"same_hours_as_restaurant"`
	ReservationHours      WeekSchedule `json:"reservation_hours"`
	Interval              int          `json:"interval"`
}

func (p ReservationParams) Value() (driver.Value, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reservation params: %w", err)
	}

	return data, nil
}

func (p *ReservationParams) Scan(src any) error {
	switch data := src.(type) {
	case []byte:
		if err := json.Unmarshal(data, p); err != nil {
			return fmt.Errorf("failed to unmarshal reservation params: %w", err)
		}

		return nil
	case string:
		if err := json.Unmarshal([]byte(data), p); err != nil {
			return fmt.Errorf("failed to unmarshal reservation params: %w", err)
		}

		return nil
	case nil:
		*p = ReservationParams{}

		return nil
	default:
		return fmt.Errorf("unsupported reservation params source type %T", src)
	}
}

type Restaurant struct {
	ID                string            `db:"id"`
	OwnerID           string            `db:"owner_id"`
	Name              string            `db:"name"`
	Address           string            `db:"address"`
	Phone             string            `db:"phone"`
	Email             string            `db:"email"`
	OpeningHours      WeekSchedule      `db:"opening_hours"`
	ReservationParams ReservationParams `db:"reservation_params"`
	Active            bool              `db:"active"`
	model.Metadata
}
