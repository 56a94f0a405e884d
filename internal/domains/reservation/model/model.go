package model

import (
	"time"

	"mesa/shared/constant"
	"mesa/shared/model"
	"mesa/shared/timezone"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldRestaurantID    = "restaurant_id"
	FieldReservationDate = "reservation_date"
	FieldReservationTime = "reservation_time"
	FieldNumberOfGuests  = "number_of_guests"
	FieldCustomerName    = "customer_name"
	FieldCustomerEmail   = "customer_email"
	FieldCustomerPhone   = "customer_phone"
	FieldCommentary      = "commentary"
	FieldTableName       = "table_name"
	FieldStatus          = "status"

	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusActive    = "Active"
	StatusLate      = "Late"
	StatusFinished  = "Finished"

	ActionConfirm  = "confirm"
	ActionActivate = "activate"
	ActionFinish   = "finish"
)

// transitions maps each action to its target status and the statuses it may
// be applied from.
var transitions = map[string]struct {
	Target  string
	Allowed []string
}{
	ActionConfirm:  {Target: StatusConfirmed, Allowed: []string{StatusPending}},
	ActionActivate: {Target: StatusActive, Allowed: []string{StatusConfirmed, StatusLate}},
	ActionFinish:   {Target: StatusFinished, Allowed: []string{StatusActive}},
}

// ActionForTarget maps a requested target status to the workflow action that
// produces it. Pending has no action; it is only ever an initial status.
func ActionForTarget(status string) (string, bool) {
	for action, transition := range transitions {
		if transition.Target == status {
			return action, true
		}
	}

	return "", false
}

// ResolveTransition returns the target status for applying an action to the
// current status. The second result is false when the action does not exist
// or the current status does not permit it.
func ResolveTransition(action, current string) (string, bool) {
	transition, ok := transitions[action]
	if !ok {
		return "", false
	}

	for _, allowed := range transition.Allowed {
		if allowed == current {
			return transition.Target, true
		}
	}

	return "", false
}

type Reservation struct {
	ID              string    `db:"id"`
	RestaurantID    string    `db:"restaurant_id"`
	ReservationDate time.Time `db:"reservation_date"`
	ReservationTime string    `db:"reservation_time"`
	NumberOfGuests  int       `db:"number_of_guests"`
	CustomerName    string    `db:"customer_name"`
	CustomerEmail   string    `db:"customer_email"`
	CustomerPhone   string    `db:"customer_phone"`
	Commentary      string    `db:"commentary"`
	TableName       string    `db:"table_name"`
	Status          string    `db:"status"`
	model.Metadata
}

// DateTime combines the reservation date and "HH:MM" time into a single
// instant in the application timezone.
func (r Reservation) DateTime() time.Time {
	parsed, err := time.Parse(constant.TimeOnlyFormat, r.ReservationTime)
	if err != nil {
		return r.ReservationDate
	}

	return time.Date(
		r.ReservationDate.Year(), r.ReservationDate.Month(), r.ReservationDate.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		timezone.GetLocation(),
	)
}
