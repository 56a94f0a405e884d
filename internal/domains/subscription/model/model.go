package model

import (
	"time"

	"mesa/shared/model"
)

const (
	TableName  = "subscriptions"
	EntityName = "subscription"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldAmountCents  = "amount_cents"
	FieldCurrency     = "currency"
	FieldPeriodStart  = "period_start"
	FieldPeriodEnd    = "period_end"
	FieldStatus       = "status"

	StatusDraft = "draft"
	StatusOpen  = "open"
	StatusPaid  = "paid"
	StatusVoid  = "void"
)

type Subscription struct {
	ID           string    `db:"id"`
	RestaurantID string    `db:"restaurant_id"`
	AmountCents  int       `db:"amount_cents"`
	Currency     string    `db:"currency"`
	PeriodStart  time.Time `db:"period_start"`
	PeriodEnd    time.Time `db:"period_end"`
	Status       string    `db:"status"`
	model.Metadata
}
