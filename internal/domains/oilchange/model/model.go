package model

import (
	"time"

	"mesa/shared/model"
)

const (
	TableName  = "oil_changes"
	EntityName = "oil_change"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldFryer        = "fryer"
	FieldOilType      = "oil_type"
	FieldChangedAt    = "changed_at"
	FieldPerformedBy  = "performed_by"
	FieldNotes        = "notes"
)

type OilChange struct {
	ID           string    `db:"id"`
	RestaurantID string    `db:"restaurant_id"`
	Fryer        string    `db:"fryer"`
	OilType      string    `db:"oil_type"`
	ChangedAt    time.Time `db:"changed_at"`
	PerformedBy  string    `db:"performed_by"`
	Notes        string    `db:"notes"`
	model.Metadata
}
