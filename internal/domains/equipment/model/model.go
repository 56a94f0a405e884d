package model

import (
	"mesa/shared/model"
)

const (
	TableName  = "cooking_equipments"
	EntityName = "cooking_equipment"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldName         = "name"
	FieldUnit         = "unit"
	FieldLocation     = "location"
	FieldActive       = "active"
)

type Equipment struct {
	ID           string `db:"id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	Unit         string `db:"unit"`
	Location     string `db:"location"`
	Active       bool   `db:"active"`
	model.Metadata
}
