package model

import (
	"mesa/shared/model"
)

const (
	TableName  = "dishes"
	EntityName = "dish"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPriceCents   = "price_cents"
	FieldCategory     = "category"
	FieldDisplayOrder = "display_order"
)

type Dish struct {
	ID           string `db:"id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	PriceCents   int    `db:"price_cents"`
	Category     string `db:"category"`
	DisplayOrder int    `db:"display_order"`
	model.Metadata
}
