package model

import (
	gModel "mesa/shared/model"
)

const (
	TableName  = "documents"
	EntityName = "document"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldName         = "name"
	FieldContentType  = "content_type"
	FieldURL          = "url"
	FieldSize         = "size"
)

type Document struct {
	ID           string `db:"id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	ContentType  string `db:"content_type"`
	URL          string `db:"url"`
	Size         int64  `db:"size"`
	gModel.Metadata
}
