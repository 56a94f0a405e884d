package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/document/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateDocumentRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	File string `json:"file" validate:"required"`
}

func (c *CreateDocumentRequest) ToModel(restaurantID, contentType, url string, size int64, user string) model.Document {
	return model.Document{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         c.Name,
		ContentType:  contentType,
		URL:          url,
		Size:         size,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DocumentResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	ContentType  string `json:"content_type"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(mod model.Document) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.Name = mod.Name
	r.ContentType = mod.ContentType
	r.URL = mod.URL
	r.Size = mod.Size
	r.Metadata.FromModel(mod.Metadata)
}

type GetDocumentsResponse struct {
	Items []DocumentResponse `json:"items"`
	Meta  gDto.ListMeta      `json:"meta"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, params gDto.QueryParams, total int) {
	r.Items = make([]DocumentResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}
