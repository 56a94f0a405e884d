package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/menu/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateDishRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	Description  string `json:"description"   validate:"omitempty,max=500"`
	PriceCents   int    `json:"price_cents"   validate:"required,min=0"`
	Category     string `json:"category"      validate:"omitempty,max=50"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=0"`
}

func (c *CreateDishRequest) ToModel(restaurantID, user string) model.Dish {
	return model.Dish{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         c.Name,
		Description:  c.Description,
		PriceCents:   c.PriceCents,
		Category:     c.Category,
		DisplayOrder: c.DisplayOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDishRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Description  string `db:"description"   json:"description"   validate:"omitempty,max=500"`
	PriceCents   *int   `db:"price_cents"   json:"price_cents"   validate:"omitempty,min=0"`
	Category     string `db:"category"      json:"category"      validate:"omitempty,max=50"`
	DisplayOrder *int   `db:"display_order" json:"display_order" validate:"omitempty,min=0"`
}

// ReorderDishesRequest carries the full ordered id list for a restaurant's
// menu; position in the slice becomes the display order.
type ReorderDishesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type DishResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	PriceCents   int    `json:"price_cents"`
	Category     string `json:"category,omitempty"`
	DisplayOrder int    `json:"display_order"`
	gDto.Metadata
}

func (r *DishResponse) FromModel(mod model.Dish) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.Name = mod.Name
	r.Description = mod.Description
	r.PriceCents = mod.PriceCents
	r.Category = mod.Category
	r.DisplayOrder = mod.DisplayOrder
	r.Metadata.FromModel(mod.Metadata)
}

type GetDishesResponse struct {
	Items []DishResponse `json:"items"`
	Meta  gDto.ListMeta  `json:"meta"`
}

func (r *GetDishesResponse) FromModels(models []model.Dish, params gDto.QueryParams, total int) {
	r.Items = make([]DishResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}
