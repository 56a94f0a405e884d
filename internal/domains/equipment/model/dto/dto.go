package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/equipment/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateEquipmentRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Unit     string `json:"unit"     validate:"omitempty,max=20"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Active   *bool  `json:"active"   validate:"omitempty"`
}

func (c *CreateEquipmentRequest) ToModel(restaurantID, user string) model.Equipment {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Equipment{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         c.Name,
		Unit:         c.Unit,
		Location:     c.Location,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEquipmentRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Unit     string `db:"unit"     json:"unit"     validate:"omitempty,max=20"`
	Location string `db:"location" json:"location" validate:"omitempty,max=100"`
	Active   *bool  `db:"active"   json:"active"   validate:"omitempty"`
}

type EquipmentResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	Location     string `json:"location"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *EquipmentResponse) FromModel(mod model.Equipment) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.Name = mod.Name
	r.Unit = mod.Unit
	r.Location = mod.Location
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetEquipmentsResponse struct {
	Items []EquipmentResponse `json:"items"`
	Meta  gDto.ListMeta       `json:"meta"`
}

func (r *GetEquipmentsResponse) FromModels(models []model.Equipment, params gDto.QueryParams, total int) {
	r.Items = make([]EquipmentResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}
