package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/oilchange/model"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateOilChangeRequest struct {
	Fryer       string `json:"fryer"        validate:"required,max=100"`
	OilType     string `json:"oil_type"     validate:"omitempty,max=100"`
	ChangedAt   string `json:"changed_at"   validate:"omitempty,datetime=2006-01-02"`
	PerformedBy string `json:"performed_by" validate:"omitempty,max=100"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
}

func (c *CreateOilChangeRequest) ToModel(restaurantID, user string) model.OilChange {
	changedAt := timezone.Now()
	if c.ChangedAt != "" {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, c.ChangedAt); err == nil {
			changedAt = parsed
		}
	}

	return model.OilChange{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Fryer:        c.Fryer,
		OilType:      c.OilType,
		ChangedAt:    changedAt,
		PerformedBy:  c.PerformedBy,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOilChangeRequest struct {
	Fryer       string `db:"fryer"        json:"fryer"        validate:"omitempty,max=100"`
	OilType     string `db:"oil_type"     json:"oil_type"     validate:"omitempty,max=100"`
	PerformedBy string `db:"performed_by" json:"performed_by" validate:"omitempty,max=100"`
	Notes       string `db:"notes"        json:"notes"        validate:"omitempty,max=500"`
}

type OilChangeResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Fryer        string `json:"fryer"`
	OilType      string `json:"oil_type,omitempty"`
	ChangedAt    string `json:"changed_at"`
	PerformedBy  string `json:"performed_by,omitempty"`
	Notes        string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *OilChangeResponse) FromModel(mod model.OilChange) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.Fryer = mod.Fryer
	r.OilType = mod.OilType
	r.ChangedAt = mod.ChangedAt.Format(constant.DateOnlyFormat)
	r.PerformedBy = mod.PerformedBy
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GetOilChangesResponse struct {
	Items []OilChangeResponse `json:"items"`
	Meta  gDto.ListMeta       `json:"meta"`
}

func (r *GetOilChangesResponse) FromModels(models []model.OilChange, params gDto.QueryParams, total int) {
	r.Items = make([]OilChangeResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}

type FryersResponse struct {
	Fryers []string `json:"fryers"`
}
