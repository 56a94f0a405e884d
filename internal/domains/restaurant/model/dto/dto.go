package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/restaurant/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateRestaurantRequest struct {
	OwnerID string `json:"owner_id" validate:"required"`
	Name    string `json:"name"     validate:"required,max=100"`
	Address string `json:"address"  validate:"omitempty,max=200"`
	Phone   string `json:"phone"    validate:"omitempty,max=20"`
	Email   string `json:"email"    validate:"omitempty,email,max=100"`
}

func (c *CreateRestaurantRequest) ToModel(user string) model.Restaurant {
	return model.Restaurant{
		ID:      uuid.NewString(),
		OwnerID: c.OwnerID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		ReservationParams: model.ReservationParams{
			Interval: 30,
		},
		Active: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRestaurantRequest struct {
	Name              string                   `db:"name"               json:"name"               validate:"omitempty,max=100"`
	Address           string                   `db:"address"            json:"address"            validate:"omitempty,max=200"`
	Phone             string                   `db:"phone"              json:"phone"              validate:"omitempty,max=20"`
	Email             string                   `db:"email"              json:"email"              validate:"omitempty,email,max=100"`
	OpeningHours      *model.WeekSchedule      `db:"opening_hours"      json:"opening_hours"      validate:"omitempty"`
	ReservationParams *model.ReservationParams `db:"reservation_params" json:"reservation_params" validate:"omitempty"`
	Active            *bool                    `db:"active"             json:"active"             validate:"omitempty"`
}

type RestaurantResponse struct {
	ID                string                  `json:"id"`
	OwnerID           string                  `json:"owner_id"`
	Name              string                  `json:"name"`
	Address           string                  `json:"address"`
	Phone             string                  `json:"phone"`
	Email             string                  `json:"email"`
	OpeningHours      model.WeekSchedule      `json:"opening_hours"`
	ReservationParams model.ReservationParams `json:"reservation_params"`
	Active            bool                    `json:"active"`
	gDto.Metadata
}

func (r *RestaurantResponse) FromModel(mod model.Restaurant) {
	r.ID = mod.ID
	r.OwnerID = mod.OwnerID
	r.Name = mod.Name
	r.Address = mod.Address
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.OpeningHours = mod.OpeningHours
	r.ReservationParams = mod.ReservationParams
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetRestaurantsResponse struct {
	Items []RestaurantResponse `json:"items"`
	Meta  gDto.ListMeta        `json:"meta"`
}

func (r *GetRestaurantsResponse) FromModels(models []model.Restaurant, params gDto.QueryParams, total int) {
	r.Items = make([]RestaurantResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}

// AvailabilityResponse lists the bookable slots for one calendar date.
type AvailabilityResponse struct {
	Date   string   `json:"date"`
	Closed bool     `json:"closed"`
	Times  []string `json:"times"`
}
