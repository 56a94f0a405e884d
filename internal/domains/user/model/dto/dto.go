package dto

import (
	"time"

	"github.com/google/uuid"

	"mesa/internal/domains/user/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateUserRequest struct {
	Email        string  `json:"email"         validate:"required,email,max=100"`
	Password     string  `json:"password"      validate:"required,min=8"`
	Role         string  `json:"role"          validate:"required,oneof=owner employee admin"`
	FullName     *string `json:"full_name"     validate:"omitempty,max=100"`
	Phone        *string `json:"phone"         validate:"omitempty,max=20"`
	RestaurantID *string `json:"restaurant_id" validate:"omitempty,uuid"`
}

func (c *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	return model.User{
		ID:           uuid.NewString(),
		Email:        c.Email,
		Password:     hashedPassword,
		Role:         c.Role,
		FullName:     c.FullName,
		Phone:        c.Phone,
		RestaurantID: c.RestaurantID,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	FullName     *string `db:"full_name"     json:"full_name"     validate:"omitempty,max=100"`
	Phone        *string `db:"phone"         json:"phone"         validate:"omitempty,max=20"`
	RestaurantID *string `db:"restaurant_id" json:"restaurant_id" validate:"omitempty,uuid"`
	Active       *bool   `db:"active"        json:"active"        validate:"omitempty"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	RestaurantID *string `json:"restaurant_id,omitempty"`
	LastLogin    *string `json:"last_login,omitempty"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Role = mod.Role
	r.FullName = mod.FullName
	r.Phone = mod.Phone
	r.RestaurantID = mod.RestaurantID
	r.Active = mod.Active

	if mod.LastLogin != nil {
		formatted := timezone.Format(*mod.LastLogin, time.RFC3339)
		r.LastLogin = &formatted
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Items []UserResponse `json:"items"`
	Meta  gDto.ListMeta  `json:"meta"`
}

func (r *GetUsersResponse) FromModels(models []model.User, params gDto.QueryParams, total int) {
	r.Items = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}
