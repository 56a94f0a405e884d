package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/subscription/model"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateSubscriptionRequest struct {
	AmountCents int    `json:"amount_cents" validate:"required,min=0"`
	Currency    string `json:"currency"     validate:"required,len=3"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end"   validate:"required,datetime=2006-01-02"`
	Status      string `json:"status"       validate:"omitempty,oneof=draft open paid void"`
}

func (c *CreateSubscriptionRequest) ToModel(restaurantID, user string) (model.Subscription, error) {
	start, err := timezone.Parse(constant.DateOnlyFormat, c.PeriodStart)
	if err != nil {
		return model.Subscription{}, err
	}

	end, err := timezone.Parse(constant.DateOnlyFormat, c.PeriodEnd)
	if err != nil {
		return model.Subscription{}, err
	}

	status := model.StatusDraft
	if c.Status != "" {
		status = c.Status
	}

	return model.Subscription{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		AmountCents:  c.AmountCents,
		Currency:     c.Currency,
		PeriodStart:  start,
		PeriodEnd:    end,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateSubscriptionRequest struct {
	AmountCents *int   `db:"amount_cents" json:"amount_cents" validate:"omitempty,min=0"`
	Currency    string `db:"currency"     json:"currency"     validate:"omitempty,len=3"`
	Status      string `db:"status"       json:"status"       validate:"omitempty,oneof=draft open paid void"`
}

type SubscriptionResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	AmountCents  int    `json:"amount_cents"`
	Currency     string `json:"currency"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *SubscriptionResponse) FromModel(mod model.Subscription) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.AmountCents = mod.AmountCents
	r.Currency = mod.Currency
	r.PeriodStart = mod.PeriodStart.Format(constant.DateOnlyFormat)
	r.PeriodEnd = mod.PeriodEnd.Format(constant.DateOnlyFormat)
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetSubscriptionsResponse struct {
	Items []SubscriptionResponse `json:"items"`
	Meta  gDto.ListMeta          `json:"meta"`
}

func (r *GetSubscriptionsResponse) FromModels(models []model.Subscription, params gDto.QueryParams, total int) {
	r.Items = make([]SubscriptionResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}
