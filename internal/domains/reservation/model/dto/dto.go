package dto

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"mesa/internal/domains/reservation/model"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateReservationRequest struct {
	ReservationDate string `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	ReservationTime string `json:"reservation_time" validate:"required,datetime=15:04"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"required,min=1"`
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerEmail   string `json:"customer_email"   validate:"omitempty,email,max=100"`
	CustomerPhone   string `json:"customer_phone"   validate:"omitempty,max=20"`
	Commentary      string `json:"commentary"       validate:"omitempty,max=500"`
	TableName       string `json:"table_name"       validate:"omitempty,max=50"`
	Status          string `json:"status"           validate:"omitempty,oneof=Pending Confirmed"`
}

func (c *CreateReservationRequest) ToModel(restaurantID, user string) (model.Reservation, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, c.ReservationDate)
	if err != nil {
		return model.Reservation{}, err
	}

	// Staff-created reservations are confirmed immediately unless the caller
	// asks for Pending.
	status := model.StatusConfirmed
	if c.Status != "" {
		status = c.Status
	}

	return model.Reservation{
		ID:              uuid.NewString(),
		RestaurantID:    restaurantID,
		ReservationDate: date,
		ReservationTime: c.ReservationTime,
		NumberOfGuests:  c.NumberOfGuests,
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		Commentary:      c.Commentary,
		TableName:       c.TableName,
		Status:          status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateReservationRequest struct {
	ReservationDate string `json:"reservation_date" validate:"omitempty,datetime=2006-01-02"`
	ReservationTime string `db:"reservation_time"  json:"reservation_time" validate:"omitempty,datetime=15:04"`
	NumberOfGuests  *int   `db:"number_of_guests"  json:"number_of_guests" validate:"omitempty,min=1"`
	CustomerName    string `db:"customer_name"     json:"customer_name"    validate:"omitempty,max=100"`
	CustomerEmail   string `db:"customer_email"    json:"customer_email"   validate:"omitempty,email,max=100"`
	CustomerPhone   string `db:"customer_phone"    json:"customer_phone"   validate:"omitempty,max=20"`
	Commentary      string `db:"commentary"        json:"commentary"       validate:"omitempty,max=500"`
	TableName       string `db:"table_name"        json:"table_name"       validate:"omitempty,max=50"`
}

// UpdateReservationStatusRequest carries the target status for a workflow
// transition; the current status decides whether it is reachable.
type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Confirmed Active Finished"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurant_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	NumberOfGuests  int    `json:"number_of_guests"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Commentary      string `json:"commentary"`
	TableName       string `json:"table_name"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.ReservationDate = mod.ReservationDate.Format(constant.DateOnlyFormat)
	r.ReservationTime = mod.ReservationTime
	r.NumberOfGuests = mod.NumberOfGuests
	r.CustomerName = mod.CustomerName
	r.CustomerEmail = mod.CustomerEmail
	r.CustomerPhone = mod.CustomerPhone
	r.Commentary = mod.Commentary
	r.TableName = mod.TableName
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetReservationsResponse struct {
	Items []ReservationResponse `json:"items"`
	Meta  gDto.ListMeta         `json:"meta"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, params gDto.QueryParams, total int) {
	r.Items = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}

// Bucket is one status section of the grouped listing.
type Bucket struct {
	Count int                   `json:"count"`
	Items []ReservationResponse `json:"items"`
}

// BucketsResponse groups reservations per status. Pending and Confirmed are
// sorted by proximity to now; the other buckets keep creation order.
type BucketsResponse struct {
	Pending   Bucket `json:"pending"`
	Confirmed Bucket `json:"confirmed"`
	Active    Bucket `json:"active"`
	Late      Bucket `json:"late"`
	Finished  Bucket `json:"finished"`
}

func (b *BucketsResponse) FromModels(models []model.Reservation, now time.Time) {
	buckets := map[string]*Bucket{
		model.StatusPending:   &b.Pending,
		model.StatusConfirmed: &b.Confirmed,
		model.StatusActive:    &b.Active,
		model.StatusLate:      &b.Late,
		model.StatusFinished:  &b.Finished,
	}

	grouped := map[string][]model.Reservation{}
	for _, mod := range models {
		grouped[mod.Status] = append(grouped[mod.Status], mod)
	}

	for status, group := range grouped {
		bucket, ok := buckets[status]
		if !ok {
			continue
		}

		if status == model.StatusPending || status == model.StatusConfirmed {
			sortByProximity(group, now)
		}

		bucket.Count = len(group)
		bucket.Items = make([]ReservationResponse, len(group))
		for i, mod := range group {
			bucket.Items[i].FromModel(mod)
		}
	}
}

// sortByProximity orders reservations by absolute distance of their start
// instant from now, nearest first, whether past-due or upcoming.
func sortByProximity(group []model.Reservation, now time.Time) {
	absDistance := func(mod model.Reservation) time.Duration {
		distance := mod.DateTime().Sub(now)
		if distance < 0 {
			return -distance
		}

		return distance
	}

	slices.SortStableFunc(group, func(a, b model.Reservation) int {
		return cmp.Compare(absDistance(a), absDistance(b))
	})
}
