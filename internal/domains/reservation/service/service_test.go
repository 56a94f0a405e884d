package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	reservationMocks "mesa/internal/domains/reservation/mocks"
	"mesa/internal/domains/reservation/model"
	"mesa/internal/domains/reservation/model/dto"
	"mesa/internal/domains/reservation/service"
	restaurantModel "mesa/internal/domains/restaurant/model"
	restaurantMocks "mesa/internal/domains/restaurant/service/mocks"
	"mesa/internal/events"
	eventMocks "mesa/internal/events/mocks"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/timezone"
)

func openAllWeek() restaurantModel.Restaurant {
	var week restaurantModel.WeekSchedule
	for i := range week {
		week[i] = restaurantModel.DayHours{
			Hours: []restaurantModel.TimeWindow{{Open: "09:00", Close: "17:00"}},
		}
	}

	return restaurantModel.Restaurant{
		ID:           "restaurant-1",
		OpeningHours: week,
		ReservationParams: restaurantModel.ReservationParams{
			SameHoursAsRestaurant: true,
			Interval:              30,
		},
	}
}

func reservationAt(name, status string, at time.Time) model.Reservation {
	return model.Reservation{
		ID:              "res-" + name,
		RestaurantID:    "restaurant-1",
		ReservationDate: time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, timezone.GetLocation()),
		ReservationTime: at.Format(constant.TimeOnlyFormat),
		CustomerName:    name,
		Status:          status,
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRestaurants := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRestaurants, cfg, mockCache, mockOtel, mockPublisher)

	tests := []struct {
		name       string
		req        dto.CreateReservationRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name: "successful creation defaults to confirmed",
			req: dto.CreateReservationRequest{
				ReservationDate: "2026-09-07",
				ReservationTime: "10:30",
				NumberOfGuests:  2,
				CustomerName:    "Alice",
			},
			setupMock: func() {
				mockRestaurants.EXPECT().
					GetModel(gomock.Any(), "restaurant-1").
					Return(openAllWeek(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					PublishReservationEvent(gomock.Any(), "reservation.created", gomock.Any(), "restaurant-1", model.StatusConfirmed)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "time outside opening hours is rejected",
			req: dto.CreateReservationRequest{
				ReservationDate: "2026-09-07",
				ReservationTime: "18:00",
				NumberOfGuests:  2,
				CustomerName:    "Alice",
			},
			setupMock: func() {
				mockRestaurants.EXPECT().
					GetModel(gomock.Any(), "restaurant-1").
					Return(openAllWeek(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "time off the interval grid is rejected",
			req: dto.CreateReservationRequest{
				ReservationDate: "2026-09-07",
				ReservationTime: "10:15",
				NumberOfGuests:  2,
				CustomerName:    "Alice",
			},
			setupMock: func() {
				mockRestaurants.EXPECT().
					GetModel(gomock.Any(), "restaurant-1").
					Return(openAllWeek(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateReservationRequest{
				ReservationDate: "2026-09-07",
				ReservationTime: "10:30",
				NumberOfGuests:  2,
				CustomerName:    "Alice",
			},
			setupMock: func() {
				mockRestaurants.EXPECT().
					GetModel(gomock.Any(), "restaurant-1").
					Return(openAllWeek(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req, "restaurant-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.Equal(t, "restaurant-1", res.RestaurantID)
			}
		})
	}
}

func TestReservationService_Transition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRestaurants := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRestaurants, cfg, mockCache, mockOtel, mockPublisher)

	tests := []struct {
		name       string
		action     string
		current    string
		wantStatus string
		wantErr    bool
		wantCode   int
	}{
		{name: "confirm pending", action: model.ActionConfirm, current: model.StatusPending, wantStatus: model.StatusConfirmed},
		{name: "activate confirmed", action: model.ActionActivate, current: model.StatusConfirmed, wantStatus: model.StatusActive},
		{name: "activate late", action: model.ActionActivate, current: model.StatusLate, wantStatus: model.StatusActive},
		{name: "finish active", action: model.ActionFinish, current: model.StatusActive, wantStatus: model.StatusFinished},
		{name: "confirm already confirmed", action: model.ActionConfirm, current: model.StatusConfirmed, wantErr: true, wantCode: http.StatusConflict},
		{name: "finish pending", action: model.ActionFinish, current: model.StatusPending, wantErr: true, wantCode: http.StatusConflict},
		{name: "activate finished", action: model.ActionActivate, current: model.StatusFinished, wantErr: true, wantCode: http.StatusConflict},
		{name: "unknown action", action: "reopen", current: model.StatusPending, wantErr: true, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := reservationAt("Alice", tt.current, timezone.Now())

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(current, nil)

			if !tt.wantErr {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					PublishReservationEvent(gomock.Any(), gomock.Any(), current.ID, "restaurant-1", tt.wantStatus)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Transition(ctx, "restaurant-1", current.ID, tt.action)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

func TestReservationService_TransitionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRestaurants := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRestaurants, cfg, mockCache, mockOtel, mockPublisher)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Reservation{}, nil)

	_, err := svc.Transition(context.Background(), "restaurant-1", "missing-id", model.ActionConfirm)

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestReservationService_Buckets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRestaurants := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRestaurants, cfg, mockCache, mockOtel, mockPublisher)

	now := timezone.Now()

	t.Run("pending is sorted by proximity to now", func(t *testing.T) {
		models := []model.Reservation{
			reservationAt("Far", model.StatusPending, now.Add(-2*time.Hour)),
			reservationAt("Past", model.StatusPending, now.Add(-10*time.Minute)),
			reservationAt("Soon", model.StatusPending, now.Add(5*time.Minute)),
			reservationAt("Running", model.StatusActive, now.Add(-30*time.Minute)),
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models, nil)

		res, err := svc.Buckets(context.Background(), "restaurant-1", "")

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Pending.Count)
		assert.Equal(t, "Soon", res.Pending.Items[0].CustomerName)
		assert.Equal(t, "Past", res.Pending.Items[1].CustomerName)
		assert.Equal(t, "Far", res.Pending.Items[2].CustomerName)
		assert.Equal(t, 1, res.Active.Count)
		assert.Equal(t, 0, res.Finished.Count)
	})

	t.Run("name filter is case sensitive", func(t *testing.T) {
		models := []model.Reservation{
			reservationAt("Alice", model.StatusPending, now.Add(time.Hour)),
			reservationAt("alice cooper", model.StatusPending, now.Add(2*time.Hour)),
			reservationAt("Bob", model.StatusConfirmed, now.Add(time.Hour)),
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models, nil)

		res, err := svc.Buckets(context.Background(), "restaurant-1", "Ali")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Pending.Count)
		assert.Equal(t, "Alice", res.Pending.Items[0].CustomerName)
		assert.Equal(t, 0, res.Confirmed.Count)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Buckets(context.Background(), "restaurant-1", "")

		assert.Error(t, err)
	})
}

func TestResolveTransition(t *testing.T) {
	tests := []struct {
		action  string
		current string
		want    string
		ok      bool
	}{
		{model.ActionConfirm, model.StatusPending, model.StatusConfirmed, true},
		{model.ActionActivate, model.StatusConfirmed, model.StatusActive, true},
		{model.ActionActivate, model.StatusLate, model.StatusActive, true},
		{model.ActionFinish, model.StatusActive, model.StatusFinished, true},
		{model.ActionConfirm, model.StatusActive, "", false},
		{model.ActionFinish, model.StatusFinished, "", false},
		{"unknown", model.StatusPending, "", false},
	}

	for _, tt := range tests {
		got, ok := model.ResolveTransition(tt.action, tt.current)

		assert.Equal(t, tt.ok, ok, "%s from %s", tt.action, tt.current)
		assert.Equal(t, tt.want, got, "%s from %s", tt.action, tt.current)
	}
}

func TestActionForTarget(t *testing.T) {
	tests := []struct {
		target string
		want   string
		ok     bool
	}{
		{model.StatusConfirmed, model.ActionConfirm, true},
		{model.StatusActive, model.ActionActivate, true},
		{model.StatusFinished, model.ActionFinish, true},
		{model.StatusPending, "", false},
		{model.StatusLate, "", false},
		{"Unknown", "", false},
	}

	for _, tt := range tests {
		got, ok := model.ActionForTarget(tt.target)

		assert.Equal(t, tt.ok, ok, "target %s", tt.target)
		assert.Equal(t, tt.want, got, "target %s", tt.target)
	}
}

func TestReservationService_MarkOverdueLate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRestaurants := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Reservation.LateGraceMinutes = 15

	svc := service.New(mockRepo, mockRestaurants, cfg, mockCache, mockOtel, mockPublisher)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := timezone.Now()
	overdue := reservationAt("Overdue", model.StatusConfirmed, now.Add(-30*time.Minute))
	withinGrace := reservationAt("Grace", model.StatusConfirmed, now.Add(-5*time.Minute))
	upcoming := reservationAt("Upcoming", model.StatusConfirmed, now.Add(time.Hour))

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Reservation{overdue, withinGrace, upcoming}, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusLate, fields[model.FieldStatus])

			return nil
		})

	mockPublisher.EXPECT().
		PublishReservationEvent(gomock.Any(), events.TypeReservationLate, overdue.ID, overdue.RestaurantID, model.StatusLate)

	marked, err := svc.MarkOverdueLate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, marked)
}
