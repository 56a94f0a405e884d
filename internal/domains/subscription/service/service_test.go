package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	subscriptionMocks "mesa/internal/domains/subscription/mocks"
	"mesa/internal/domains/subscription/model"
	"mesa/internal/domains/subscription/model/dto"
	"mesa/internal/domains/subscription/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/failure"
)

func newSubscriptionService(t *testing.T) (service.Subscription, *subscriptionMocks.MockSubscription, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := subscriptionMocks.NewMockSubscription(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, cache, mockOtel), repo, cache
}

func TestSubscriptionService_Create(t *testing.T) {
	t.Parallel()

	req := dto.CreateSubscriptionRequest{
		AmountCents: 4900,
		Currency:    "EUR",
		PeriodStart: "2026-09-01",
		PeriodEnd:   "2026-09-30",
	}

	t.Run("defaults to draft status", func(t *testing.T) {
		t.Parallel()

		svc, repo, _ := newSubscriptionService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub model.Subscription) error {
				assert.Equal(t, model.StatusDraft, sub.Status)
				assert.Equal(t, "restaurant-1", sub.RestaurantID)

				return nil
			})

		res, err := svc.Create(context.Background(), req, "restaurant-1")

		require.NoError(t, err)
		assert.Equal(t, 4900, res.AmountCents)
		assert.Equal(t, "2026-09-01", res.PeriodStart)
	})

	t.Run("rejects inverted period", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newSubscriptionService(t)

		inverted := req
		inverted.PeriodStart = "2026-09-30"
		inverted.PeriodEnd = "2026-09-01"

		_, err := svc.Create(context.Background(), inverted, "restaurant-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects malformed period date", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newSubscriptionService(t)

		malformed := req
		malformed.PeriodEnd = "September 30"

		_, err := svc.Create(context.Background(), malformed, "restaurant-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestSubscriptionService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("missing subscription", func(t *testing.T) {
		t.Parallel()

		svc, repo, cache := newSubscriptionService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Subscription{}, nil)

		err := svc.Delete(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, repo, cache := newSubscriptionService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Subscription{ID: "sub-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "sub-1")

		require.NoError(t, err)
	})
}
