package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	menuMocks "mesa/internal/domains/menu/mocks"
	"mesa/internal/domains/menu/model"
	"mesa/internal/domains/menu/model/dto"
	"mesa/internal/domains/menu/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/failure"
)

func newService(t *testing.T) (service.Dish, *menuMocks.MockDish, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := menuMocks.NewMockDish(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestDishService_Create(t *testing.T) {
	t.Run("persists the dish for the restaurant", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		req := dto.CreateDishRequest{
			Name:         "Margherita",
			PriceCents:   1250,
			Category:     "pizza",
			DisplayOrder: 3,
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dish model.Dish) error {
				assert.Equal(t, "restaurant-1", dish.RestaurantID)
				assert.Equal(t, "Margherita", dish.Name)
				assert.Equal(t, 1250, dish.PriceCents)
				assert.Equal(t, 3, dish.DisplayOrder)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(context.Background(), req, "restaurant-1")

		assert.NoError(t, err)
		assert.Equal(t, "Margherita", res.Name)
		assert.NotEmpty(t, res.ID)
	})
}

func TestDishService_Reorder(t *testing.T) {
	t.Run("rewrites positions from the id list", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		ids := []string{"dish-b", "dish-a", "dish-c"}

		mockRepo.EXPECT().
			Reorder(gomock.Any(), "restaurant-1", gomock.Any(), ids).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Reorder(context.Background(), dto.ReorderDishesRequest{IDs: ids}, "restaurant-1")

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Reorder(gomock.Any(), "restaurant-1", gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Reorder(context.Background(), dto.ReorderDishesRequest{IDs: []string{"dish-a"}}, "restaurant-1")

		assert.Error(t, err)
	})
}

func TestDishService_Get(t *testing.T) {
	t.Run("dish of another restaurant is not visible", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Dish{}, nil)

		_, err := svc.Get(context.Background(), "restaurant-1", "dish-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
