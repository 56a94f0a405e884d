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
	oilchangeMocks "mesa/internal/domains/oilchange/mocks"
	"mesa/internal/domains/oilchange/model"
	"mesa/internal/domains/oilchange/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/failure"
)

func newService(t *testing.T) (service.OilChange, *oilchangeMocks.MockOilChange, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := oilchangeMocks.NewMockOilChange(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestOilChangeService_Fryers(t *testing.T) {
	t.Run("distinct labels from db", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Distinct(gomock.Any(), model.FieldFryer, gomock.Any()).
			Return([]string{"Fryer 1", "Fryer 2"}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Fryers(context.Background(), "restaurant-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"Fryer 1", "Fryer 2"}, res.Fryers)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Distinct(gomock.Any(), model.FieldFryer, gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Fryers(context.Background(), "restaurant-1")

		assert.Error(t, err)
	})
}

func TestOilChangeService_Delete(t *testing.T) {
	t.Run("second delete is a 404", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.OilChange{}, nil)

		err := svc.Delete(context.Background(), "restaurant-1", "already-gone")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
