package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	equipmentModel "mesa/internal/domains/equipment/model"
	equipmentMocks "mesa/internal/domains/equipment/service/mocks"
	templogMocks "mesa/internal/domains/templog/mocks"
	"mesa/internal/domains/templog/model"
	"mesa/internal/domains/templog/model/dto"
	"mesa/internal/domains/templog/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/constant"
	"mesa/shared/failure"
)

const (
	restaurantID = "restaurant-1"
	deviceID     = "7f8d3a84-7e2a-4a0f-9a53-9a4f2c5d8e11"
)

func newService(t *testing.T) (service.TemperatureLog, *templogMocks.MockTemperatureLog, *equipmentMocks.MockEquipment, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := templogMocks.NewMockTemperatureLog(ctrl)
	mockEquipments := equipmentMocks.NewMockEquipment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEquipments, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockEquipments, mockCache
}

func testCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	return context.WithValue(ctx, constant.ContextKeyUserEmail, "chef@example.com")
}

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func TestTemperatureLogService_Create(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		_, err := svc.Create(testCtx(), "sauna", dto.CreateTemperatureLogRequest{Name: "x", Value: floatPtr(4)}, restaurantID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("fridge log records the author snapshot", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.TemperatureLog) error {
				assert.Equal(t, model.KindFridge, entry.Kind)
				assert.Equal(t, "chef@example.com", entry.RecordedBy)
				assert.Equal(t, 4.5, entry.Value)
				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(testCtx(), model.KindFridge, dto.CreateTemperatureLogRequest{
			Name:  "Walk-in fridge",
			Value: floatPtr(4.5),
		}, restaurantID)

		assert.NoError(t, err)
		assert.Equal(t, model.KindFridge, res.Kind)
		assert.Equal(t, "chef@example.com", res.RecordedBy)
	})

	t.Run("preheat without device is rejected", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		_, err := svc.Create(testCtx(), model.KindPreheat, dto.CreateTemperatureLogRequest{
			Name:  "Oven start",
			Value: floatPtr(180),
		}, restaurantID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("preheat copies the device snapshot", func(t *testing.T) {
		svc, mockRepo, mockEquipments, mockCache := newService(t)

		mockEquipments.EXPECT().
			GetModel(gomock.Any(), restaurantID, deviceID).
			Return(equipmentModel.Equipment{
				ID:       deviceID,
				Name:     "Oven 1",
				Unit:     "°C",
				Location: "Kitchen",
			}, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.TemperatureLog) error {
				assert.Equal(t, "Oven 1", entry.DeviceName)
				assert.Equal(t, "°C", entry.DeviceUnit)
				assert.Equal(t, "Kitchen", entry.DeviceLocation)
				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(testCtx(), model.KindPreheat, dto.CreateTemperatureLogRequest{
			Name:     "Oven start",
			Value:    floatPtr(180),
			DeviceID: deviceID,
		}, restaurantID)

		assert.NoError(t, err)
		assert.Equal(t, "Oven 1", res.DeviceName)
	})

	t.Run("missing device", func(t *testing.T) {
		svc, _, mockEquipments, _ := newService(t)

		mockEquipments.EXPECT().
			GetModel(gomock.Any(), restaurantID, deviceID).
			Return(equipmentModel.Equipment{}, failure.NotFound("equipment not found"))

		_, err := svc.Create(testCtx(), model.KindPostheat, dto.CreateTemperatureLogRequest{
			Name:     "Oven end",
			Value:    floatPtr(90),
			DeviceID: deviceID,
		}, restaurantID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTemperatureLogService_Update(t *testing.T) {
	stored := model.TemperatureLog{
		ID:           "log-1",
		RestaurantID: restaurantID,
		Kind:         model.KindFridge,
		Name:         "Walk-in fridge",
		Value:        4.5,
		Notes:        "morning round",
	}

	t.Run("identical payload performs no write", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		res, err := svc.Update(testCtx(), model.KindFridge, dto.UpdateTemperatureLogRequest{
			Name:  "Walk-in fridge",
			Value: floatPtr(4.5),
			Notes: stringPtr("morning round"),
		}, restaurantID, stored.ID)

		assert.NoError(t, err)
		assert.Equal(t, stored.Name, res.Name)
	})

	t.Run("changed value is written", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, changes map[string]any, _ any) error {
				assert.Contains(t, changes, model.FieldValue)
				assert.Contains(t, changes, constant.FieldModifiedAt)
				assert.NotContains(t, changes, model.FieldName)
				return nil
			})

		updated := stored
		updated.Value = 6
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(updated, nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Update(testCtx(), model.KindFridge, dto.UpdateTemperatureLogRequest{
			Name:  "Walk-in fridge",
			Value: floatPtr(6),
		}, restaurantID, stored.ID)

		assert.NoError(t, err)
		assert.Equal(t, float64(6), res.Value)
	})

	t.Run("device change refreshes the snapshot", func(t *testing.T) {
		svc, mockRepo, mockEquipments, mockCache := newService(t)

		preheat := stored
		preheat.Kind = model.KindPreheat
		preheat.DeviceID = "9e6f1b52-3c4d-4e5f-8a7b-1c2d3e4f5a6b"

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(preheat, nil)

		mockEquipments.EXPECT().
			GetModel(gomock.Any(), restaurantID, deviceID).
			Return(equipmentModel.Equipment{ID: deviceID, Name: "Oven 2", Unit: "°C", Location: "Back kitchen"}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, changes map[string]any, _ any) error {
				assert.Equal(t, "Oven 2", changes[model.FieldDeviceName])
				assert.Equal(t, "Back kitchen", changes[model.FieldDeviceLocation])
				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(preheat, nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Update(testCtx(), model.KindPreheat, dto.UpdateTemperatureLogRequest{
			DeviceID: deviceID,
		}, restaurantID, preheat.ID)

		assert.NoError(t, err)
	})
}

func TestTemperatureLogService_Delete(t *testing.T) {
	t.Run("missing row is a 404", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.TemperatureLog{}, nil)

		err := svc.Delete(testCtx(), model.KindService, restaurantID, "gone")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("existing row is removed", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.TemperatureLog{ID: "log-1", Kind: model.KindService}, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(testCtx(), model.KindService, restaurantID, "log-1")

		assert.NoError(t, err)
	})
}
