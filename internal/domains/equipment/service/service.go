package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/internal/domains/equipment/model"
	"mesa/internal/domains/equipment/model/dto"
	"mesa/internal/domains/equipment/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
)

const (
	cacheGetEquipment    = "equipment:get"
	cacheGetAllEquipment = "equipment:gets"
	cacheCountEquipment  = "equipment:count"
)

type Equipment interface {
	Create(ctx context.Context, req dto.CreateEquipmentRequest, restaurantID string) (dto.EquipmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEquipmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, restaurantID, id string) (dto.EquipmentResponse, error)
	GetModel(ctx context.Context, restaurantID, id string) (model.Equipment, error)
	Update(ctx context.Context, req dto.UpdateEquipmentRequest, restaurantID, id string) (dto.EquipmentResponse, error)
	Delete(ctx context.Context, restaurantID, id string) error
}

type serviceImpl struct {
	repo  repository.Equipment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Equipment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Equipment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func scopedFilter(restaurantID, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEquipmentRequest, restaurantID string) (res dto.EquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	equipment := req.ToModel(restaurantID, user)

	if err = s.repo.Insert(ctx, equipment); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEquipment)
		shared.InvalidateCaches(c, s.cache, cacheCountEquipment)
	}()

	res.FromModel(equipment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEquipmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEquipment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count equipments")

		return res, fmt.Errorf("failed to count equipments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipments")

		return res, fmt.Errorf("failed to get equipments: %w", err)
	}

	res.FromModels(models, req, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save equipments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEquipment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count equipments")

		return res, fmt.Errorf("failed to count equipments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save equipment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetModel(ctx context.Context, restaurantID, id string) (res model.Equipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, scopedFilter(restaurantID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipment")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, restaurantID, id string) (res dto.EquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEquipment, restaurantID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipment")

		return res, nil
	}

	equipment, err := s.GetModel(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(equipment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save equipment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEquipmentRequest, restaurantID, id string) (res dto.EquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.GetModel(ctx, restaurantID, id); err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, scopedFilter(restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to update equipment")

		return res, fmt.Errorf("failed to update equipment: %w", err)
	}

	updated, err := s.GetModel(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, restaurantID, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, restaurantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.GetModel(ctx, restaurantID, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, scopedFilter(restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete equipment")

		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	s.invalidate(ctx, restaurantID, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, restaurantID, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEquipment, restaurantID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete equipment cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEquipment)
		shared.InvalidateCaches(c, s.cache, cacheCountEquipment)
	}()
}
