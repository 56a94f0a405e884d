package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/internal/domains/menu/model"
	"mesa/internal/domains/menu/model/dto"
	"mesa/internal/domains/menu/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
)

const (
	cacheGetDish    = "dish:get"
	cacheGetAllDish = "dish:gets"
	cacheCountDish  = "dish:count"
)

type Dish interface {
	Create(ctx context.Context, req dto.CreateDishRequest, restaurantID string) (dto.DishResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDishesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, restaurantID, id string) (dto.DishResponse, error)
	Update(ctx context.Context, req dto.UpdateDishRequest, restaurantID, id string) (dto.DishResponse, error)
	Delete(ctx context.Context, restaurantID, id string) error
	Reorder(ctx context.Context, req dto.ReorderDishesRequest, restaurantID string) error
}

type serviceImpl struct {
	repo  repository.Dish
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dish, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dish {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDishRequest, restaurantID string) (res dto.DishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	dish := req.ToModel(restaurantID, user)

	if err = s.repo.Insert(ctx, dish); err != nil {
		return res, err
	}

	s.invalidateLists(ctx)

	res.FromModel(dish)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDishesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDish, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dishes")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count dishes")

		return res, fmt.Errorf("failed to count dishes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dishes")

		return res, fmt.Errorf("failed to get dishes: %w", err)
	}

	res.FromModels(models, req, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dishes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDish, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count dishes")

		return res, fmt.Errorf("failed to count dishes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dish count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getScoped(ctx context.Context, restaurantID, id string) (model.Dish, error) {
	dish, err := s.repo.Get(ctx, scopedFilter(restaurantID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get dish")

		return dish, fmt.Errorf("failed to get dish: %w", err)
	}

	if dish.ID == constant.Empty {
		return dish, failure.NotFound("dish not found") // nolint:wrapcheck
	}

	return dish, nil
}

func (s *serviceImpl) Get(ctx context.Context, restaurantID, id string) (res dto.DishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDish, restaurantID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	dish, err := s.getScoped(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(dish)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dish to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDishRequest, restaurantID, id string) (res dto.DishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getScoped(ctx, restaurantID, id); err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, scopedFilter(restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to update dish")

		return res, fmt.Errorf("failed to update dish: %w", err)
	}

	updated, err := s.getScoped(ctx, restaurantID, id)
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

	if _, err = s.getScoped(ctx, restaurantID, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, scopedFilter(restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete dish")

		return fmt.Errorf("failed to delete dish: %w", err)
	}

	s.invalidate(ctx, restaurantID, id)

	return nil
}

func (s *serviceImpl) Reorder(ctx context.Context, req dto.ReorderDishesRequest, restaurantID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reorder")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Reorder(ctx, restaurantID, user, req.IDs); err != nil {
		log.Error().Err(err).Msg("failed to reorder dishes")

		return fmt.Errorf("failed to reorder dishes: %w", err)
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDish)
		shared.InvalidateCaches(c, s.cache, cacheCountDish)
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, restaurantID, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDish, restaurantID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete dish cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDish)
		shared.InvalidateCaches(c, s.cache, cacheCountDish)
	}()
}
