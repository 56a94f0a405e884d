package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/internal/domains/oilchange/model"
	"mesa/internal/domains/oilchange/model/dto"
	"mesa/internal/domains/oilchange/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
)

const (
	cacheGetOilChange    = "oilchange:get"
	cacheGetAllOilChange = "oilchange:gets"
	cacheFryers          = "oilchange:fryers"
)

type OilChange interface {
	Create(ctx context.Context, req dto.CreateOilChangeRequest, restaurantID string) (dto.OilChangeResponse, error)
	GetAll(ctx context.Context, restaurantID string, params gDto.QueryParams, ranges gDto.RangeParams) (dto.GetOilChangesResponse, error)
	Get(ctx context.Context, restaurantID, id string) (dto.OilChangeResponse, error)
	Update(ctx context.Context, req dto.UpdateOilChangeRequest, restaurantID, id string) (dto.OilChangeResponse, error)
	Delete(ctx context.Context, restaurantID, id string) error
	Fryers(ctx context.Context, restaurantID string) (dto.FryersResponse, error)
}

type serviceImpl struct {
	repo  repository.OilChange
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.OilChange, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) OilChange {
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

func restaurantFilter(restaurantID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOilChangeRequest, restaurantID string) (res dto.OilChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	change := req.ToModel(restaurantID, user)

	if err = s.repo.Insert(ctx, change); err != nil {
		return res, err
	}

	s.invalidateLists(ctx)

	res.FromModel(change)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, restaurantID string, params gDto.QueryParams, ranges gDto.RangeParams) (res dto.GetOilChangesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := restaurantFilter(restaurantID)
	filter.Filters = append(filter.Filters, ranges.ToFilters(
		model.FieldChangedAt,
		model.TableName,
		[]string{model.FieldFryer, model.FieldOilType, model.FieldPerformedBy},
	)...)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOilChange, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for oil changes")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count oil changes")

		return res, fmt.Errorf("failed to count oil changes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get oil changes")

		return res, fmt.Errorf("failed to get oil changes: %w", err)
	}

	res.FromModels(models, params, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save oil changes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getScoped(ctx context.Context, restaurantID, id string) (model.OilChange, error) {
	change, err := s.repo.Get(ctx, scopedFilter(restaurantID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get oil change")

		return change, fmt.Errorf("failed to get oil change: %w", err)
	}

	if change.ID == constant.Empty {
		return change, failure.NotFound("oil change not found") // nolint:wrapcheck
	}

	return change, nil
}

func (s *serviceImpl) Get(ctx context.Context, restaurantID, id string) (res dto.OilChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOilChange, restaurantID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	change, err := s.getScoped(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(change)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save oil change to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOilChangeRequest, restaurantID, id string) (res dto.OilChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getScoped(ctx, restaurantID, id); err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, scopedFilter(restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to update oil change")

		return res, fmt.Errorf("failed to update oil change: %w", err)
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
		log.Error().Err(err).Msg("failed to delete oil change")

		return fmt.Errorf("failed to delete oil change: %w", err)
	}

	s.invalidate(ctx, restaurantID, id)

	return nil
}

// Fryers returns the distinct fryer labels this restaurant has ever logged an
// oil change for.
func (s *serviceImpl) Fryers(ctx context.Context, restaurantID string) (res dto.FryersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Fryers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheFryers, restaurantID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	fryers, err := s.repo.Distinct(ctx, model.FieldFryer, restaurantFilter(restaurantID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get distinct fryers")

		return res, fmt.Errorf("failed to get distinct fryers: %w", err)
	}

	res.Fryers = fryers

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save fryers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOilChange)
		shared.InvalidateCaches(c, s.cache, cacheFryers)
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, restaurantID, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOilChange, restaurantID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete oil change cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOilChange)
		shared.InvalidateCaches(c, s.cache, cacheFryers)
	}()
}
