package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/internal/domains/subscription/model"
	"mesa/internal/domains/subscription/model/dto"
	"mesa/internal/domains/subscription/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
)

const (
	cacheGetSubscription    = "subscription:get"
	cacheGetAllSubscription = "subscription:gets"
)

type Subscription interface {
	Create(ctx context.Context, req dto.CreateSubscriptionRequest, restaurantID string) (dto.SubscriptionResponse, error)
	GetAll(ctx context.Context, restaurantID string, params gDto.QueryParams) (dto.GetSubscriptionsResponse, error)
	Get(ctx context.Context, id string) (dto.SubscriptionResponse, error)
	Update(ctx context.Context, req dto.UpdateSubscriptionRequest, id string) (dto.SubscriptionResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Subscription
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Subscription, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Subscription {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func restaurantFilter(restaurantID string) gDto.FilterGroup {
	return gDto.FilterGroup{
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSubscriptionRequest, restaurantID string) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	subscription, err := req.ToModel(restaurantID, user)
	if err != nil {
		return res, failure.BadRequestFromString("invalid subscription period") // nolint:wrapcheck
	}

	if subscription.PeriodEnd.Before(subscription.PeriodStart) {
		return res, failure.BadRequestFromString("period_end must not precede period_start") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, subscription); err != nil {
		return res, err
	}

	s.invalidateLists(ctx)

	res.FromModel(subscription)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, restaurantID string, params gDto.QueryParams) (res dto.GetSubscriptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := restaurantFilter(restaurantID)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSubscription, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count subscriptions")

		return res, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscriptions")

		return res, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	res.FromModels(models, params, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save subscriptions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Subscription, error) {
	subscription, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscription")

		return subscription, fmt.Errorf("failed to get subscription: %w", err)
	}

	if subscription.ID == constant.Empty {
		return subscription, failure.NotFound("subscription not found") // nolint:wrapcheck
	}

	return subscription, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSubscription, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	subscription, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(subscription)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save subscription to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSubscriptionRequest, id string) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getByID(ctx, id); err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update subscription")

		return res, fmt.Errorf("failed to update subscription: %w", err)
	}

	updated, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getByID(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete subscription")

		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSubscription)
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSubscription, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete subscription cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSubscription)
	}()
}
