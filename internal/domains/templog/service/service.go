package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	equipmentService "mesa/internal/domains/equipment/service"
	"mesa/internal/domains/templog/model"
	"mesa/internal/domains/templog/model/dto"
	"mesa/internal/domains/templog/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/timezone"
)

const (
	cacheGetTemperatureLog    = "templog:get"
	cacheGetAllTemperatureLog = "templog:gets"
)

type TemperatureLog interface {
	Create(ctx context.Context, kind string, req dto.CreateTemperatureLogRequest, restaurantID string) (dto.TemperatureLogResponse, error)
	GetAll(ctx context.Context, kind, restaurantID string, params gDto.QueryParams, ranges gDto.RangeParams) (dto.GetTemperatureLogsResponse, error)
	Get(ctx context.Context, kind, restaurantID, id string) (dto.TemperatureLogResponse, error)
	Update(ctx context.Context, kind string, req dto.UpdateTemperatureLogRequest, restaurantID, id string) (dto.TemperatureLogResponse, error)
	Delete(ctx context.Context, kind, restaurantID, id string) error
}

type serviceImpl struct {
	repo       repository.TemperatureLog
	equipments equipmentService.Equipment
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.TemperatureLog,
	equipments equipmentService.Equipment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) TemperatureLog {
	return &serviceImpl{
		repo:       repo,
		equipments: equipments,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func resolveKind(kind string) (model.KindSpec, error) {
	spec, ok := model.ResolveKind(kind)
	if !ok {
		return spec, failure.NotFound("temperature log kind not found") // nolint:wrapcheck
	}

	return spec, nil
}

func scopedFilter(kind, restaurantID, id string) gDto.FilterGroup {
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
			gDto.Filter{
				Field:    model.FieldKind,
				Operator: gDto.FilterOperatorEq,
				Value:    kind,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, kind string, req dto.CreateTemperatureLogRequest, restaurantID string) (res dto.TemperatureLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	spec, err := resolveKind(kind)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	recordedBy, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	entry := req.ToModel(spec.Slug, restaurantID, recordedBy, user)

	if spec.RequiresDevice {
		if req.DeviceID == constant.Empty {
			return res, failure.BadRequestFromString("device_id is required for this log kind") // nolint:wrapcheck
		}

		device, devErr := s.equipments.GetModel(ctx, restaurantID, req.DeviceID)
		if devErr != nil {
			return res, devErr
		}

		// Snapshot copied onto the row so later equipment renames never
		// rewrite history.
		entry.DeviceName = device.Name
		entry.DeviceUnit = device.Unit
		entry.DeviceLocation = device.Location
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		return res, err
	}

	s.invalidateLists(ctx, kind)

	res.FromModel(entry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, kind, restaurantID string, params gDto.QueryParams, ranges gDto.RangeParams) (res dto.GetTemperatureLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	spec, err := resolveKind(kind)
	if err != nil {
		return res, err
	}

	// date_to is an inclusive calendar date.
	if ranges.DateTo != constant.Empty {
		ranges.DateTo += " 23:59:59"
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldKind,
				Operator: gDto.FilterOperatorEq,
				Value:    spec.Slug,
				Table:    model.TableName,
			},
		},
	}
	filter.Filters = append(filter.Filters, ranges.ToFilters(constant.FieldCreatedAt, model.TableName, spec.SearchFields)...)

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllTemperatureLog, kind), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for temperature logs")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count temperature logs")

		return res, fmt.Errorf("failed to count temperature logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get temperature logs")

		return res, fmt.Errorf("failed to get temperature logs: %w", err)
	}

	res.FromModels(models, params, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save temperature logs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getScoped(ctx context.Context, kind, restaurantID, id string) (model.TemperatureLog, error) {
	entry, err := s.repo.Get(ctx, scopedFilter(kind, restaurantID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get temperature log")

		return entry, fmt.Errorf("failed to get temperature log: %w", err)
	}

	if entry.ID == constant.Empty {
		return entry, failure.NotFound("temperature log not found") // nolint:wrapcheck
	}

	return entry, nil
}

func (s *serviceImpl) Get(ctx context.Context, kind, restaurantID, id string) (res dto.TemperatureLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = resolveKind(kind); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetTemperatureLog, kind, restaurantID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for temperature log")

		return res, nil
	}

	entry, err := s.getScoped(ctx, kind, restaurantID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(entry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save temperature log to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, kind string, req dto.UpdateTemperatureLogRequest, restaurantID, id string) (res dto.TemperatureLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	spec, err := resolveKind(kind)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getScoped(ctx, kind, restaurantID, id)
	if err != nil {
		return res, err
	}

	changes := req.Changes(current)

	// An identical payload performs no write: modified_at stays untouched.
	if len(changes) == 0 {
		res.FromModel(current)

		return res, nil
	}

	if _, changed := changes[model.FieldDeviceID]; changed && spec.RequiresDevice {
		device, devErr := s.equipments.GetModel(ctx, restaurantID, req.DeviceID)
		if devErr != nil {
			return res, devErr
		}

		changes[model.FieldDeviceName] = device.Name
		changes[model.FieldDeviceUnit] = device.Unit
		changes[model.FieldDeviceLocation] = device.Location
	}

	changes[constant.FieldModifiedAt] = timezone.Now()
	changes[constant.FieldModifiedBy] = user

	if err = s.repo.Update(ctx, changes, scopedFilter(kind, restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to update temperature log")

		return res, fmt.Errorf("failed to update temperature log: %w", err)
	}

	updated, err := s.getScoped(ctx, kind, restaurantID, id)
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, kind, restaurantID, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, kind, restaurantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = resolveKind(kind); err != nil {
		return err
	}

	if _, err = s.getScoped(ctx, kind, restaurantID, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, scopedFilter(kind, restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete temperature log")

		return fmt.Errorf("failed to delete temperature log: %w", err)
	}

	s.invalidate(ctx, kind, restaurantID, id)

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context, kind string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllTemperatureLog, kind))
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, kind, restaurantID, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTemperatureLog, kind, restaurantID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete temperature log cache")
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllTemperatureLog, kind))
	}()
}
