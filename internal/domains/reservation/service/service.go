package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/internal/domains/reservation/model"
	"mesa/internal/domains/reservation/model/dto"
	"mesa/internal/domains/reservation/repository"
	"mesa/internal/domains/restaurant/schedule"
	restaurantService "mesa/internal/domains/restaurant/service"
	"mesa/internal/events"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

var transitionEventTypes = map[string]string{
	model.ActionConfirm:  events.TypeReservationConfirmed,
	model.ActionActivate: events.TypeReservationActivated,
	model.ActionFinish:   events.TypeReservationFinished,
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest, restaurantID string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, restaurantID, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, restaurantID, id string) (dto.ReservationResponse, error)
	Transition(ctx context.Context, restaurantID, id, action string) (dto.ReservationResponse, error)
	Delete(ctx context.Context, restaurantID, id string) error
	Buckets(ctx context.Context, restaurantID, nameFilter string) (dto.BucketsResponse, error)
	MarkOverdueLate(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	restaurants restaurantService.Restaurant
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	publisher   events.Publisher
}

func New(
	repo repository.Reservation,
	restaurants restaurantService.Restaurant,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher events.Publisher,
) Reservation {
	return &serviceImpl{
		repo:        repo,
		restaurants: restaurants,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		publisher:   publisher,
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

// validateSlot rejects times that are not bookable slots for the restaurant
// on the requested date. This check runs server side on every create and
// reschedule; a direct API call cannot book outside business hours.
func (s *serviceImpl) validateSlot(ctx context.Context, restaurantID, date, timeOfDay string) error {
	restaurant, err := s.restaurants.GetModel(ctx, restaurantID)
	if err != nil {
		return err
	}

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return failure.BadRequestFromString("invalid reservation date") // nolint:wrapcheck
	}

	if !schedule.IsBookable(day, timeOfDay, restaurant.OpeningHours, restaurant.ReservationParams) {
		return failure.BadRequestFromString("reservation time is not a bookable slot for that day") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest, restaurantID string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.validateSlot(ctx, restaurantID, req.ReservationDate, req.ReservationTime); err != nil {
		return res, err
	}

	reservation, err := req.ToModel(restaurantID, user)
	if err != nil {
		return res, failure.BadRequestFromString("invalid reservation date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		return res, err
	}

	s.publisher.PublishReservationEvent(ctx, events.TypeReservationCreated, reservation.ID, restaurantID, reservation.Status)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, req, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getScoped(ctx context.Context, restaurantID, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, scopedFilter(restaurantID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) Get(ctx context.Context, restaurantID, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, restaurantID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.getScoped(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, restaurantID, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getScoped(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	// Rescheduling revalidates the slot against the live configuration.
	date := current.ReservationDate.Format(constant.DateOnlyFormat)
	if req.ReservationDate != "" {
		date = req.ReservationDate
	}

	timeOfDay := current.ReservationTime
	if req.ReservationTime != "" {
		timeOfDay = req.ReservationTime
	}

	if req.ReservationDate != "" || req.ReservationTime != "" {
		if err = s.validateSlot(ctx, restaurantID, date, timeOfDay); err != nil {
			return res, err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if req.ReservationDate != "" {
		parsed, parseErr := timezone.Parse(constant.DateOnlyFormat, req.ReservationDate)
		if parseErr != nil {
			return res, failure.BadRequestFromString("invalid reservation date") // nolint:wrapcheck
		}

		updatedFields[model.FieldReservationDate] = parsed
	}

	filter := scopedFilter(restaurantID, id)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	updated, err := s.getScoped(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	s.publisher.PublishReservationEvent(ctx, events.TypeReservationUpdated, id, restaurantID, updated.Status)

	s.invalidateReservation(ctx, restaurantID, id)

	res.FromModel(updated)

	return res, nil
}

// Transition applies one of the guarded workflow actions. An action that is
// not valid for the current status yields a conflict, not a silent write.
func (s *serviceImpl) Transition(ctx context.Context, restaurantID, id, action string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getScoped(ctx, restaurantID, id)
	if err != nil {
		return res, err
	}

	target, ok := model.ResolveTransition(action, current.Status)
	if !ok {
		return res, failure.Conflict(fmt.Sprintf("cannot %s a reservation in status %s", action, current.Status)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        target,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, scopedFilter(restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to transition reservation")

		return res, fmt.Errorf("failed to transition reservation: %w", err)
	}

	if eventType, ok := transitionEventTypes[action]; ok {
		s.publisher.PublishReservationEvent(ctx, eventType, id, restaurantID, target)
	}

	s.invalidateReservation(ctx, restaurantID, id)

	current.Status = target
	res.FromModel(current)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, restaurantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.getScoped(ctx, restaurantID, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, scopedFilter(restaurantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.publisher.PublishReservationEvent(ctx, events.TypeReservationDeleted, id, restaurantID, current.Status)

	s.invalidateReservation(ctx, restaurantID, id)

	return nil
}

// Buckets partitions the restaurant's reservations per status. The optional
// name filter is a case-sensitive substring match applied to each bucket
// independently; counts reflect the filtered view.
func (s *serviceImpl) Buckets(ctx context.Context, restaurantID, nameFilter string) (res dto.BucketsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Buckets")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations for buckets")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	if nameFilter != constant.Empty {
		filtered := models[:0]
		for _, mod := range models {
			if strings.Contains(mod.CustomerName, nameFilter) {
				filtered = append(filtered, mod)
			}
		}

		models = filtered
	}

	res.FromModels(models, timezone.Now())

	return res, nil
}

// MarkOverdueLate flips Confirmed reservations whose slot passed more than the
// configured grace period ago to Late. It runs across all restaurants and
// returns the number of reservations it marked.
func (s *serviceImpl) MarkOverdueLate(ctx context.Context) (marked int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkOverdueLate")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldReservationDate,
		SortDir: gDto.SortDirAsc,
	}

	confirmed, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get confirmed reservations")

		return 0, fmt.Errorf("failed to get confirmed reservations: %w", err)
	}

	cutoff := timezone.Now().Add(-time.Duration(s.cfg.Reservation.LateGraceMinutes) * time.Minute)

	for _, reservation := range confirmed {
		if !reservation.DateTime().Before(cutoff) {
			continue
		}

		updatedFields := map[string]any{
			model.FieldStatus:        model.StatusLate,
			constant.FieldModifiedAt: timezone.Now(),
		}

		if err := s.repo.Update(ctx, updatedFields, scopedFilter(reservation.RestaurantID, reservation.ID)); err != nil {
			log.Error().Err(err).Str("id", reservation.ID).Msg("failed to mark reservation late")

			continue
		}

		s.publisher.PublishReservationEvent(ctx, events.TypeReservationLate, reservation.ID, reservation.RestaurantID, model.StatusLate)

		s.invalidateReservation(ctx, reservation.RestaurantID, reservation.ID)

		marked++
	}

	return marked, nil
}

func (s *serviceImpl) invalidateReservation(ctx context.Context, restaurantID, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, restaurantID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
