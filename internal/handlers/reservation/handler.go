package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/reservation/model"
	"mesa/internal/domains/reservation/model/dto"
	"mesa/internal/domains/reservation/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/buckets", handler.GetBuckets)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
		routerGroup.Put("/{id}/status", handler.UpdateReservationStatus)
	})
}

// CreateReservation books a slot for a customer.
// @Summary Create a reservation
// @Description Create a reservation on a valid slot of the restaurant's schedule.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} dto.ReservationResponse "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservations retrieves reservations with optional date range, status and
// free-text filters.
// @Summary Get reservations
// @Description Retrieve reservations with optional filtering and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param date_from query string false "Start of date range (YYYY-MM-DD)"
// @Param date_to query string false "End of date range (YYYY-MM-DD)"
// @Param q query string false "Search in customer fields"
// @Success 200 {object} dto.GetReservationsResponse "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	ranges := gDto.RangeParams{}
	ranges.FromRequest(r)

	filterGroup := gDto.FilterGroup{
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

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	searchFields := []string{model.FieldCustomerName, model.FieldCustomerEmail, model.FieldCustomerPhone}
	filterGroup.Filters = append(filterGroup.Filters, ranges.ToFilters(model.FieldReservationDate, model.TableName, searchFields)...)

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetBuckets retrieves reservations grouped per status with proximity sorting.
// @Summary Get reservation buckets
// @Description Retrieve reservations partitioned by status, each bucket sorted by proximity to now.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param name query string false "Case-sensitive customer name filter"
// @Success 200 {object} dto.BucketsResponse "Reservation buckets"
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/reservations/buckets [get]
// @Security BearerAuth
func (handler *Handler) GetBuckets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuckets")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	nameFilter := r.URL.Query().Get(constant.RequestParamName)

	buckets, err := handler.service.Buckets(ctx, restaurantID, nameFilter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation buckets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation buckets retrieved successfully")

	response.WithJSON(w, http.StatusOK, buckets)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse "Reservation details"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation updates a reservation's details.
// @Summary Update a reservation
// @Description Update reservation details; a changed slot is validated against the schedule.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} dto.ReservationResponse "Reservation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/reservations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteReservation deletes a reservation.
// @Summary Delete a reservation
// @Description Delete a reservation using its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, restaurantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}

// UpdateReservationStatus applies a workflow transition to a reservation.
// @Summary Update a reservation's status
// @Description Move a reservation to Confirmed, Active or Finished; transitions not allowed from the current status are rejected.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationStatusRequest true "Target status"
// @Success 200 {object} dto.ReservationResponse "Reservation status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/reservations/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	action, ok := model.ActionForTarget(req.Status)
	if !ok {
		err := failure.BadRequestFromString("unknown target status")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Transition(ctx, restaurantID, id, action)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("status", req.Status).Msg("failed to transition reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation status updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
