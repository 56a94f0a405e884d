package oilchange

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/oilchange/model/dto"
	"mesa/internal/domains/oilchange/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.OilChange
	otel    otel.Otel
}

func New(service service.OilChange, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/oil-changes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOilChange)
		routerGroup.Get("/", handler.GetOilChanges)
		routerGroup.Get("/distinct/fryers", handler.GetFryers)
		routerGroup.Get("/{id}", handler.GetOilChangeByID)
		routerGroup.Put("/{id}", handler.UpdateOilChange)
		routerGroup.Delete("/{id}", handler.DeleteOilChange)
	})
}

// CreateOilChange records an oil change.
// @Summary Create an oil change
// @Description Record an oil change for one of the restaurant's fryers.
// @Tags OilChange
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateOilChangeRequest true "Create Oil Change Request"
// @Success 201 {object} dto.OilChangeResponse "Oil change created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/oil-changes [post]
// @Security BearerAuth
func (handler *Handler) CreateOilChange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOilChange")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	req := dto.CreateOilChangeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create oil change")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Oil change created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOilChanges retrieves oil changes.
// @Summary Get oil changes
// @Description Retrieve oil changes with optional date range and search filters.
// @Tags OilChange
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date_from query string false "Start of date range (YYYY-MM-DD)"
// @Param date_to query string false "End of date range (YYYY-MM-DD)"
// @Param q query string false "Search in fryer, oil type and performer"
// @Success 200 {object} dto.GetOilChangesResponse "List of oil changes"
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/oil-changes [get]
// @Security BearerAuth
func (handler *Handler) GetOilChanges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOilChanges")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	ranges := gDto.RangeParams{}
	ranges.FromRequest(r)

	oilChanges, err := handler.service.GetAll(ctx, restaurantID, queryParams, ranges)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get oil changes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Oil changes retrieved successfully")

	response.WithJSON(w, http.StatusOK, oilChanges)
}

// GetFryers lists the distinct fryer labels used in oil changes.
// @Summary Get distinct fryers
// @Description List the distinct fryer labels recorded for the restaurant.
// @Tags OilChange
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} dto.FryersResponse "Distinct fryer labels"
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/oil-changes/distinct/fryers [get]
// @Security BearerAuth
func (handler *Handler) GetFryers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFryers")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	fryers, err := handler.service.Fryers(ctx, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get fryers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Fryers retrieved successfully")

	response.WithJSON(w, http.StatusOK, fryers)
}

// GetOilChangeByID retrieves an oil change by its ID.
// @Summary Get an oil change by ID
// @Description Retrieve an oil change by its unique identifier.
// @Tags OilChange
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Oil Change ID"
// @Success 200 {object} dto.OilChangeResponse "Oil change details"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/oil-changes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOilChangeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOilChangeByID")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	oilChange, err := handler.service.Get(ctx, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get oil change")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Oil change retrieved successfully")

	response.WithJSON(w, http.StatusOK, oilChange)
}

// UpdateOilChange updates an oil change.
// @Summary Update an oil change
// @Description Update the details of an oil change record.
// @Tags OilChange
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Oil Change ID"
// @Param request body dto.UpdateOilChangeRequest true "Update Oil Change Request"
// @Success 200 {object} dto.OilChangeResponse "Oil change updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/oil-changes/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateOilChange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOilChange")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOilChangeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update oil change")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Oil change updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteOilChange deletes an oil change.
// @Summary Delete an oil change
// @Description Delete an oil change using its unique identifier.
// @Tags OilChange
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Oil Change ID"
// @Success 200 {object} response.Message "Oil change deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/oil-changes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOilChange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOilChange")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, restaurantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete oil change")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Oil change deleted successfully")

	response.WithMessage(w, http.StatusOK, "Oil change deleted successfully")
}
