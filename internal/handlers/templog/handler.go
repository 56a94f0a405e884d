package templog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/templog/model/dto"
	"mesa/internal/domains/templog/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.TemperatureLog
	otel    otel.Otel
}

func New(service service.TemperatureLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers one route tree for all temperature log kinds. The kind is a
// partial URL segment ("fridge-temperatures", "preheat-temperatures", ...);
// unknown kinds are rejected by the service.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/{kind}-temperatures", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTemperatureLog)
		routerGroup.Get("/", handler.GetTemperatureLogs)
		routerGroup.Get("/{id}", handler.GetTemperatureLogByID)
		routerGroup.Put("/{id}", handler.UpdateTemperatureLog)
		routerGroup.Delete("/{id}", handler.DeleteTemperatureLog)
	})
}

// CreateTemperatureLog records a temperature reading.
// @Summary Create a temperature log
// @Description Record a temperature reading; device-bound kinds snapshot the referenced equipment.
// @Tags TemperatureLog
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param kind path string true "Log kind (fridge, generic, preheat, postheat, service)"
// @Param request body dto.CreateTemperatureLogRequest true "Create Temperature Log Request"
// @Success 201 {object} dto.TemperatureLogResponse "Temperature log created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/{kind}-temperatures [post]
// @Security BearerAuth
func (handler *Handler) CreateTemperatureLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTemperatureLog")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	kind := chi.URLParam(r, constant.RequestParamKind)

	req := dto.CreateTemperatureLogRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, kind, req, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to create temperature log")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Temperature log created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTemperatureLogs retrieves temperature logs of one kind.
// @Summary Get temperature logs
// @Description Retrieve temperature logs with optional date range and search filters.
// @Tags TemperatureLog
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param kind path string true "Log kind"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date_from query string false "Start of date range (YYYY-MM-DD)"
// @Param date_to query string false "End of date range (YYYY-MM-DD)"
// @Param q query string false "Case-insensitive search"
// @Success 200 {object} dto.GetTemperatureLogsResponse "List of temperature logs"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/{kind}-temperatures [get]
// @Security BearerAuth
func (handler *Handler) GetTemperatureLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemperatureLogs")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	kind := chi.URLParam(r, constant.RequestParamKind)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	ranges := gDto.RangeParams{}
	ranges.FromRequest(r)

	logs, err := handler.service.GetAll(ctx, kind, restaurantID, queryParams, ranges)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to get temperature logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Temperature logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// GetTemperatureLogByID retrieves a temperature log by its ID.
// @Summary Get a temperature log by ID
// @Description Retrieve a temperature log by its unique identifier.
// @Tags TemperatureLog
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param kind path string true "Log kind"
// @Param id path string true "Temperature Log ID"
// @Success 200 {object} dto.TemperatureLogResponse "Temperature log details"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/{kind}-temperatures/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTemperatureLogByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemperatureLogByID")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	kind := chi.URLParam(r, constant.RequestParamKind)
	id := chi.URLParam(r, constant.RequestParamID)

	logEntry, err := handler.service.Get(ctx, kind, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to get temperature log")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Temperature log retrieved successfully")

	response.WithJSON(w, http.StatusOK, logEntry)
}

// UpdateTemperatureLog updates a temperature log, writing only changed fields.
// @Summary Update a temperature log
// @Description Update a temperature log; identical payloads are not persisted.
// @Tags TemperatureLog
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param kind path string true "Log kind"
// @Param id path string true "Temperature Log ID"
// @Param request body dto.UpdateTemperatureLogRequest true "Update Temperature Log Request"
// @Success 200 {object} dto.TemperatureLogResponse "Temperature log updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/{kind}-temperatures/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTemperatureLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTemperatureLog")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	kind := chi.URLParam(r, constant.RequestParamKind)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTemperatureLogRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, kind, req, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to update temperature log")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Temperature log updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteTemperatureLog deletes a temperature log.
// @Summary Delete a temperature log
// @Description Delete a temperature log using its unique identifier.
// @Tags TemperatureLog
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param kind path string true "Log kind"
// @Param id path string true "Temperature Log ID"
// @Success 200 {object} response.Message "Temperature log deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/{kind}-temperatures/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTemperatureLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTemperatureLog")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	kind := chi.URLParam(r, constant.RequestParamKind)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, kind, restaurantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to delete temperature log")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Temperature log deleted successfully")

	response.WithMessage(w, http.StatusOK, "Temperature log deleted successfully")
}
