package equipment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/equipment/model"
	"mesa/internal/domains/equipment/model/dto"
	"mesa/internal/domains/equipment/service"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.Equipment
	otel    otel.Otel
}

func New(service service.Equipment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cooking-equipments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEquipment)
		routerGroup.Get("/", handler.GetEquipments)
		routerGroup.Get("/{id}", handler.GetEquipmentByID)
		routerGroup.Put("/{id}", handler.UpdateEquipment)
		routerGroup.Delete("/{id}", handler.DeleteEquipment)
	})
}

// CreateEquipment registers a new piece of cooking equipment.
// @Summary Create cooking equipment
// @Description Register a piece of cooking equipment for the restaurant.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateEquipmentRequest true "Create Equipment Request"
// @Success 201 {object} dto.EquipmentResponse "Equipment created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/cooking-equipments [post]
// @Security BearerAuth
func (handler *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEquipment")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	req := dto.CreateEquipmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetEquipments retrieves the restaurant's cooking equipment.
// @Summary Get cooking equipments
// @Description Retrieve cooking equipment with optional filtering and pagination.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} dto.GetEquipmentsResponse "List of equipment"
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/cooking-equipments [get]
// @Security BearerAuth
func (handler *Handler) GetEquipments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipments")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	equipments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipments retrieved successfully")

	response.WithJSON(w, http.StatusOK, equipments)
}

// GetEquipmentByID retrieves one piece of equipment.
// @Summary Get cooking equipment by ID
// @Description Retrieve a piece of cooking equipment by its unique identifier.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Equipment ID"
// @Success 200 {object} dto.EquipmentResponse "Equipment details"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/cooking-equipments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEquipmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipmentByID")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	equipment, err := handler.service.Get(ctx, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment retrieved successfully")

	response.WithJSON(w, http.StatusOK, equipment)
}

// UpdateEquipment updates a piece of equipment.
// @Summary Update cooking equipment
// @Description Update the details of a piece of cooking equipment.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Equipment ID"
// @Param request body dto.UpdateEquipmentRequest true "Update Equipment Request"
// @Success 200 {object} dto.EquipmentResponse "Equipment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/cooking-equipments/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEquipment")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEquipmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteEquipment deletes a piece of equipment.
// @Summary Delete cooking equipment
// @Description Delete a piece of cooking equipment using its unique identifier.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Equipment ID"
// @Success 200 {object} response.Message "Equipment deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/cooking-equipments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEquipment")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, restaurantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Equipment deleted successfully")
}
