package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/menu/model"
	"mesa/internal/domains/menu/model/dto"
	"mesa/internal/domains/menu/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.Dish
	otel    otel.Otel
}

func New(service service.Dish, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dishes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDish)
		routerGroup.Get("/", handler.GetDishes)
		routerGroup.Patch("/reorder", handler.ReorderDishes)
		routerGroup.Get("/{id}", handler.GetDishByID)
		routerGroup.Put("/{id}", handler.UpdateDish)
		routerGroup.Delete("/{id}", handler.DeleteDish)
	})
}

// CreateDish adds a dish to the restaurant's menu.
// @Summary Create a dish
// @Description Add a dish to the restaurant's menu.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateDishRequest true "Create Dish Request"
// @Success 201 {object} dto.DishResponse "Dish created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/dishes [post]
// @Security BearerAuth
func (handler *Handler) CreateDish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDish")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	req := dto.CreateDishRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create dish")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dish created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDishes retrieves the restaurant's menu.
// @Summary Get dishes
// @Description Retrieve the restaurant's dishes with optional filtering and pagination.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.GetDishesResponse "List of dishes"
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/dishes [get]
// @Security BearerAuth
func (handler *Handler) GetDishes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDishes")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = model.FieldDisplayOrder
		queryParams.SortDir = gDto.SortDirAsc
	}

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

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	dishes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dishes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dishes retrieved successfully")

	response.WithJSON(w, http.StatusOK, dishes)
}

// ReorderDishes rewrites the menu's display order.
// @Summary Reorder dishes
// @Description Set the menu's display order from the given ordered id list.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.ReorderDishesRequest true "Reorder Dishes Request"
// @Success 200 {object} response.Message "Dishes reordered successfully"
// @Failure 400 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/dishes/reorder [patch]
// @Security BearerAuth
func (handler *Handler) ReorderDishes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderDishes")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	req := dto.ReorderDishesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reorder(ctx, req, restaurantID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder dishes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dishes reordered successfully")

	response.WithMessage(w, http.StatusOK, "Dishes reordered successfully")
}

// GetDishByID retrieves a dish.
// @Summary Get a dish by ID
// @Description Retrieve a dish by its unique identifier.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Dish ID"
// @Success 200 {object} dto.DishResponse "Dish details"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/dishes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDishByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDishByID")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	dish, err := handler.service.Get(ctx, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dish")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dish retrieved successfully")

	response.WithJSON(w, http.StatusOK, dish)
}

// UpdateDish updates a dish.
// @Summary Update a dish
// @Description Update the details of a dish.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Dish ID"
// @Param request body dto.UpdateDishRequest true "Update Dish Request"
// @Success 200 {object} dto.DishResponse "Dish updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/dishes/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDish")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDishRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update dish")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dish updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteDish deletes a dish.
// @Summary Delete a dish
// @Description Delete a dish using its unique identifier.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Dish ID"
// @Success 200 {object} response.Message "Dish deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/dishes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDish")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, restaurantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete dish")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dish deleted successfully")

	response.WithMessage(w, http.StatusOK, "Dish deleted successfully")
}
