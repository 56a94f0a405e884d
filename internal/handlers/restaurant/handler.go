package restaurant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/restaurant/model"
	"mesa/internal/domains/restaurant/model/dto"
	"mesa/internal/domains/restaurant/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.Restaurant
	otel    otel.Otel
}

func New(service service.Restaurant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the endpoints that live directly under the tenant scope.
// The list endpoint is registered separately because it is not bound to a
// single restaurant.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetRestaurantByID)
	router.Put("/", handler.UpdateRestaurant)
	router.Get("/availability", handler.GetAvailability)
}

// GetRestaurants retrieves the restaurants visible to the caller.
// @Summary Get restaurants
// @Description Retrieve restaurants; owners see their own, admins see all.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetRestaurantsResponse "List of restaurants"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants [get]
// @Security BearerAuth
func (handler *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role == constant.RoleOwner {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	restaurants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurants retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

// GetRestaurantByID retrieves the scoped restaurant.
// @Summary Get a restaurant
// @Description Retrieve the restaurant the request is scoped to.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} dto.RestaurantResponse "Restaurant details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId} [get]
// @Security BearerAuth
func (handler *Handler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantByID")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	restaurant, err := handler.service.Get(ctx, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurant)
}

// UpdateRestaurant updates the scoped restaurant.
// @Summary Update a restaurant
// @Description Update restaurant details, opening hours or reservation parameters.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.UpdateRestaurantRequest true "Update Restaurant Request"
// @Success 200 {object} response.Message "Restaurant updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRestaurant")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	req := dto.UpdateRestaurantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, restaurantID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update restaurant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Restaurant updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Restaurant updated successfully")
}

// GetAvailability lists the bookable time slots for a date.
// @Summary Get availability
// @Description List the bookable reservation slots for the given date.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)
	date := r.URL.Query().Get(constant.RequestParamDate)

	availability, err := handler.service.Availability(ctx, restaurantID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}
