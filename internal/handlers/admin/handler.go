// Package admin exposes the platform back office: owner accounts, restaurant
// onboarding, subscriptions and compliance documents.
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	documentDto "mesa/internal/domains/document/model/dto"
	documentService "mesa/internal/domains/document/service"
	restaurantModel "mesa/internal/domains/restaurant/model"
	restaurantDto "mesa/internal/domains/restaurant/model/dto"
	restaurantService "mesa/internal/domains/restaurant/service"
	subscriptionDto "mesa/internal/domains/subscription/model/dto"
	subscriptionService "mesa/internal/domains/subscription/service"
	userModel "mesa/internal/domains/user/model"
	userDto "mesa/internal/domains/user/model/dto"
	userService "mesa/internal/domains/user/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

type Handler struct {
	users         userService.User
	restaurants   restaurantService.Restaurant
	subscriptions subscriptionService.Subscription
	documents     documentService.Document
	otel          otel.Otel
}

func New(
	users userService.User,
	restaurants restaurantService.Restaurant,
	subscriptions subscriptionService.Subscription,
	documents documentService.Document,
	otel otel.Otel,
) Handler {
	return Handler{
		users:         users,
		restaurants:   restaurants,
		subscriptions: subscriptions,
		documents:     documents,
		otel:          otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Route("/owners", func(r chi.Router) {
			r.Post("/", handler.CreateOwner)
			r.Get("/", handler.GetOwners)
			r.Get("/{id}", handler.GetOwnerByID)
			r.Put("/{id}", handler.UpdateOwner)
			r.Delete("/{id}", handler.DeleteOwner)
		})

		routerGroup.Route("/restaurants", func(r chi.Router) {
			r.Post("/", handler.CreateRestaurant)
			r.Get("/", handler.GetRestaurants)
			r.Route("/{restaurantId}", func(r chi.Router) {
				r.Get("/", handler.GetRestaurantByID)
				r.Put("/", handler.UpdateRestaurant)
				r.Delete("/", handler.DeleteRestaurant)
				r.Post("/subscriptions", handler.CreateSubscription)
				r.Get("/subscriptions", handler.GetSubscriptions)
				r.Post("/documents", handler.CreateDocument)
				r.Get("/documents", handler.GetDocuments)
			})
		})

		routerGroup.Route("/subscriptions", func(r chi.Router) {
			r.Get("/{id}", handler.GetSubscriptionByID)
			r.Put("/{id}", handler.UpdateSubscription)
			r.Delete("/{id}", handler.DeleteSubscription)
		})

		routerGroup.Route("/documents", func(r chi.Router) {
			r.Get("/{id}", handler.GetDocumentByID)
			r.Delete("/{id}", handler.DeleteDocument)
		})
	})
}

// CreateOwner creates an owner account.
// @Summary Create an owner
// @Description Create an owner account for the platform.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body userDto.CreateUserRequest true "Create Owner Request"
// @Success 201 {object} userDto.UserResponse "Owner created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/admin/owners [post]
// @Security BearerAuth
func (handler *Handler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOwner")
	defer scope.End()

	req := userDto.CreateUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.Role = constant.RoleOwner

	res, err := handler.users.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOwners retrieves owner accounts.
// @Summary Get owners
// @Description Retrieve owner accounts with optional filtering and pagination.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Success 200 {object} userDto.GetUsersResponse "List of owners"
// @Failure 500 {object} response.Error
// @Router /v1/admin/owners [get]
// @Security BearerAuth
func (handler *Handler) GetOwners(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwners")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.RoleOwner,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(userModel.FieldEmail),
				Table:    userModel.TableName,
			},
		},
	}

	owners, err := handler.users.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owners")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owners retrieved successfully")

	response.WithJSON(w, http.StatusOK, owners)
}

// GetOwnerByID retrieves an owner account.
// @Summary Get an owner by ID
// @Description Retrieve an owner account by its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} userDto.UserResponse "Owner details"
// @Failure 404 {object} response.Error
// @Router /v1/admin/owners/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOwnerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	owner, err := handler.users.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner retrieved successfully")

	response.WithJSON(w, http.StatusOK, owner)
}

// UpdateOwner updates an owner account, including its restaurant assignment.
// @Summary Update an owner
// @Description Update an owner account; assigning restaurant_id links the owner to a restaurant.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param request body userDto.UpdateUserRequest true "Update Owner Request"
// @Success 200 {object} userDto.UserResponse "Owner updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/owners/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOwner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := userDto.UpdateUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.users.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteOwner deletes an owner account.
// @Summary Delete an owner
// @Description Delete an owner account using its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} response.Message "Owner deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/owners/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOwner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.users.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner deleted successfully")

	response.WithMessage(w, http.StatusOK, "Owner deleted successfully")
}

// CreateRestaurant onboards a new restaurant.
// @Summary Create a restaurant
// @Description Onboard a new restaurant and link it to an owner.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body restaurantDto.CreateRestaurantRequest true "Create Restaurant Request"
// @Success 201 {object} response.Message "Restaurant created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/admin/restaurants [post]
// @Security BearerAuth
func (handler *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurant")
	defer scope.End()

	req := restaurantDto.CreateRestaurantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.restaurants.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant created successfully")

	response.WithMessage(w, http.StatusCreated, "Restaurant created successfully")
}

// GetRestaurants retrieves all restaurants on the platform.
// @Summary Get all restaurants
// @Description Retrieve all restaurants with optional filtering and pagination.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} restaurantDto.GetRestaurantsResponse "List of restaurants"
// @Failure 500 {object} response.Error
// @Router /v1/admin/restaurants [get]
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
				Field:    restaurantModel.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(restaurantModel.FieldName),
				Table:    restaurantModel.TableName,
			},
		},
	}

	restaurants, err := handler.restaurants.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurants retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

// GetRestaurantByID retrieves any restaurant by its ID.
// @Summary Get a restaurant by ID
// @Description Retrieve any restaurant by its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} restaurantDto.RestaurantResponse "Restaurant details"
// @Failure 404 {object} response.Error
// @Router /v1/admin/restaurants/{restaurantId} [get]
// @Security BearerAuth
func (handler *Handler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantByID")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	restaurant, err := handler.restaurants.Get(ctx, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurant)
}

// UpdateRestaurant updates any restaurant.
// @Summary Update a restaurant
// @Description Update any restaurant's details.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body restaurantDto.UpdateRestaurantRequest true "Update Restaurant Request"
// @Success 200 {object} response.Message "Restaurant updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/restaurants/{restaurantId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRestaurant")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	req := restaurantDto.UpdateRestaurantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.restaurants.Update(ctx, req, restaurantID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update restaurant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant updated successfully")

	response.WithMessage(w, http.StatusOK, "Restaurant updated successfully")
}

// DeleteRestaurant removes a restaurant from the platform.
// @Summary Delete a restaurant
// @Description Delete a restaurant using its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} response.Message "Restaurant deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/restaurants/{restaurantId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRestaurant")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	if err := handler.restaurants.Delete(ctx, restaurantID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete restaurant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant deleted successfully")

	response.WithMessage(w, http.StatusOK, "Restaurant deleted successfully")
}

// CreateSubscription opens a billing period for a restaurant.
// @Summary Create a subscription
// @Description Create a subscription period for a restaurant.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body subscriptionDto.CreateSubscriptionRequest true "Create Subscription Request"
// @Success 201 {object} subscriptionDto.SubscriptionResponse "Subscription created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/admin/restaurants/{restaurantId}/subscriptions [post]
// @Security BearerAuth
func (handler *Handler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSubscription")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	req := subscriptionDto.CreateSubscriptionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.subscriptions.Create(ctx, req, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscription created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSubscriptions retrieves a restaurant's subscriptions.
// @Summary Get subscriptions
// @Description Retrieve a restaurant's subscription periods.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} subscriptionDto.GetSubscriptionsResponse "List of subscriptions"
// @Failure 500 {object} response.Error
// @Router /v1/admin/restaurants/{restaurantId}/subscriptions [get]
// @Security BearerAuth
func (handler *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriptions")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	subscriptions, err := handler.subscriptions.GetAll(ctx, restaurantID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscriptions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscriptions retrieved successfully")

	response.WithJSON(w, http.StatusOK, subscriptions)
}

// GetSubscriptionByID retrieves a subscription.
// @Summary Get a subscription by ID
// @Description Retrieve a subscription by its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} subscriptionDto.SubscriptionResponse "Subscription details"
// @Failure 404 {object} response.Error
// @Router /v1/admin/subscriptions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSubscriptionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriptionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	subscription, err := handler.subscriptions.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscription retrieved successfully")

	response.WithJSON(w, http.StatusOK, subscription)
}

// UpdateSubscription updates a subscription.
// @Summary Update a subscription
// @Description Update a subscription's amount, currency or status.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body subscriptionDto.UpdateSubscriptionRequest true "Update Subscription Request"
// @Success 200 {object} subscriptionDto.SubscriptionResponse "Subscription updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/subscriptions/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSubscription")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := subscriptionDto.UpdateSubscriptionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.subscriptions.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscription updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteSubscription deletes a subscription.
// @Summary Delete a subscription
// @Description Delete a subscription using its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} response.Message "Subscription deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/subscriptions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSubscription")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.subscriptions.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscription deleted successfully")

	response.WithMessage(w, http.StatusOK, "Subscription deleted successfully")
}

// CreateDocument uploads a compliance document for a restaurant.
// @Summary Create a document
// @Description Upload a base64-encoded document for a restaurant.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body documentDto.CreateDocumentRequest true "Create Document Request"
// @Success 201 {object} documentDto.DocumentResponse "Document created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/admin/restaurants/{restaurantId}/documents [post]
// @Security BearerAuth
func (handler *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDocument")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	req := documentDto.CreateDocumentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.documents.Create(ctx, req, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create document")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDocuments retrieves a restaurant's documents.
// @Summary Get documents
// @Description Retrieve a restaurant's documents.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} documentDto.GetDocumentsResponse "List of documents"
// @Failure 500 {object} response.Error
// @Router /v1/admin/restaurants/{restaurantId}/documents [get]
// @Security BearerAuth
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	documents, err := handler.documents.GetAll(ctx, restaurantID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Documents retrieved successfully")

	response.WithJSON(w, http.StatusOK, documents)
}

// GetDocumentByID retrieves a document.
// @Summary Get a document by ID
// @Description Retrieve a document by its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} documentDto.DocumentResponse "Document details"
// @Failure 404 {object} response.Error
// @Router /v1/admin/documents/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocumentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	document, err := handler.documents.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get document")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document retrieved successfully")

	response.WithJSON(w, http.StatusOK, document)
}

// DeleteDocument deletes a document and its stored object.
// @Summary Delete a document
// @Description Delete a document and remove the stored file.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/documents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.documents.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete document")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document deleted successfully")

	response.WithMessage(w, http.StatusOK, "Document deleted successfully")
}
