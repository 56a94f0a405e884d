package employee

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/user/model"
	"mesa/internal/domains/user/model/dto"
	"mesa/internal/domains/user/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
)

// Handler exposes employee account management scoped to one restaurant. It is
// a thin view over the user domain with the role pinned to employee.
type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Put("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// CreateEmployee creates an employee account bound to the restaurant.
// @Summary Create an employee
// @Description Create an employee account for the restaurant.
// @Tags Employee
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateUserRequest true "Create Employee Request"
// @Success 201 {object} dto.UserResponse "Employee created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	req := dto.CreateUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.Role = constant.RoleEmployee
	req.RestaurantID = &restaurantID

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetEmployees retrieves the restaurant's employee accounts.
// @Summary Get employees
// @Description Retrieve the restaurant's employee accounts.
// @Tags Employee
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Success 200 {object} dto.GetUsersResponse "List of employees"
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
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
				Field:    model.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.RoleEmployee,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldEmail),
				Table:    model.TableName,
			},
		},
	}

	employees, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employees retrieved successfully")

	response.WithJSON(w, http.StatusOK, employees)
}

// UpdateEmployee updates an employee account.
// @Summary Update an employee
// @Description Update the details of an employee account.
// @Tags Employee
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateUserRequest true "Update Employee Request"
// @Success 200 {object} dto.UserResponse "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/employees/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteEmployee deletes an employee account.
// @Summary Delete an employee
// @Description Delete an employee account using its unique identifier.
// @Tags Employee
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{restaurantId}/employees/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee deleted successfully")

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
