package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa/infras/otel"
	"mesa/shared/constant"
	"mesa/shared/failure"
	"mesa/transport/http/response"
)

// MembershipChecker reports whether a user belongs to a restaurant. It is
// implemented by the user service and injected here to keep the middleware
// free of a direct domain dependency.
type MembershipChecker interface {
	IsMember(ctx context.Context, userID, restaurantID string) (bool, error)
}

type Tenant interface {
	RestaurantScope(http.Handler) http.Handler
}

type tenantImpl struct {
	membership MembershipChecker
	otel       otel.Otel
}

func NewTenantMiddleware(membership MembershipChecker, otel otel.Otel) Tenant {
	return &tenantImpl{
		membership: membership,
		otel:       otel,
	}
}

// RestaurantScope resolves the restaurant from the URL and rejects users that
// are not members of it. Admin roles can reach any restaurant.
func (m *tenantImpl) RestaurantScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "tenant.middleware")

		restaurantID := chi.URLParam(request, constant.RequestParamRestaurantID)
		if restaurantID == "" {
			scope.End()
			response.WithError(writer, failure.BadRequestFromString("missing restaurant id"))

			return
		}

		scope.SetAttribute("restaurant_id", restaurantID)

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

		if role != constant.RoleSuperAdmin && role != constant.RoleAdmin {
			member, err := m.membership.IsMember(ctx, userID, restaurantID)
			if err != nil {
				scope.TraceError(err)
				scope.End()
				response.WithError(writer, err)

				return
			}

			if !member {
				err := failure.ResourceRestrictedError
				scope.TraceError(err)
				scope.End()
				response.WithError(writer, err)

				return
			}
		}

		ctx = context.WithValue(ctx, constant.ContextKeyRestaurantID, restaurantID)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
