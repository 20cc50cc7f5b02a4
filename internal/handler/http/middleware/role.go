package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/response"
)

// RequirePermission gates a route on the caller's role permissions. When the
// route carries an {employeeId} parameter, a caller addressing their own
// record passes even without the role permission.
func RequirePermission(required ...user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID, roleStr, ok := CallerIdentity(r)
			if !ok {
				response.Unauthorized(w, "missing or invalid token")
				return
			}

			resourceOwnerID := chi.URLParam(r, "employeeId")

			if !user.HasRequiredRights(user.Role(roleStr), callerID, resourceOwnerID, required...) {
				response.HandleError(w, user.ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
