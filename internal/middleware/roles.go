package middleware

import (
	"net/http"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	"github.com/ecanay/blogfolio-backend/internal/models"
)

// RequireRole allows only the given role past. It assumes the auth
// gate already ran; a missing context user answers 401.
func RequireRole(need models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r.Context())
			if !ok {
				httpx.Fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
				return
			}
			if u.Role != need {
				httpx.Fail(w, http.StatusForbidden, "Access denied - admins only")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
