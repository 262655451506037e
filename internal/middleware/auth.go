package middleware

import (
	"context"
	"net/http"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	"github.com/ecanay/blogfolio-backend/internal/auth"
	"github.com/ecanay/blogfolio-backend/internal/models"
	repo "github.com/ecanay/blogfolio-backend/internal/repository"
)

type userKey struct{}

// CurrentUser returns the user the auth gate attached to the context.
func CurrentUser(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}

// WithUser is exported for handler tests that bypass the gate.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// AuthGate resolves the session cookie to a live user record. It is a
// pure function of (cookie, signing secret, user store); every failure
// mode answers 401 without leaking which check tripped first.
type AuthGate struct {
	TM         *auth.TokenManager
	Users      repo.Users
	CookieName string
}

func NewAuthGate(tm *auth.TokenManager, users repo.Users, cookieName string) *AuthGate {
	return &AuthGate{TM: tm, Users: users, CookieName: cookieName}
}

func (g *AuthGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(g.CookieName)
		if err != nil || c.Value == "" {
			httpx.Fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
			return
		}
		claims, err := g.TM.Parse(c.Value)
		if err != nil {
			httpx.Fail(w, http.StatusUnauthorized, "Unauthorized - invalid token")
			return
		}
		u, err := g.Users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			// covers both a deleted user and a storage failure;
			// neither detail belongs in the response
			httpx.Fail(w, http.StatusUnauthorized, "Unauthorized - user not found")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
