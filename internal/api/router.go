package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ecanay/blogfolio-backend/internal/api/handlers"
	"github.com/ecanay/blogfolio-backend/internal/config"
	"github.com/ecanay/blogfolio-backend/internal/metrics"
	"github.com/ecanay/blogfolio-backend/internal/middleware"
	"github.com/ecanay/blogfolio-backend/internal/models"
)

type RouterDeps struct {
	Cfg     config.Config
	Gate    *middleware.AuthGate
	Auth    *handlers.AuthHandler
	Blogs   *handlers.BlogHandler
	Admin   *handlers.AdminHandler
	Profile *handlers.ProfileHandler
	Contact *handlers.ContactHandler
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.Cfg.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.HTTPMetrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", d.Auth.Signup)
			r.Post("/login", d.Auth.Login)
			r.Post("/logout", d.Auth.Logout)
			r.With(d.Gate.Require).Get("/me", d.Auth.Me)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/blogs", d.Blogs.List)
			r.Get("/blogs/{slug}", d.Blogs.GetBySlug)
			r.Get("/search", d.Blogs.Search)
			r.Get("/advance-search", d.Blogs.AdvancedSearch)
			r.Post("/contact", d.Contact.Send)
			r.With(d.Gate.Require).Put("/edit-profile", d.Profile.Edit)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(d.Gate.Require, middleware.RequireRole(models.RoleAdmin))
			r.Get("/blogs", d.Admin.List)
			r.Post("/blogs/create", d.Admin.Create)
			r.Put("/blogs/update/{id}", d.Admin.Update)
			r.Delete("/blogs/delete/{id}", d.Admin.Delete)
		})
	})

	return r
}
