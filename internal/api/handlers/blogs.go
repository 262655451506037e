package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	repo "github.com/ecanay/blogfolio-backend/internal/repository"
	"github.com/ecanay/blogfolio-backend/internal/services"
)

// BlogHandler serves the public read/search endpoints.
type BlogHandler struct {
	Blogs *services.BlogService
}

func NewBlogHandler(bs *services.BlogService) *BlogHandler {
	return &BlogHandler{Blogs: bs}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Blogs.List(r.Context())
	if err != nil {
		serverError(w, r, "list blogs", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blogs fetched successfully", map[string]any{"blogs": blogs})
}

func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	blog, err := h.Blogs.GetBySlug(r.Context(), slug)
	if errors.Is(err, services.ErrNotFound) {
		httpx.Fail(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		serverError(w, r, "get blog by slug", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blog fetched successfully", map[string]any{"blog": blog})
}

func (h *BlogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		httpx.Fail(w, http.StatusBadRequest, "Search query is required")
		return
	}
	blogs, err := h.Blogs.SearchTitle(r.Context(), query)
	if err != nil {
		serverError(w, r, "search blogs", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Search results fetched", map[string]any{"blogs": blogs})
}

func (h *BlogHandler) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.BlogFilter{
		Title:    q.Get("title"),
		Category: q.Get("category"),
		Content:  q.Get("content"),
	}
	// only the two literal values count as a featured filter
	switch q.Get("featured") {
	case "true":
		t := true
		f.Featured = &t
	case "false":
		fa := false
		f.Featured = &fa
	}

	if f.Empty() {
		httpx.FailWith(w, http.StatusBadRequest, "Please provide at least one search parameter",
			map[string]any{"blogs": []any{}})
		return
	}

	blogs, err := h.Blogs.AdvancedSearch(r.Context(), f)
	if err != nil {
		serverError(w, r, "advanced search", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Search results fetched successfully", map[string]any{"blogs": blogs})
}
