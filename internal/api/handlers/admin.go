package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	"github.com/ecanay/blogfolio-backend/internal/middleware"
	"github.com/ecanay/blogfolio-backend/internal/services"
)

// AdminHandler serves the role-gated blog mutations. The routing layer
// guarantees an authenticated admin reached us.
type AdminHandler struct {
	Blogs *services.BlogService
}

func NewAdminHandler(bs *services.BlogService) *AdminHandler {
	return &AdminHandler{Blogs: bs}
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Blogs.List(r.Context())
	if err != nil {
		serverError(w, r, "admin list blogs", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blogs fetched", map[string]any{"blogs": blogs})
}

type createBlogReq struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	Category   string `json:"category"`
	IsFeatured bool   `json:"isFeatured"`
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBlogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		httpx.Fail(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	u, _ := middleware.CurrentUser(r.Context())
	blog, err := h.Blogs.Create(r.Context(), u.ID, req.Title, req.Content, req.Image, req.Category, req.IsFeatured)
	if errors.Is(err, services.ErrTitleTaken) {
		httpx.Fail(w, http.StatusBadRequest, "A blog with this title already exists")
		return
	}
	if err != nil {
		serverError(w, r, "create blog", err)
		return
	}
	httpx.OK(w, http.StatusCreated, "Blog created successfully", map[string]any{"blog": blog})
}

type updateBlogReq struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	Category   string `json:"category"`
	IsFeatured *bool  `json:"isFeatured"`
}

func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid blog ID")
		return
	}
	var req updateBlogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.Blogs.Update(r.Context(), id, services.BlogUpdate{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		Category:   req.Category,
		IsFeatured: req.IsFeatured,
	})
	switch {
	case errors.Is(err, services.ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, "Blog not found")
		return
	case errors.Is(err, services.ErrSlugTaken):
		httpx.Fail(w, http.StatusBadRequest, "Another blog already uses this title")
		return
	case err != nil:
		serverError(w, r, "update blog", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blog updated successfully", map[string]any{"blog": blog})
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid blog ID")
		return
	}
	err := h.Blogs.Delete(r.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		httpx.Fail(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		serverError(w, r, "delete blog", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Blog deleted successfully", nil)
}
