package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	"github.com/ecanay/blogfolio-backend/internal/api/validate"
	"github.com/ecanay/blogfolio-backend/internal/middleware"
	"github.com/ecanay/blogfolio-backend/internal/models"
	"github.com/ecanay/blogfolio-backend/internal/services"
)

type ProfileHandler struct {
	Users *services.UserService
}

func NewProfileHandler(us *services.UserService) *ProfileHandler {
	return &ProfileHandler{Users: us}
}

// Edit applies the fields present in the body and answers with just
// that profile subset, not the whole user.
func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
		return
	}

	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.Bio != nil {
		if err := validate.Collect(validate.MaxLen("bio", *patch.Bio, 220)); err != nil {
			httpx.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	updated, err := h.Users.EditProfile(r.Context(), u.ID, patch)
	if errors.Is(err, services.ErrNotFound) {
		httpx.Fail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		serverError(w, r, "edit profile", err)
		return
	}

	httpx.OK(w, http.StatusOK, "Profile updated successfully", map[string]any{
		"user": map[string]string{
			"bio":       updated.Bio,
			"github":    updated.Github,
			"linkedin":  updated.Linkedin,
			"twitter":   updated.Twitter,
			"portfolio": updated.Portfolio,
		},
	})
}
