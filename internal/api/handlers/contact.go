package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	"github.com/ecanay/blogfolio-backend/internal/api/validate"
	"github.com/ecanay/blogfolio-backend/internal/services"
)

type ContactHandler struct {
	Contact *services.ContactService
}

func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{Contact: cs}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req contactReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		httpx.Fail(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if err := validate.Collect(validate.Email("email", req.Email)); err != nil {
		httpx.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Contact.Send(r.Context(), req.Name, req.Email, req.Message); err != nil {
		serverError(w, r, "contact email", err)
		return
	}
	httpx.OK(w, http.StatusOK, "Message sent successfully", nil)
}
