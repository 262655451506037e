package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	"github.com/ecanay/blogfolio-backend/internal/api/validate"
	"github.com/ecanay/blogfolio-backend/internal/auth"
	"github.com/ecanay/blogfolio-backend/internal/middleware"
	"github.com/ecanay/blogfolio-backend/internal/models"
	"github.com/ecanay/blogfolio-backend/internal/services"
)

type AuthHandler struct {
	Users   *services.UserService
	TM      *auth.TokenManager
	Cookies auth.Cookies
}

func NewAuthHandler(us *services.UserService, tm *auth.TokenManager, cookies auth.Cookies) *AuthHandler {
	return &AuthHandler{Users: us, TM: tm, Cookies: cookies}
}

type signupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" || req.Gender == "" {
		httpx.Fail(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if err := validate.Collect(
		validate.LenBetween("username", req.Username, 3, 20),
		validate.Email("email", req.Email),
		validate.MinLen("password", req.Password, 6),
		validate.OneOf("gender", req.Gender, string(models.GenderBoy), string(models.GenderGirl)),
	); err != nil {
		httpx.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.Users.Signup(r.Context(), req.Username, req.Email, req.Password, models.Gender(req.Gender))
	if errors.Is(err, services.ErrUserExists) {
		httpx.Fail(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		serverError(w, r, "signup", err)
		return
	}

	token, err := h.TM.Generate(u.ID)
	if err != nil {
		serverError(w, r, "signup token", err)
		return
	}
	h.Cookies.Set(w, token)
	httpx.OK(w, http.StatusCreated, "User created successfully", map[string]any{
		"user":  u,
		"token": token,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Fail(w, http.StatusBadRequest, "All fields are required")
		return
	}

	u, err := h.Users.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.Fail(w, http.StatusBadRequest, "Password doesn't match")
		return
	case err != nil:
		serverError(w, r, "login", err)
		return
	}

	token, err := h.TM.Generate(u.ID)
	if err != nil {
		serverError(w, r, "login token", err)
		return
	}
	h.Cookies.Set(w, token)
	httpx.OK(w, http.StatusOK, "Logged in successfully", map[string]any{
		"user":  u,
		"token": token,
	})
}

// Logout clears the cookie unconditionally; calling it without a
// session is fine.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Cookies.Clear(w)
	httpx.OK(w, http.StatusOK, "User logged out successfully", nil)
}

// Me returns the authenticated user so the SPA can rehydrate its
// session cache after a reload.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
		return
	}
	httpx.OK(w, http.StatusOK, "User fetched successfully", map[string]any{"user": u})
}
