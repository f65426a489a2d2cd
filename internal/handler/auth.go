package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister registers a new user (POST /api/auth/register).
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendResponse(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		sendResponse(w, http.StatusBadRequest, false, "All fields are required", nil)
		return
	}

	if _, err := h.userService.Register(req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			sendResponse(w, http.StatusBadRequest, false, "Email already registered", nil)
			return
		}
		slog.Error("registration failed", "error", err)
		sendResponse(w, http.StatusInternalServerError, false, "Server error", nil)
		return
	}

	sendResponse(w, http.StatusCreated, true, "User registered successfully", nil)
}

// HandleLogin authenticates a user and issues a session token
// (POST /api/auth/login).
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendResponse(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		sendResponse(w, http.StatusBadRequest, false, "Email and password are required", nil)
		return
	}

	user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			sendResponse(w, http.StatusUnauthorized, false, "Invalid credentials", nil)
			return
		}
		slog.Error("login failed", "error", err)
		sendResponse(w, http.StatusInternalServerError, false, "Server error", nil)
		return
	}

	token, err := h.tokens.Issue(user.ID.String(), user.Username)
	if err != nil {
		slog.Error("token issuance failed", "error", err)
		sendResponse(w, http.StatusInternalServerError, false, "Server error", nil)
		return
	}

	sendResponse(w, http.StatusOK, true, "Login successful", map[string]string{"token": token})
}
