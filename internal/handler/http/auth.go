package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/utils"
	"github.com/openshelf/catalog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.WriteError(w, "Request body cannot be empty", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAndPasswordRequired):
			utils.WriteError(w, "Email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidEmail):
			utils.WriteError(w, "Invalid email address", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteError(w, "Email is already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{
		ID:    registeredUser.ID,
		Email: registeredUser.Email,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.WriteError(w, "Request body cannot be empty", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAndPasswordRequired):
			utils.WriteError(w, "Email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			utils.WriteError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, "Token generation failed", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
