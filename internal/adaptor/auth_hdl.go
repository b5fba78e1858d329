package adaptor

import (
	"net/http"

	"secure-it/internal/dto/request"
	"secure-it/internal/usecase"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	// Decode request body
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, h.log, err)
		return
	}

	// Call service
	response, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "signup")
		return
	}

	utils.ResponseCreated(w, response)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, h.log, err)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, response)
}

// Provider handles POST /api/auth/provider
func (h *AuthHandler) Provider(w http.ResponseWriter, r *http.Request) {
	var req request.ProviderLoginRequest

	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, h.log, err)
		return
	}

	response, err := h.service.ProviderLogin(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "provider login")
		return
	}

	utils.ResponseSuccess(w, response)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, utils.OKResponse{OK: true})
}
