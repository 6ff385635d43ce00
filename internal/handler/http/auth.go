package http

import (
	"encoding/json"
	"net/http"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("error registering account")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", result.User.ID).Strs("warnings", result.Warnings).Msg("account registered")

	message := "account registered, verification code sent"
	if len(result.Warnings) > 0 {
		message = "account registered with warnings"
	}

	writeSuccess(w, http.StatusCreated, message, result)
}

func (h *Handler) verifyOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.verifyOtp").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	result, err := h.services.AuthService.VerifyOtp(ctx, req.Email, req.Otp)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyOtp").Msg("error verifying account")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", result.User.ID).Msg("account verified")

	writeSuccess(w, http.StatusOK, "account verified", result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", result.User.ID).Msg("user successfully logged in")

	writeSuccess(w, http.StatusOK, "logged in", result)
}
