package http

import (
	"encoding/json"
	"net/http"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/internal/utils"
	"github.com/centraplate/registry/models"
)

// callerID extracts the authenticated user's ID placed in the context by the
// auth middleware. A missing ID means the route was wired without the
// middleware, which is a server fault rather than a client one.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.APIResponse{
			Status:  false,
			Message: http.StatusText(http.StatusInternalServerError),
			Error:   http.StatusText(http.StatusInternalServerError),
		}, http.StatusInternalServerError)
	}
	return userID, ok
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Profile(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profile").Msg("error fetching profile")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "profile", user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("error updating profile")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "profile updated", user)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.changePassword").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		log.Err(err).Str("func", "*Handler.changePassword").Msg("error changing password")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "password changed", nil)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAccount").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.DeleteAccount(ctx, userID, req.Password); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAccount").Msg("error deleting account")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", userID).Msg("account deleted")

	writeSuccess(w, http.StatusOK, "account deleted", nil)
}

func (h *Handler) allUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, _ := utils.GetRoleFromContext(ctx)

	users, err := h.services.AuthService.AllUsers(ctx, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.allUsers").Msg("error listing users")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "users", users)
}
