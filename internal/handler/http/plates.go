package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/internal/utils"
	"github.com/centraplate/registry/models"
)

func (h *Handler) assignPlate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.AssignPlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.assignPlate").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	assignment, err := h.services.PlateService.Assign(ctx, userID, req.PlateNumber)
	if err != nil {
		log.Err(err).Str("func", "*Handler.assignPlate").Msg("error assigning plate")
		writeError(w, err)
		return
	}

	log.Debug().Int64("user_id", userID).Str("plate", assignment.PlateNumber).Msg("plate assigned")

	writeSuccess(w, http.StatusCreated, "plate assigned", assignment)
}

func (h *Handler) searchPlate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	plate := chi.URLParam(r, "plate")

	assignment, err := h.services.PlateService.Search(ctx, plate)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchPlate").Msg("error searching plate")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "plate found", assignment)
}

func (h *Handler) myPlate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	assignment, err := h.services.PlateService.MyPlate(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.myPlate").Msg("error fetching own plate")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "plate", assignment)
}

func (h *Handler) allPlates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, _ := utils.GetRoleFromContext(ctx)

	plates, err := h.services.PlateService.AllPlates(ctx, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.allPlates").Msg("error listing plates")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "plates", plates)
}
