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

func (h *Handler) addVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.AddVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addVehicle").Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	vehicle, err := h.services.VehicleService.Add(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addVehicle").Msg("error registering vehicle")
		writeError(w, err)
		return
	}

	log.Debug().Int64("user_id", userID).Str("plate", vehicle.LicensePlate).Msg("vehicle registered")

	writeSuccess(w, http.StatusCreated, "vehicle registered", vehicle)
}

func (h *Handler) searchVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	plate := chi.URLParam(r, "plate")
	country := r.URL.Query().Get("country")

	vehicles, err := h.services.VehicleService.Search(ctx, plate, country)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchVehicles").Msg("error searching vehicles")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicles", vehicles)
}

func (h *Handler) allVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, _ := utils.GetRoleFromContext(ctx)

	vehicles, err := h.services.VehicleService.AllVehicles(ctx, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.allVehicles").Msg("error listing vehicles")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicles", vehicles)
}

func (h *Handler) myVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	vehicles, err := h.services.VehicleService.MyVehicles(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.myVehicles").Msg("error fetching own vehicles")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicles", vehicles)
}
