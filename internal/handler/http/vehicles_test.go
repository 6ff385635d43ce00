package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/internal/store"
	"github.com/centraplate/registry/models"
)

func TestAddVehicle_Success(t *testing.T) {
	vehicles := &mockVehicleService{
		addFn: func(_ context.Context, userID int64, req models.AddVehicleRequest) (models.Vehicle, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "AB123CD", req.LicensePlate)
			assert.Equal(t, "US", req.CountryIso)
			return models.Vehicle{ID: 3, UserID: userID, LicensePlate: req.LicensePlate, CountryIso: req.CountryIso}, nil
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	body := jsonBody(t, models.AddVehicleRequest{LicensePlate: "AB123CD", CountryIso: "US", VehicleType: "Car"})
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/vehicles/add", body), 42, models.RoleUser)
	rec := httptest.NewRecorder()

	h.addVehicle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Status)
}

func TestAddVehicle_Duplicate(t *testing.T) {
	vehicles := &mockVehicleService{
		addFn: func(_ context.Context, _ int64, _ models.AddVehicleRequest) (models.Vehicle, error) {
			return models.Vehicle{}, store.ErrVehicleAlreadyRegistered
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	body := jsonBody(t, models.AddVehicleRequest{LicensePlate: "AB123CD", CountryIso: "US"})
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/vehicles/add", body), 42, models.RoleUser)
	rec := httptest.NewRecorder()

	h.addVehicle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, store.ErrVehicleAlreadyRegistered.Error(), resp.Message)
}

func TestSearchVehicles_WithCountryFilter(t *testing.T) {
	vehicles := &mockVehicleService{
		searchFn: func(_ context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error) {
			assert.Equal(t, "AB123CD", licensePlate)
			assert.Equal(t, "US", countryIso)
			return []models.Vehicle{{ID: 3, LicensePlate: licensePlate, CountryIso: countryIso}}, nil
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/search/AB123CD?country=US", nil)
	req = withCaller(withPlateParam(req, "AB123CD"), 42, models.RoleUser)
	rec := httptest.NewRecorder()

	h.searchVehicles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchVehicles_NoCountryFilter(t *testing.T) {
	vehicles := &mockVehicleService{
		searchFn: func(_ context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error) {
			assert.Equal(t, "AB123CD", licensePlate)
			assert.Empty(t, countryIso)
			return []models.Vehicle{
				{ID: 3, LicensePlate: licensePlate, CountryIso: "US"},
				{ID: 4, LicensePlate: licensePlate, CountryIso: "DE"},
			}, nil
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/search/AB123CD", nil)
	req = withCaller(withPlateParam(req, "AB123CD"), 42, models.RoleUser)
	rec := httptest.NewRecorder()

	h.searchVehicles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchVehicles_NotFound(t *testing.T) {
	vehicles := &mockVehicleService{
		searchFn: func(_ context.Context, _ string, _ string) ([]models.Vehicle, error) {
			return nil, store.ErrVehicleNotFound
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/search/ZZ999ZZ", nil)
	req = withCaller(withPlateParam(req, "ZZ999ZZ"), 42, models.RoleUser)
	rec := httptest.NewRecorder()

	h.searchVehicles(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Status)
	assert.Equal(t, store.ErrVehicleNotFound.Error(), resp.Message)
}

func TestMyVehicles_Success(t *testing.T) {
	vehicles := &mockVehicleService{
		myVehiclesFn: func(_ context.Context, userID int64) ([]models.Vehicle, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Vehicle{{ID: 3, UserID: userID, LicensePlate: "AB123CD"}}, nil
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/vehicles/my", nil), 42, models.RoleUser)
	rec := httptest.NewRecorder()

	h.myVehicles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAllVehicles_Forbidden(t *testing.T) {
	vehicles := &mockVehicleService{
		allVehiclesFn: func(_ context.Context, callerRole string) ([]models.Vehicle, error) {
			assert.Equal(t, models.RoleUser, callerRole)
			return nil, service.ErrAdminOnly
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/vehicles/all", nil), 42, models.RoleUser)
	rec := httptest.NewRecorder()

	h.allVehicles(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAllVehicles_Success(t *testing.T) {
	vehicles := &mockVehicleService{
		allVehiclesFn: func(_ context.Context, callerRole string) ([]models.Vehicle, error) {
			assert.Equal(t, models.RoleAdmin, callerRole)
			return []models.Vehicle{
				{ID: 3, UserID: 42, LicensePlate: "AB123CD", CountryIso: "US"},
				{ID: 4, UserID: 43, LicensePlate: "XY987ZT", CountryIso: "DE"},
			}, nil
		},
	}

	h := newTestHandler(t, nil, nil, vehicles)
	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/vehicles/all", nil), 1, models.RoleAdmin)
	rec := httptest.NewRecorder()

	h.allVehicles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Status)
}
