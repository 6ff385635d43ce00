package service

import (
	"context"
	"fmt"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/store"
	"github.com/centraplate/registry/models"
)

// vehicleService is the concrete implementation of VehicleService. The
// (plate, country) uniqueness rule lives in the store's constraint.
type vehicleService struct {
	vehicleRepository store.VehicleRepository
	logger            *logger.Logger
}

// NewVehicleService constructs a VehicleService backed by the given repository.
func NewVehicleService(vehicleRepository store.VehicleRepository, logger *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepository: vehicleRepository,
		logger:            logger,
	}
}

// Add registers a vehicle for the caller. The plate is normalized first; a
// duplicate (plate, country) pair surfaces as
// store.ErrVehicleAlreadyRegistered.
func (v *vehicleService) Add(ctx context.Context, userID int64, req models.AddVehicleRequest) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	normalized := models.NormalizePlate(req.LicensePlate)
	if normalized == "" || req.CountryIso == "" {
		return models.Vehicle{}, ErrInvalidDataProvided
	}

	vehicle, err := v.vehicleRepository.CreateVehicle(ctx, models.Vehicle{
		UserID:       userID,
		LicensePlate: normalized,
		CountryIso:   req.CountryIso,
		VehicleType:  req.VehicleType,
	})
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("plate", normalized).Msg("vehicle registration failed")
		return models.Vehicle{}, fmt.Errorf("vehicle registration failed: %w", err)
	}

	log.Info().Int64("userID", userID).Str("plate", normalized).Msg("vehicle registered")
	return vehicle, nil
}

// Search returns the vehicles registered under the given plate. An empty
// countryIso matches every country; a plate with no registrations at all
// surfaces as store.ErrVehicleNotFound.
func (v *vehicleService) Search(ctx context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	normalized := models.NormalizePlate(licensePlate)
	if normalized == "" {
		return nil, ErrInvalidDataProvided
	}

	vehicles, err := v.vehicleRepository.FindVehiclesByPlate(ctx, normalized, countryIso)
	if err != nil {
		log.Err(err).Str("plate", normalized).Msg("vehicle search failed")
		return nil, fmt.Errorf("vehicle search failed: %w", err)
	}

	if len(vehicles) == 0 {
		return nil, store.ErrVehicleNotFound
	}

	return vehicles, nil
}

// AllVehicles returns every registered vehicle. Admin only.
func (v *vehicleService) AllVehicles(ctx context.Context, callerRole string) ([]models.Vehicle, error) {
	if callerRole != models.RoleAdmin {
		return nil, ErrAdminOnly
	}

	vehicles, err := v.vehicleRepository.FindAllVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("vehicle listing failed: %w", err)
	}

	return vehicles, nil
}

// MyVehicles returns the caller's own vehicles.
func (v *vehicleService) MyVehicles(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	vehicles, err := v.vehicleRepository.FindVehiclesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("own vehicles lookup failed")
		return nil, fmt.Errorf("own vehicles lookup failed: %w", err)
	}

	return vehicles, nil
}
