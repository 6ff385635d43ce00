package service

import (
	"context"
	"fmt"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/store"
	"github.com/centraplate/registry/models"
)

// plateService is the concrete implementation of PlateService. It normalizes
// plate strings before every store call; the store's unique constraints are
// the authoritative guard, so two concurrent claims of the same plate
// resolve to exactly one success.
type plateService struct {
	plateRepository store.PlateRepository
	logger          *logger.Logger
}

// NewPlateService constructs a PlateService backed by the given repository.
func NewPlateService(plateRepository store.PlateRepository, logger *logger.Logger) PlateService {
	return &plateService{
		plateRepository: plateRepository,
		logger:          logger,
	}
}

// Assign claims a plate for the caller. The plate is normalized first; an
// already-taken plate or a second claim by the same user surfaces as the
// corresponding store sentinel.
func (p *plateService) Assign(ctx context.Context, userID int64, plateNumber string) (models.PlateAssignment, error) {
	log := logger.FromContext(ctx)

	normalized := models.NormalizePlate(plateNumber)
	if normalized == "" {
		return models.PlateAssignment{}, ErrInvalidDataProvided
	}

	assignment, err := p.plateRepository.ClaimPlate(ctx, userID, normalized)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("plate", normalized).Msg("plate claim failed")
		return models.PlateAssignment{}, fmt.Errorf("plate claim failed: %w", err)
	}

	log.Info().Int64("userID", userID).Str("plate", normalized).Msg("plate claimed")
	return assignment, nil
}

// Search looks up the assignment holding the given plate. Either the stored
// or the raw form of the plate hits, since both sides are normalized.
func (p *plateService) Search(ctx context.Context, plateNumber string) (models.PlateAssignment, error) {
	log := logger.FromContext(ctx)

	normalized := models.NormalizePlate(plateNumber)
	if normalized == "" {
		return models.PlateAssignment{}, ErrInvalidDataProvided
	}

	assignment, err := p.plateRepository.FindPlateByNumber(ctx, normalized)
	if err != nil {
		log.Err(err).Str("plate", normalized).Msg("plate search failed")
		return models.PlateAssignment{}, fmt.Errorf("plate search failed: %w", err)
	}

	return assignment, nil
}

// MyPlate returns the caller's own assignment.
func (p *plateService) MyPlate(ctx context.Context, userID int64) (models.PlateAssignment, error) {
	log := logger.FromContext(ctx)

	assignment, err := p.plateRepository.FindPlateByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("own plate lookup failed")
		return models.PlateAssignment{}, fmt.Errorf("own plate lookup failed: %w", err)
	}

	return assignment, nil
}

// AllPlates returns every assignment joined with its owner. Admin only.
func (p *plateService) AllPlates(ctx context.Context, callerRole string) ([]models.PlateOwner, error) {
	if callerRole != models.RoleAdmin {
		return nil, ErrAdminOnly
	}

	owners, err := p.plateRepository.FindAllPlates(ctx)
	if err != nil {
		return nil, fmt.Errorf("plate listing failed: %w", err)
	}

	return owners, nil
}
