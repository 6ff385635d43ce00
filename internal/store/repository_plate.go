package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/models"
	"github.com/jackc/pgerrcode"
)

// plateRepository is the PostgreSQL-backed implementation of
// [PlateRepository]. Uniqueness of claims is delegated entirely to the table
// constraints: concurrent claims of the same plate (or by the same user)
// race inside the database and exactly one INSERT wins.
type plateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlateRepository constructs a [PlateRepository] backed by the provided
// database connection and logger.
func NewPlateRepository(db *DB, logger *logger.Logger) PlateRepository {
	logger.Debug().Msg("creating plate repository")
	return &plateRepository{
		db:     db,
		logger: logger,
	}
}

// ClaimPlate inserts a plate assignment for the user and returns it with
// server-assigned fields. The caller must pass an already normalized plate
// number; the table CHECK constraint rejects anything else.
//
// Error handling dispatches unique violations on the constraint name:
//   - "license_plates_plate_number_key" → [ErrPlateAlreadyTaken].
//   - "license_plates_user_id_key" → [ErrUserAlreadyHasPlate].
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *plateRepository) ClaimPlate(ctx context.Context, userID int64, plateNumber string) (models.PlateAssignment, error) {
	log := logger.FromContext(ctx)

	var assignment models.PlateAssignment
	row := r.db.QueryRowContext(ctx, claimPlate, userID, plateNumber)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*plateRepository.ClaimPlate").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if postgresConstraint(err) == "license_plates_user_id_key" {
				return models.PlateAssignment{}, ErrUserAlreadyHasPlate
			}
			return models.PlateAssignment{}, ErrPlateAlreadyTaken
		case pgerrcode.ForeignKeyViolation:
			return models.PlateAssignment{}, ErrUserNotFound
		default:
			return models.PlateAssignment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&assignment.ID, &assignment.UserID, &assignment.PlateNumber, &assignment.CreatedAt); err != nil {
		log.Err(err).Str("func", "*plateRepository.ClaimPlate").Msg("error: scanning error")
		return models.PlateAssignment{}, errors.Join(ErrScanningRow, err)
	}

	return assignment, nil
}

// FindPlateByNumber retrieves the assignment holding the given normalized
// plate number.
//
// Error handling:
//   - Empty result set → [ErrPlateNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *plateRepository) FindPlateByNumber(ctx context.Context, plateNumber string) (models.PlateAssignment, error) {
	return r.findPlate(ctx, findPlateByNumber, plateNumber, "*plateRepository.FindPlateByNumber")
}

// FindPlateByUser retrieves the assignment owned by the given user.
//
// Error handling mirrors [plateRepository.FindPlateByNumber].
func (r *plateRepository) FindPlateByUser(ctx context.Context, userID int64) (models.PlateAssignment, error) {
	return r.findPlate(ctx, findPlateByUser, userID, "*plateRepository.FindPlateByUser")
}

func (r *plateRepository) findPlate(ctx context.Context, query string, arg any, funcName string) (models.PlateAssignment, error) {
	log := logger.FromContext(ctx)

	var assignment models.PlateAssignment
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return models.PlateAssignment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&assignment.ID, &assignment.UserID, &assignment.PlateNumber, &assignment.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PlateAssignment{}, ErrPlateNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.PlateAssignment{}, errors.Join(ErrScanningRow, err)
	}

	return assignment, nil
}

// FindAllPlates returns every assignment joined with its owner's public
// fields, ordered by assignment ID. Intended for the admin listing.
func (r *plateRepository) FindAllPlates(ctx context.Context) ([]models.PlateOwner, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllPlates)
	if err != nil {
		log.Err(err).Str("func", "*plateRepository.FindAllPlates").Msg("error: query failed")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var owners []models.PlateOwner
	for rows.Next() {
		var po models.PlateOwner
		if err = rows.Scan(&po.ID, &po.UserID, &po.PlateNumber, &po.CreatedAt, &po.OwnerName, &po.OwnerEmail, &po.OwnerVerified); err != nil {
			log.Err(err).Str("func", "*plateRepository.FindAllPlates").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		owners = append(owners, po)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return owners, nil
}
