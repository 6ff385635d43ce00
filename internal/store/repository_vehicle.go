package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/models"
	"github.com/jackc/pgerrcode"
)

// vehicleRepository is the PostgreSQL-backed implementation of
// [VehicleRepository]. The (plate, country) uniqueness rule lives in the
// table constraint; concurrent registrations race inside the database.
type vehicleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVehicleRepository constructs a [VehicleRepository] backed by the
// provided database connection and logger.
func NewVehicleRepository(db *DB, logger *logger.Logger) VehicleRepository {
	logger.Debug().Msg("creating vehicle repository")
	return &vehicleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVehicle inserts a vehicle row and returns it with server-assigned
// fields. The caller must pass an already normalized plate string.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrVehicleAlreadyRegistered].
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *vehicleRepository) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVehicle, vehicle.UserID, vehicle.LicensePlate, vehicle.CountryIso, vehicle.VehicleType)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*vehicleRepository.CreateVehicle").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Vehicle{}, ErrVehicleAlreadyRegistered
		case pgerrcode.ForeignKeyViolation:
			return models.Vehicle{}, ErrUserNotFound
		default:
			return models.Vehicle{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&vehicle.ID, &vehicle.UserID, &vehicle.LicensePlate, &vehicle.CountryIso, &vehicle.VehicleType, &vehicle.CreatedAt, &vehicle.ModifiedAt); err != nil {
		log.Err(err).Str("func", "*vehicleRepository.CreateVehicle").Msg("error: scanning error")
		return models.Vehicle{}, errors.Join(ErrScanningRow, err)
	}

	return vehicle, nil
}

// FindVehiclesByPlate returns all vehicles registered under the given
// normalized plate. An empty countryIso matches every country; a non-empty
// one narrows the lookup to the single (plate, country) row.
func (r *vehicleRepository) FindVehiclesByPlate(ctx context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildVehiclesByPlateQuery(licensePlate, countryIso)
	if err != nil {
		log.Err(err).Str("func", "*vehicleRepository.FindVehiclesByPlate").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.queryVehicles(ctx, query, args, "*vehicleRepository.FindVehiclesByPlate")
}

// FindVehiclesByUser returns all vehicles owned by the given user, ordered
// by ID.
func (r *vehicleRepository) FindVehiclesByUser(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	return r.queryVehicles(ctx, findVehiclesByUser, []any{userID}, "*vehicleRepository.FindVehiclesByUser")
}

// FindAllVehicles returns every registered vehicle, ordered by ID. Intended
// for the admin listing.
func (r *vehicleRepository) FindAllVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return r.queryVehicles(ctx, findAllVehicles, nil, "*vehicleRepository.FindAllVehicles")
}

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string, args []any, funcName string) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: query failed")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err = rows.Scan(&v.ID, &v.UserID, &v.LicensePlate, &v.CountryIso, &v.VehicleType, &v.CreatedAt, &v.ModifiedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return vehicles, nil
}
