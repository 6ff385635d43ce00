package store

import (
	"context"
	"time"

	"github.com/centraplate/registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table. Lookup methods
// populate the derived IsVerified field from the passcode ledger.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// OtpRepository manages the one-time passcode ledger. Records are append-only
// except for the one-way redeemed flag.
type OtpRepository interface {
	IssueOtp(ctx context.Context, record models.OtpRecord) (models.OtpRecord, error)
	LatestUnredeemedOtp(ctx context.Context, userID int64) (models.OtpRecord, error)
	RedeemOtp(ctx context.Context, otpID int64) error
	IsUserVerified(ctx context.Context, userID int64) (bool, error)
	PurgeExpiredOtps(ctx context.Context, now time.Time) (int64, error)
}

// PlateRepository manages license plate assignments. Uniqueness of the plate
// number and the one-plate-per-user rule are enforced by database
// constraints, not by application-level checks.
type PlateRepository interface {
	ClaimPlate(ctx context.Context, userID int64, plateNumber string) (models.PlateAssignment, error)
	FindPlateByNumber(ctx context.Context, plateNumber string) (models.PlateAssignment, error)
	FindPlateByUser(ctx context.Context, userID int64) (models.PlateAssignment, error)
	FindAllPlates(ctx context.Context) ([]models.PlateOwner, error)
}

// VehicleRepository manages registered vehicles. The (plate, country) pair is
// unique across all rows via a database constraint.
type VehicleRepository interface {
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	FindVehiclesByPlate(ctx context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error)
	FindVehiclesByUser(ctx context.Context, userID int64) ([]models.Vehicle, error)
	FindAllVehicles(ctx context.Context) ([]models.Vehicle, error)
}
