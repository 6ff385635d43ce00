package service

import (
	"context"

	"github.com/centraplate/registry/models"
)

// AuthService orchestrates the account lifecycle: registration with passcode
// issuance, verification, login, profile mutation and deletion. Caller
// identity always comes from the verified token subject, never from a
// client-supplied id.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error)
	VerifyOtp(ctx context.Context, email string, code string) (models.AuthResult, error)
	Login(ctx context.Context, email string, password string) (models.AuthResult, error)

	Profile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword string, newPassword string) error
	DeleteAccount(ctx context.Context, userID int64, password string) error
	AllUsers(ctx context.Context, callerRole string) ([]models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PlateService manages license plate assignments on top of the uniqueness
// constraints enforced by the store.
type PlateService interface {
	Assign(ctx context.Context, userID int64, plateNumber string) (models.PlateAssignment, error)
	Search(ctx context.Context, plateNumber string) (models.PlateAssignment, error)
	MyPlate(ctx context.Context, userID int64) (models.PlateAssignment, error)
	AllPlates(ctx context.Context, callerRole string) ([]models.PlateOwner, error)
}

// VehicleService manages vehicle registrations keyed by (plate, country).
type VehicleService interface {
	Add(ctx context.Context, userID int64, req models.AddVehicleRequest) (models.Vehicle, error)
	Search(ctx context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error)
	MyVehicles(ctx context.Context, userID int64) ([]models.Vehicle, error)
	AllVehicles(ctx context.Context, callerRole string) ([]models.Vehicle, error)
}
