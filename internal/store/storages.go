package store

import "github.com/centraplate/registry/internal/logger"

// Storages bundles all repository implementations behind their interfaces so
// the service layer takes a single dependency.
type Storages struct {
	UserRepository    UserRepository
	OtpRepository     OtpRepository
	PlateRepository   PlateRepository
	VehicleRepository VehicleRepository
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		OtpRepository:     NewOtpRepository(db, log),
		PlateRepository:   NewPlateRepository(db, log),
		VehicleRepository: NewVehicleRepository(db, log),
	}
}
