package service

import (
	"github.com/centraplate/registry/internal/config"
	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/mailer"
	"github.com/centraplate/registry/internal/store"
)

type Services struct {
	AuthService    AuthService
	PlateService   PlateService
	VehicleService VehicleService
}

func NewServices(storages *store.Storages, sender mailer.Mailer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages, sender, cfg, logger),
		PlateService:   NewPlateService(storages.PlateRepository, logger),
		VehicleService: NewVehicleService(storages.VehicleRepository, logger),
	}
}
