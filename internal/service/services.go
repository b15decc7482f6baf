package service

import (
	"github.com/garagem-inteligente/server/internal/config"
	"github.com/garagem-inteligente/server/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Vehicle     *VehicleService
	Maintenance *MaintenanceService
	Weather     *WeatherService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		Vehicle:     NewVehicleService(repos.Vehicle, repos.User),
		Maintenance: NewMaintenanceService(repos.Maintenance, repos.Vehicle),
		Weather:     NewWeatherService(repos.Forecast, cfg),
	}
}
