package postgres

import (
	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/garagem-inteligente/server/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Vehicle{},
		&domain.MaintenanceRecord{},
		&domain.ForecastCache{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		Vehicle:     NewVehicleRepository(db),
		Maintenance: NewMaintenanceRepository(db),
		Forecast:    NewForecastRepository(db),
	}
}
