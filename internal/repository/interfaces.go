package repository

import (
	"context"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	// GetByID loads the vehicle with Owner and SharedWith populated so
	// the access gate can run without further queries.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	// ListVisibleTo returns vehicles the user owns or has been granted
	// shared access to, with Owner populated.
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// DeleteCascade removes the vehicle's maintenance records, its share
	// grants and finally the vehicle row, all in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	AddShare(ctx context.Context, vehicle *domain.Vehicle, user *domain.User) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, record *domain.MaintenanceRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRecord, error)
	// ListByVehicleID returns records newest-first.
	ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByVehicleID(ctx context.Context, vehicleID uuid.UUID) (int64, error)
}

type ForecastRepository interface {
	Get(ctx context.Context, city string) (*domain.ForecastCache, error)
	Upsert(ctx context.Context, cache *domain.ForecastCache) error
}

type Repositories struct {
	User        UserRepository
	Vehicle     VehicleRepository
	Maintenance MaintenanceRepository
	Forecast    ForecastRepository
}
