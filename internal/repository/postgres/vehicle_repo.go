package postgres

import (
	"context"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *vehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	// The owner row already exists; never let gorm upsert associations.
	return r.db.WithContext(ctx).Omit("Owner", "SharedWith").Create(vehicle).Error
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("SharedWith").
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "plate = ?", plate).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*domain.Vehicle, error) {
	var vehicles []*domain.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("SharedWith").
		Joins("LEFT JOIN vehicle_shares vs ON vs.vehicle_id = vehicles.id AND vs.user_id = ?", userID).
		Where("vehicles.owner_id = ? OR vs.user_id IS NOT NULL", userID).
		Distinct().
		Order("vehicles.created_at DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	// Save without touching associations; share grants change only
	// through AddShare.
	return r.db.WithContext(ctx).Omit("Owner", "SharedWith").Save(vehicle).Error
}

func (r *vehicleRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	// Records first, vehicle last: a failure in between never leaves
	// orphaned records, and the transaction makes the pair atomic.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&domain.MaintenanceRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM vehicle_shares WHERE vehicle_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Vehicle{}, "id = ?", id).Error
	})
}

func (r *vehicleRepository) AddShare(ctx context.Context, vehicle *domain.Vehicle, user *domain.User) error {
	// Append on a many2many upserts the join row, so re-sharing with the
	// same user is a no-op.
	return r.db.WithContext(ctx).Model(vehicle).Association("SharedWith").Append(user)
}
