package postgres

import (
	"context"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *maintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, record *domain.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRecord, error) {
	var record domain.MaintenanceRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *maintenanceRepository) ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	var records []*domain.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.MaintenanceRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *maintenanceRepository) CountByVehicleID(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Where("vehicle_id = ?", vehicleID).
		Count(&count).Error
	return count, err
}
