package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/garagem-inteligente/server/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	vehicleRepo     repository.VehicleRepository
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, vehicleRepo repository.VehicleRepository) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
	}
}

type MaintenanceInput struct {
	Description string
	Date        time.Time
	Cost        float64
	Odometer    *float64
}

// gate resolves the vehicle and checks the caller against it. Invisible
// vehicles answer not-found regardless of mode.
func (s *MaintenanceService) gate(ctx context.Context, vehicleID, callerID uuid.UUID, mode domain.AccessMode) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	if !domain.CanAccess(vehicle, callerID, domain.AccessRead) {
		return nil, domain.ErrVehicleNotFound
	}
	if !domain.CanAccess(vehicle, callerID, mode) {
		return nil, domain.ErrForbidden
	}
	return vehicle, nil
}

func (s *MaintenanceService) Create(ctx context.Context, vehicleID, callerID uuid.UUID, input MaintenanceInput) (*domain.MaintenanceRecord, error) {
	if _, err := s.gate(ctx, vehicleID, callerID, domain.AccessWrite); err != nil {
		return nil, err
	}

	attrs := domain.MaintenanceAttrs{
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		Cost:        input.Cost,
		Odometer:    input.Odometer,
	}
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	if attrs.Date.IsZero() {
		attrs.Date = time.Now()
	}

	record := &domain.MaintenanceRecord{
		ID:          uuid.New(),
		Description: attrs.Description,
		Date:        attrs.Date,
		Cost:        attrs.Cost,
		Odometer:    attrs.Odometer,
		VehicleID:   vehicleID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.maintenanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *MaintenanceService) ListForVehicle(ctx context.Context, vehicleID, callerID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	if _, err := s.gate(ctx, vehicleID, callerID, domain.AccessRead); err != nil {
		return nil, err
	}
	return s.maintenanceRepo.ListByVehicleID(ctx, vehicleID)
}

// Delete removes a single record. The caller must hold write access on
// the parent vehicle; a record whose parent is invisible to the caller
// answers not-found.
func (s *MaintenanceService) Delete(ctx context.Context, recordID, callerID uuid.UUID) error {
	record, err := s.maintenanceRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMaintenanceNotFound
		}
		return err
	}

	if _, err := s.gate(ctx, record.VehicleID, callerID, domain.AccessWrite); err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return domain.ErrMaintenanceNotFound
		}
		return err
	}

	return s.maintenanceRepo.Delete(ctx, recordID)
}
