package service

import (
	"context"
	"errors"
	"time"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/garagem-inteligente/server/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleService struct {
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, userRepo repository.UserRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
	}
}

type VehicleInput struct {
	Plate string
	Make  string
	Model string
	Year  int
	Color string
	Type  domain.VehicleType
}

func (in VehicleInput) attrs() domain.VehicleAttrs {
	return domain.VehicleAttrs{
		Plate: domain.NormalizePlate(in.Plate),
		Make:  in.Make,
		Model: in.Model,
		Year:  in.Year,
		Color: in.Color,
		Type:  in.Type,
	}
}

func (s *VehicleService) Create(ctx context.Context, ownerID uuid.UUID, input VehicleInput) (*domain.Vehicle, error) {
	attrs := input.attrs()
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	// Plates are unique across all owners, not per owner.
	if existing, err := s.vehicleRepo.GetByPlate(ctx, attrs.Plate); err == nil && existing != nil {
		return nil, domain.ErrPlateExists
	}

	vehicle := &domain.Vehicle{
		ID:        uuid.New(),
		Plate:     attrs.Plate,
		Make:      attrs.Make,
		Model:     attrs.Model,
		Year:      attrs.Year,
		Color:     attrs.Color,
		Type:      attrs.Type,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	// Reload with Owner populated for the response.
	return s.vehicleRepo.GetByID(ctx, vehicle.ID)
}

func (s *VehicleService) ListVisible(ctx context.Context, userID uuid.UUID) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.ListVisibleTo(ctx, userID)
}

// Get returns a vehicle if the caller may read it. Vehicles outside the
// caller's visible set answer not-found, never forbidden, so existence is
// not leaked.
func (s *VehicleService) Get(ctx context.Context, vehicleID, callerID uuid.UUID) (*domain.Vehicle, error) {
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
	return vehicle, nil
}

// Update is owner-only. A shared viewer gets forbidden; an outsider gets
// not-found.
func (s *VehicleService) Update(ctx context.Context, vehicleID, callerID uuid.UUID, input VehicleInput) (*domain.Vehicle, error) {
	vehicle, err := s.Get(ctx, vehicleID, callerID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(vehicle, callerID, domain.AccessDelete) {
		return nil, domain.ErrForbidden
	}

	attrs := input.attrs()
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	if attrs.Plate != vehicle.Plate {
		if existing, err := s.vehicleRepo.GetByPlate(ctx, attrs.Plate); err == nil && existing != nil {
			return nil, domain.ErrPlateExists
		}
	}

	vehicle.Plate = attrs.Plate
	vehicle.Make = attrs.Make
	vehicle.Model = attrs.Model
	vehicle.Year = attrs.Year
	vehicle.Color = attrs.Color
	vehicle.Type = attrs.Type
	vehicle.UpdatedAt = time.Now()

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetByID(ctx, vehicle.ID)
}

// Delete is owner-only and cascades: every maintenance record of the
// vehicle is removed with it, atomically.
func (s *VehicleService) Delete(ctx context.Context, vehicleID, callerID uuid.UUID) error {
	vehicle, err := s.Get(ctx, vehicleID, callerID)
	if err != nil {
		return err
	}
	if !domain.CanAccess(vehicle, callerID, domain.AccessDelete) {
		return domain.ErrForbidden
	}

	return s.vehicleRepo.DeleteCascade(ctx, vehicle.ID)
}

// Share grants read/write access to another user. Owner-only, recipient
// must exist, the owner cannot share with themself, and re-sharing with
// the same user is a no-op.
func (s *VehicleService) Share(ctx context.Context, vehicleID, callerID uuid.UUID, targetEmail string) error {
	vehicle, err := s.Get(ctx, vehicleID, callerID)
	if err != nil {
		return err
	}
	if !domain.CanAccess(vehicle, callerID, domain.AccessShare) {
		return domain.ErrForbidden
	}

	recipient, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(targetEmail))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipientNotFound
		}
		return err
	}

	if recipient.ID == vehicle.OwnerID {
		return domain.ErrSelfShare
	}

	return s.vehicleRepo.AddShare(ctx, vehicle, recipient)
}
