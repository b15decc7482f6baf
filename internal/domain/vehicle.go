package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "Carro"
	VehicleTypeMotorcycle VehicleType = "Moto"
	VehicleTypeTruck      VehicleType = "Caminhao"
)

const MinVehicleYear = 1900

type Vehicle struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Plate      string      `json:"placa" gorm:"uniqueIndex;not null"`
	Make       string      `json:"marca" gorm:"not null"`
	Model      string      `json:"modelo" gorm:"not null"`
	Year       int         `json:"ano" gorm:"not null"`
	Color      string      `json:"cor"`
	Type       VehicleType `json:"tipo" gorm:"not null"`
	OwnerID    uuid.UUID   `json:"ownerId" gorm:"type:uuid;not null;index"`
	Owner      User        `json:"-" gorm:"foreignKey:OwnerID"`
	SharedWith []User      `json:"-" gorm:"many2many:vehicle_shares;"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// NormalizePlate uppercases and trims a plate. Uniqueness is enforced on
// the normalized form, globally across all owners.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// VehicleAttrs carries the caller-supplied fields for create and update.
// Plate is expected pre-normalized.
type VehicleAttrs struct {
	Plate string
	Make  string
	Model string
	Year  int
	Color string
	Type  VehicleType
}

func (a VehicleAttrs) Validate() error {
	if a.Plate == "" {
		return fmt.Errorf("%w: a placa é obrigatória", ErrValidation)
	}
	if a.Make == "" {
		return fmt.Errorf("%w: a marca é obrigatória", ErrValidation)
	}
	if a.Model == "" {
		return fmt.Errorf("%w: o modelo é obrigatório", ErrValidation)
	}
	if a.Year < MinVehicleYear {
		return fmt.Errorf("%w: o ano deve ser no mínimo %d", ErrValidation, MinVehicleYear)
	}
	if maxYear := time.Now().Year() + 1; a.Year > maxYear {
		return fmt.Errorf("%w: o ano não pode ser no futuro", ErrValidation)
	}
	switch a.Type {
	case VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeTruck:
	default:
		return fmt.Errorf("%w: tipo de veículo inválido", ErrValidation)
	}
	return nil
}

// IsSharedWith reports whether userID is in the vehicle's shared set.
// Requires SharedWith to be loaded.
func (v *Vehicle) IsSharedWith(userID uuid.UUID) bool {
	for _, u := range v.SharedWith {
		if u.ID == userID {
			return true
		}
	}
	return false
}
