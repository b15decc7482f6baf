package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MaintenanceRecord struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Description string    `json:"descricaoServico" gorm:"not null"`
	Date        time.Time `json:"data" gorm:"not null;index"`
	Cost        float64   `json:"custo" gorm:"not null"`
	Odometer    *float64  `json:"quilometragem,omitempty"`
	VehicleID   uuid.UUID `json:"veiculoId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MaintenanceAttrs carries the caller-supplied fields for a new record.
// A zero Date means "now".
type MaintenanceAttrs struct {
	Description string
	Date        time.Time
	Cost        float64
	Odometer    *float64
}

func (a MaintenanceAttrs) Validate() error {
	if strings.TrimSpace(a.Description) == "" {
		return fmt.Errorf("%w: a descrição do serviço é obrigatória", ErrValidation)
	}
	if a.Cost < 0 {
		return fmt.Errorf("%w: o custo não pode ser um valor negativo", ErrValidation)
	}
	if a.Odometer != nil && *a.Odometer < 0 {
		return fmt.Errorf("%w: a quilometragem não pode ser um valor negativo", ErrValidation)
	}
	return nil
}
