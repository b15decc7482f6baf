package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ForecastCache stores the raw upstream forecast payload per city so that
// repeated lookups inside the TTL skip the third-party API.
type ForecastCache struct {
	City      string         `json:"city" gorm:"primaryKey"`
	Payload   datatypes.JSON `json:"payload" gorm:"not null"`
	FetchedAt time.Time      `json:"fetchedAt" gorm:"not null"`
}

// Fresh reports whether the cached payload is still inside the TTL.
func (f *ForecastCache) Fresh(ttl time.Duration, now time.Time) bool {
	return now.Sub(f.FetchedAt) < ttl
}
