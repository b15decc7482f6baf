package postgres

import (
	"context"

	"github.com/garagem-inteligente/server/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type forecastRepository struct {
	db *gorm.DB
}

func NewForecastRepository(db *gorm.DB) *forecastRepository {
	return &forecastRepository{db: db}
}

func (r *forecastRepository) Get(ctx context.Context, city string) (*domain.ForecastCache, error) {
	var cache domain.ForecastCache
	err := r.db.WithContext(ctx).First(&cache, "city = ?", city).Error
	if err != nil {
		return nil, err
	}
	return &cache, nil
}

func (r *forecastRepository) Upsert(ctx context.Context, cache *domain.ForecastCache) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "city"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "fetched_at"}),
		}).
		Create(cache).Error
}
