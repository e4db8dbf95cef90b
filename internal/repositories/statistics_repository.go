package repositories

import (
	"context"
	"database/sql"

	"coderrBack/internal/models"
)

type StatisticsRepository struct {
	DB *sql.DB
}

// GetBaseInfo gathers the platform-wide counters in one round per metric.
// All values are plain aggregation queries; rounding happens in the service.
func (r *StatisticsRepository) GetBaseInfo(ctx context.Context) (models.BaseInfo, error) {
	var info models.BaseInfo

	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&info.ReviewCount); err != nil {
		return models.BaseInfo{}, err
	}

	var avg sql.NullFloat64
	if err := r.DB.QueryRowContext(ctx, `SELECT AVG(rating) FROM reviews`).Scan(&avg); err != nil {
		return models.BaseInfo{}, err
	}
	if avg.Valid {
		info.AverageRating = avg.Float64
	}

	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE type = ?`, models.RoleBusiness).Scan(&info.BusinessProfileCount); err != nil {
		return models.BaseInfo{}, err
	}

	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM offers`).Scan(&info.OfferCount); err != nil {
		return models.BaseInfo{}, err
	}

	return info, nil
}
