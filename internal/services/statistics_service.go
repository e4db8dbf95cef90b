package services

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

const (
	baseInfoCacheKey = "stats:base_info"
	baseInfoCacheTTL = time.Minute
)

// roundRating rounds an average rating to one decimal place. No reviews means
// an average of 0.0.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

type StatisticsService struct {
	StatisticsRepo *repositories.StatisticsRepository
	OrderRepo      *repositories.OrderRepository
	ProfileRepo    *repositories.ProfileRepository
	Redis          *redis.Client
}

// GetBaseInfo returns the platform counters, served from a short-lived redis
// cache when one is configured. A cache failure falls back to the database.
func (s *StatisticsService) GetBaseInfo(ctx context.Context) (models.BaseInfo, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, baseInfoCacheKey).Bytes()
		if err == nil {
			var info models.BaseInfo
			if err := json.Unmarshal(cached, &info); err == nil {
				return info, nil
			}
		}
	}

	info, err := s.StatisticsRepo.GetBaseInfo(ctx)
	if err != nil {
		return models.BaseInfo{}, err
	}
	info.AverageRating = roundRating(info.AverageRating)

	if s.Redis != nil {
		data, err := json.Marshal(info)
		if err == nil {
			if err := s.Redis.Set(ctx, baseInfoCacheKey, data, baseInfoCacheTTL).Err(); err != nil {
				log.Printf("base info cache write failed: %v", err)
			}
		}
	}
	return info, nil
}

// GetOrderCount returns the in-progress order count for a business user.
func (s *StatisticsService) GetOrderCount(ctx context.Context, businessUserID int) (int, error) {
	exists, err := s.ProfileRepo.ProfileExists(ctx, businessUserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, models.ErrProfileNotFound
	}
	return s.OrderRepo.CountOrdersByStatus(ctx, businessUserID, models.OrderStatusInProgress)
}

// GetCompletedOrderCount returns the completed order count for a business user.
func (s *StatisticsService) GetCompletedOrderCount(ctx context.Context, businessUserID int) (int, error) {
	exists, err := s.ProfileRepo.ProfileExists(ctx, businessUserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, models.ErrProfileNotFound
	}
	return s.OrderRepo.CountOrdersByStatus(ctx, businessUserID, models.OrderStatusCompleted)
}
