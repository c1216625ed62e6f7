package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ridepulse/ridepulse/internal/analytics"
	"github.com/ridepulse/ridepulse/internal/domain/models"
	"github.com/ridepulse/ridepulse/internal/storage"
)

// AnalyticsService exposes the windowed earnings analytics computed over the
// persisted trip history.
//
// Each method loads ONE snapshot of the history and runs the pure analytics
// functions over it, so every value in a single response reflects the same
// underlying data. "now" is threaded in by the caller rather than read from
// the wall clock here, which keeps results reproducible in tests.
type AnalyticsService interface {
	GetSummary(ctx context.Context, window models.TimeWindow, now time.Time) (models.Summary, error)
	GetChart(ctx context.Context, window models.TimeWindow, now time.Time, width, height, padding float64) (*models.ChartGeometry, error)
	ListTrips(ctx context.Context, window models.TimeWindow, now time.Time) ([]models.Trip, error)
}

type analyticsService struct {
	repo storage.TripsRepository
}

func NewAnalyticsService(repo storage.TripsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) GetSummary(ctx context.Context, window models.TimeWindow, now time.Time) (models.Summary, error) {
	trips, err := s.repo.ListTrips(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("load trip history: %w", err)
	}
	return analytics.Summarize(analytics.FilterByWindow(trips, window, now)), nil
}

// GetChart projects the filtered history onto the requested canvas.
// analytics.ErrInsufficientData passes through untouched so handlers can
// map it to a distinct response.
func (s *analyticsService) GetChart(ctx context.Context, window models.TimeWindow, now time.Time, width, height, padding float64) (*models.ChartGeometry, error) {
	trips, err := s.repo.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trip history: %w", err)
	}
	return analytics.ProjectChart(analytics.FilterByWindow(trips, window, now), width, height, padding)
}

func (s *analyticsService) ListTrips(ctx context.Context, window models.TimeWindow, now time.Time) ([]models.Trip, error) {
	trips, err := s.repo.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trip history: %w", err)
	}
	return analytics.FilterByWindow(trips, window, now), nil
}
