package service

import (
	"context"

	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// DashboardService reads the home screen aggregate.
type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardService struct {
	api      DashboardAPI
	notifier listctl.Notifier
}

func NewDashboardService(api DashboardAPI, n listctl.Notifier) DashboardService {
	return &dashboardService{api: api, notifier: n}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.api.DashboardStats(ctx)
	if err != nil {
		s.notifier.Error(listctl.Describe(err, "Failed to fetch dashboard data"))
		return nil, err
	}
	return stats, nil
}
