package services

import (
	"context"
	"fmt"

	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/app/repositories"
	"github.com/longvh/admissions/internal/pkg/helpers"
)

// StatisticsService defines the admin statistics operations
type StatisticsService interface {
	GetOverview(ctx context.Context, dateFrom, dateTo string) (*dto.OverviewStatisticsResponse, error)
}

// statisticsServiceImpl implements StatisticsService
type statisticsServiceImpl struct {
	applicationStore ApplicationStore
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(applicationStore ApplicationStore) StatisticsService {
	return &statisticsServiceImpl{applicationStore: applicationStore}
}

// GetOverview computes the five statistics facets over applications created
// in the given date range. Records with an empty school code are excluded
// from every facet, including the total.
func (s *statisticsServiceImpl) GetOverview(ctx context.Context, dateFrom, dateTo string) (*dto.OverviewStatisticsResponse, error) {
	filter := repositories.ApplicationFilter{
		DateField:     repositories.FilterByCreatedAt,
		RequireSchool: true,
	}

	if dateFrom != "" {
		from, err := helpers.ParseDateLowerBound("dateFrom", dateFrom)
		if err != nil {
			return nil, err
		}
		filter.DateFrom = &from
	}
	if dateTo != "" {
		to, err := helpers.ParseDateUpperBound("dateTo", dateTo)
		if err != nil {
			return nil, err
		}
		filter.DateTo = &to
	}

	stats, err := s.applicationStore.GetOverviewStatistics(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error computing statistics overview: %w", err)
	}

	resp := &dto.OverviewStatisticsResponse{
		TotalApplications: stats.TotalApplications,
		ByStatus:          []dto.StatisticItem{},
		BySchool:          []dto.SchoolStatisticItem{},
		ByMajor:           []dto.StatisticItem{},
		BySubjectGroup:    []dto.StatisticItem{},
	}
	for _, fc := range stats.ByStatus {
		resp.ByStatus = append(resp.ByStatus, dto.StatisticItem{ID: fc.ID, Count: fc.Count})
	}
	for _, fc := range stats.BySchool {
		resp.BySchool = append(resp.BySchool, dto.SchoolStatisticItem{ID: fc.ID, Name: fc.Name, Count: fc.Count})
	}
	for _, fc := range stats.ByMajor {
		resp.ByMajor = append(resp.ByMajor, dto.StatisticItem{ID: fc.ID, Count: fc.Count})
	}
	for _, fc := range stats.BySubjectGroup {
		resp.BySubjectGroup = append(resp.BySubjectGroup, dto.StatisticItem{ID: fc.ID, Count: fc.Count})
	}

	return resp, nil
}
