package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/app/repositories"
	"github.com/longvh/admissions/internal/pkg/apperrors"
)

func TestGetOverview_FiltersByCreationDateAndRequiresSchool(t *testing.T) {
	store := &fakeApplicationStore{stats: &models.OverviewStatistics{}}
	svc := NewStatisticsService(store)

	_, err := svc.GetOverview(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)

	assert.Equal(t, repositories.FilterByCreatedAt, store.lastFilter.DateField)
	assert.True(t, store.lastFilter.RequireSchool)
	require.NotNil(t, store.lastFilter.DateFrom)
	require.NotNil(t, store.lastFilter.DateTo)
	assert.True(t, store.lastFilter.DateFrom.Before(*store.lastFilter.DateTo))
}

func TestGetOverview_StatusCountsSumToTotal(t *testing.T) {
	store := &fakeApplicationStore{
		stats: &models.OverviewStatistics{
			TotalApplications: 10,
			ByStatus: []models.FacetCount{
				{ID: "PENDING", Count: 6},
				{ID: "APPROVED", Count: 3},
				{ID: "CANCEL", Count: 1},
			},
			BySchool: []models.SchoolFacetCount{
				{ID: "BKHN", Name: "Đại học Bách khoa Hà Nội", Count: 7},
				{ID: "GHOST", Name: "GHOST", Count: 3},
			},
			ByMajor:        []models.FacetCount{{ID: "CS01", Count: 10}},
			BySubjectGroup: []models.FacetCount{{ID: "A00", Count: 10}},
		},
	}
	svc := NewStatisticsService(store)

	resp, err := svc.GetOverview(context.Background(), "", "")
	require.NoError(t, err)

	var statusSum int64
	for _, item := range resp.ByStatus {
		statusSum += item.Count
	}
	assert.Equal(t, resp.TotalApplications, statusSum)

	// A school that vanished from reference data still appears, keyed and
	// named by its raw code.
	require.Len(t, resp.BySchool, 2)
	assert.Equal(t, "GHOST", resp.BySchool[1].ID)
	assert.Equal(t, "GHOST", resp.BySchool[1].Name)
}

func TestGetOverview_EmptyRangeYieldsEmptyFacets(t *testing.T) {
	store := &fakeApplicationStore{stats: &models.OverviewStatistics{
		ByStatus:       []models.FacetCount{},
		BySchool:       []models.SchoolFacetCount{},
		ByMajor:        []models.FacetCount{},
		BySubjectGroup: []models.FacetCount{},
	}}
	svc := NewStatisticsService(store)

	resp, err := svc.GetOverview(context.Background(), "2030-01-01", "2030-01-02")
	require.NoError(t, err)

	assert.Zero(t, resp.TotalApplications)
	assert.Empty(t, resp.ByStatus)
	assert.Empty(t, resp.BySchool)
	assert.Empty(t, resp.ByMajor)
	assert.Empty(t, resp.BySubjectGroup)
}

func TestGetOverview_RejectsMalformedDate(t *testing.T) {
	svc := NewStatisticsService(&fakeApplicationStore{})

	_, err := svc.GetOverview(context.Background(), "March 1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "dateFrom", apperrors.FieldOf(err))
}
