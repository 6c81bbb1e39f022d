package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/pkg/apperrors"
)

// SchoolService defines the read-only reference data operations
type SchoolService interface {
	GetAllSchools(ctx context.Context) ([]dto.SchoolResponse, error)
	GetSchoolMajors(ctx context.Context, schoolCode string) ([]dto.MajorResponse, error)
	GetSubjectCombination(ctx context.Context, code string) (*dto.SubjectCombinationResponse, error)
}

// schoolServiceImpl implements SchoolService
type schoolServiceImpl struct {
	schoolStore      SchoolStore
	combinationStore SubjectCombinationStore
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(schoolStore SchoolStore, combinationStore SubjectCombinationStore) SchoolService {
	return &schoolServiceImpl{
		schoolStore:      schoolStore,
		combinationStore: combinationStore,
	}
}

// GetAllSchools lists every school without its majors.
func (s *schoolServiceImpl) GetAllSchools(ctx context.Context) ([]dto.SchoolResponse, error) {
	schools, err := s.schoolStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing schools: %w", err)
	}

	responses := []dto.SchoolResponse{}
	for i := range schools {
		responses = append(responses, dto.FromSchool(&schools[i]))
	}
	return responses, nil
}

// GetSchoolMajors lists one school's majors. An unknown school is NOT_FOUND
// even when it simply has no majors yet.
func (s *schoolServiceImpl) GetSchoolMajors(ctx context.Context, schoolCode string) ([]dto.MajorResponse, error) {
	if _, err := s.schoolStore.GetByCode(ctx, schoolCode); err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting school: %w", err)
	}

	majors, err := s.schoolStore.GetMajors(ctx, schoolCode)
	if err != nil {
		return nil, fmt.Errorf("error listing majors: %w", err)
	}

	responses := []dto.MajorResponse{}
	for i := range majors {
		responses = append(responses, dto.FromMajor(&majors[i]))
	}
	return responses, nil
}

// GetSubjectCombination retrieves one subject combination by code.
func (s *schoolServiceImpl) GetSubjectCombination(ctx context.Context, code string) (*dto.SubjectCombinationResponse, error) {
	combination, err := s.combinationStore.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubjectCombinationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting subject combination: %w", err)
	}

	return &dto.SubjectCombinationResponse{
		Code:     combination.Code,
		Name:     combination.Name,
		Subjects: combination.SubjectCodes,
	}, nil
}
