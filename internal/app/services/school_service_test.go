package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/pkg/apperrors"
)

func referenceFixtures() (*fakeSchoolStore, *fakeCombinationStore) {
	schools := &fakeSchoolStore{
		schools: []models.School{
			{Code: "BKHN", Name: "Đại học Bách khoa Hà Nội"},
			{Code: "NEU", Name: "Đại học Kinh tế Quốc dân"},
		},
		majors: map[string][]models.Major{
			"BKHN": {
				{SchoolCode: "BKHN", Code: "CS01", Name: "Khoa học Máy tính", SubjectGroupCodes: []string{"A00", "A01"}},
			},
		},
	}
	combinations := &fakeCombinationStore{
		combinations: map[string]*models.SubjectCombination{
			"A00": {Code: "A00", Name: "Toán, Lý, Hóa", SubjectCodes: []string{"math", "physics", "chemistry"}},
		},
	}
	return schools, combinations
}

func TestGetAllSchools_OmitsMajors(t *testing.T) {
	schools, combinations := referenceFixtures()
	svc := NewSchoolService(schools, combinations)

	resp, err := svc.GetAllSchools(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "BKHN", resp[0].Code)
	assert.Equal(t, "Đại học Bách khoa Hà Nội", resp[0].Name)
}

func TestGetSchoolMajors(t *testing.T) {
	schools, combinations := referenceFixtures()
	svc := NewSchoolService(schools, combinations)

	majors, err := svc.GetSchoolMajors(context.Background(), "BKHN")
	require.NoError(t, err)
	require.Len(t, majors, 1)
	assert.Equal(t, "CS01", majors[0].Code)
	assert.Equal(t, []string{"A00", "A01"}, majors[0].SubjectGroupCodes)

	// A known school without majors yields an empty list, not an error.
	empty, err := svc.GetSchoolMajors(context.Background(), "NEU")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.GetSchoolMajors(context.Background(), "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
}

func TestGetSubjectCombination(t *testing.T) {
	schools, combinations := referenceFixtures()
	svc := NewSchoolService(schools, combinations)

	combo, err := svc.GetSubjectCombination(context.Background(), "A00")
	require.NoError(t, err)
	assert.Equal(t, "Toán, Lý, Hóa", combo.Name)
	assert.Equal(t, []string{"math", "physics", "chemistry"}, combo.Subjects)

	_, err = svc.GetSubjectCombination(context.Background(), "Z99")
	assert.ErrorIs(t, err, apperrors.ErrSubjectCombinationNotFound)
}
