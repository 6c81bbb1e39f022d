package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/app/repositories"
	"github.com/longvh/admissions/internal/pkg/apperrors"
)

var codePattern = regexp.MustCompile(`^HS-[0-9A-F]{8}$`)

func submitRequest() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		Fullname:        "Nguyễn Văn An",
		Gender:          "male",
		DOB:             "2007-03-15",
		IDNumber:        "001207001234",
		Province:        "Hà Nội",
		District:        "Hai Bà Trưng",
		Ward:            "Bách Khoa",
		AddressDetail:   "Số 1 Đại Cồ Việt",
		MathScore:       8.5,
		LiteratureScore: 7.0,
		EnglishScore:    9.0,
		School:          "BKHN",
		Major:           "CS01",
		SubjectGroup:    "A00",
		TotalScore:      24.5,
		CCCDFront:       "uploads/front.jpg",
		CCCDBack:        "uploads/back.jpg",
		Transcript:      []string{"uploads/transcript.pdf"},
	}
}

func TestSubmitApplication_AssignsServerSideFields(t *testing.T) {
	store := &fakeApplicationStore{}
	svc := NewApplicationService(store)

	resp, err := svc.SubmitApplication(context.Background(), 42, submitRequest())
	require.NoError(t, err)

	assert.Regexp(t, codePattern, resp.ApplicationCode)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, int64(1), resp.ApplicationID)

	require.Len(t, store.createCalls, 1)
	created := store.createCalls[0]
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.WithinDuration(t, time.Now().UTC(), created.CreatedAt, 5*time.Second)
}

func TestSubmitApplication_RetriesOnCodeCollision(t *testing.T) {
	store := &fakeApplicationStore{
		createErrs: []error{apperrors.ErrApplicationCodeTaken, apperrors.ErrApplicationCodeTaken, nil},
	}
	svc := NewApplicationService(store)

	resp, err := svc.SubmitApplication(context.Background(), 42, submitRequest())
	require.NoError(t, err)
	require.Len(t, store.createCalls, 3)

	// Each attempt must carry a freshly generated code.
	codes := map[string]bool{}
	for _, call := range store.createCalls {
		assert.Regexp(t, codePattern, call.ApplicationCode)
		codes[call.ApplicationCode] = true
	}
	assert.Len(t, codes, 3)
	assert.Equal(t, store.createCalls[2].ApplicationCode, resp.ApplicationCode)
}

func TestSubmitApplication_GivesUpAfterRepeatedCollisions(t *testing.T) {
	store := &fakeApplicationStore{
		createErrs: []error{
			apperrors.ErrApplicationCodeTaken,
			apperrors.ErrApplicationCodeTaken,
			apperrors.ErrApplicationCodeTaken,
		},
	}
	svc := NewApplicationService(store)

	_, err := svc.SubmitApplication(context.Background(), 42, submitRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrApplicationCodeTaken)
	assert.Len(t, store.createCalls, codeRetryAttempts)
}

func TestGetMyApplications_ScopesToOwnerAndKeepsNilNames(t *testing.T) {
	schoolName := "Đại học Bách khoa Hà Nội"
	store := &fakeApplicationStore{
		listApps: []models.Application{
			{ApplicationCode: "HS-AAAA1111", Status: models.StatusPending, SchoolName: &schoolName},
			{ApplicationCode: "HS-BBBB2222", Status: models.StatusApproved, SchoolName: nil, MajorName: nil},
		},
		listTotal: 12,
	}
	svc := NewApplicationService(store)

	resp, err := svc.GetMyApplications(context.Background(), 42, &dto.ApplicationFilterRequest{Page: 2, Limit: 5})
	require.NoError(t, err)

	require.NotNil(t, store.lastFilter.OwnerID)
	assert.Equal(t, int64(42), *store.lastFilter.OwnerID)
	assert.False(t, store.lastFilter.SearchInName)

	// A failed reference lookup keeps the row, with null names.
	require.Len(t, resp.Applications, 2)
	assert.Equal(t, &schoolName, resp.Applications[0].SchoolName)
	assert.Nil(t, resp.Applications[1].SchoolName)
	assert.Nil(t, resp.Applications[1].MajorName)

	assert.Equal(t, int64(12), resp.Pagination.TotalRecords)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 5, resp.Pagination.Limit)
}

func TestGetMyApplications_EmptyMatchIsNotAnError(t *testing.T) {
	store := &fakeApplicationStore{listApps: []models.Application{}, listTotal: 0}
	svc := NewApplicationService(store)

	resp, err := svc.GetMyApplications(context.Background(), 42, &dto.ApplicationFilterRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Applications)
	assert.Equal(t, int64(0), resp.Pagination.TotalRecords)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
}

func TestGetMyApplications_RejectsUnknownStatusFilter(t *testing.T) {
	svc := NewApplicationService(&fakeApplicationStore{})

	_, err := svc.GetMyApplications(context.Background(), 42, &dto.ApplicationFilterRequest{Status: "SHIPPED"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "status", apperrors.FieldOf(err))
}

func TestGetMyApplications_RejectsMalformedDate(t *testing.T) {
	svc := NewApplicationService(&fakeApplicationStore{})

	_, err := svc.GetMyApplications(context.Background(), 42, &dto.ApplicationFilterRequest{DateFrom: "15/03/2026"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "dateFrom", apperrors.FieldOf(err))
}

func TestGetMyApplications_CompilesDateBounds(t *testing.T) {
	store := &fakeApplicationStore{}
	svc := NewApplicationService(store)

	_, err := svc.GetMyApplications(context.Background(), 42, &dto.ApplicationFilterRequest{
		DateFrom: "2026-03-01",
		DateTo:   "2026-03-31",
	})
	require.NoError(t, err)

	require.NotNil(t, store.lastFilter.DateFrom)
	require.NotNil(t, store.lastFilter.DateTo)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *store.lastFilter.DateFrom)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC), *store.lastFilter.DateTo)
	assert.Equal(t, repositories.FilterByUpdatedAt, store.lastFilter.DateField)
}

func TestGetMyApplicationByCode_OwnerMismatchReadsAsMissing(t *testing.T) {
	store := &fakeApplicationStore{
		byCode: map[string]*models.Application{
			"HS-AAAA1111": {ApplicationCode: "HS-AAAA1111", UserID: 7, Status: models.StatusPending},
		},
	}
	svc := NewApplicationService(store)

	_, err := svc.GetMyApplicationByCode(context.Background(), 42, "HS-AAAA1111")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	_, err = svc.GetMyApplicationByCode(context.Background(), 42, "HS-MISSING0")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestGetMyApplicationByCode_ReturnsEnrichedDetail(t *testing.T) {
	schoolName := "Đại học Bách khoa Hà Nội"
	majorName := "Khoa học Máy tính"
	store := &fakeApplicationStore{
		byCode: map[string]*models.Application{
			"HS-AAAA1111": {
				ApplicationCode:  "HS-AAAA1111",
				UserID:           42,
				Status:           models.StatusPending,
				SchoolCode:       "BKHN",
				MajorCode:        "CS01",
				SubjectGroupCode: "A00",
				SchoolName:       &schoolName,
				MajorName:        &majorName,
			},
		},
	}
	svc := NewApplicationService(store)

	detail, err := svc.GetMyApplicationByCode(context.Background(), 42, "HS-AAAA1111")
	require.NoError(t, err)

	assert.Equal(t, "PENDING", detail.Status.Code)
	assert.Equal(t, "Chờ duyệt", detail.Status.DisplayName)
	assert.Equal(t, "BKHN", detail.School)
	assert.Equal(t, &schoolName, detail.SchoolName)
	assert.Equal(t, &majorName, detail.MajorName)
}

func TestSubmitApplication_PropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &fakeApplicationStore{createErrs: []error{storeErr}}
	svc := NewApplicationService(store)

	_, err := svc.SubmitApplication(context.Background(), 42, submitRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Len(t, store.createCalls, 1)
}
