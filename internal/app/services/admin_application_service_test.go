package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/pkg/apperrors"
)

const testFrontendURL = "https://tuyensinh.example.com"

func adminFixtures() (*fakeApplicationStore, *fakeUserStore, *fakeNotifier) {
	store := &fakeApplicationStore{
		byCode: map[string]*models.Application{
			"HS-AAAA1111": {
				ApplicationCode: "HS-AAAA1111",
				UserID:          7,
				Status:          models.StatusPending,
				Fullname:        "Nguyễn Văn An",
			},
		},
		updateRows: 1,
	}
	users := &fakeUserStore{
		users: map[int64]*models.User{
			7: {ID: 7, Email: "an.nguyen@example.com", FullName: "Nguyễn Văn An", Role: models.RoleCandidate},
		},
	}
	return store, users, &fakeNotifier{}
}

func TestUpdateApplicationStatus_ChangesAndNotifies(t *testing.T) {
	store, users, notifier := adminFixtures()
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	resp, err := svc.UpdateApplicationStatus(context.Background(), "HS-AAAA1111", &dto.StatusUpdateRequest{Status: "APPROVED"})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, 1, notifier.sent)
	assert.Equal(t, "an.nguyen@example.com", notifier.email)
	assert.Equal(t, "Đã duyệt", notifier.label)
	assert.Equal(t, testFrontendURL+"/applications/HS-AAAA1111", notifier.link)
}

func TestUpdateApplicationStatus_MissingRecordIsNotFound(t *testing.T) {
	store, users, notifier := adminFixtures()
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	_, err := svc.UpdateApplicationStatus(context.Background(), "HS-MISSING0", &dto.StatusUpdateRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	assert.Zero(t, store.updateCalls)
	assert.Zero(t, notifier.sent)
}

func TestUpdateApplicationStatus_SameStatusIsNoOp(t *testing.T) {
	store, users, notifier := adminFixtures()
	store.updateRows = 0 // record exists but already carries the status
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	resp, err := svc.UpdateApplicationStatus(context.Background(), "HS-AAAA1111", &dto.StatusUpdateRequest{Status: "PENDING"})
	require.NoError(t, err)

	assert.False(t, resp.Changed)
	assert.Zero(t, notifier.sent)
}

func TestUpdateApplicationStatus_RejectsUnknownStatus(t *testing.T) {
	store, users, notifier := adminFixtures()
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	_, err := svc.UpdateApplicationStatus(context.Background(), "HS-AAAA1111", &dto.StatusUpdateRequest{Status: "SHIPPED"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "status", apperrors.FieldOf(err))
	assert.Zero(t, store.updateCalls)
}

func TestUpdateApplicationStatus_AcceptsDisplayLabel(t *testing.T) {
	store, users, notifier := adminFixtures()
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	resp, err := svc.UpdateApplicationStatus(context.Background(), "HS-AAAA1111", &dto.StatusUpdateRequest{Status: "Đã duyệt"})
	require.NoError(t, err)
	assert.True(t, resp.Changed)
}

func TestUpdateApplicationStatus_NotifierFailureIsSwallowed(t *testing.T) {
	store, users, notifier := adminFixtures()
	notifier.err = errors.New("smtp: connection refused")
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	resp, err := svc.UpdateApplicationStatus(context.Background(), "HS-AAAA1111", &dto.StatusUpdateRequest{Status: "CANCEL"})
	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, 1, notifier.sent)
}

func TestUpdateApplicationStatus_UnknownOwnerSkipsNotification(t *testing.T) {
	store, users, notifier := adminFixtures()
	users.users = map[int64]*models.User{}
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	resp, err := svc.UpdateApplicationStatus(context.Background(), "HS-AAAA1111", &dto.StatusUpdateRequest{Status: "APPROVED"})
	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Zero(t, notifier.sent)
}

func TestGetAllApplications_SearchesCodeAndName(t *testing.T) {
	store, users, notifier := adminFixtures()
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	_, err := svc.GetAllApplications(context.Background(), &dto.ApplicationFilterRequest{Search: "nguyễn"})
	require.NoError(t, err)

	assert.Nil(t, store.lastFilter.OwnerID)
	assert.True(t, store.lastFilter.SearchInName)
	assert.Equal(t, "nguyễn", store.lastFilter.Search)
}

func TestGetApplicationByCode_IgnoresOwnership(t *testing.T) {
	store, users, notifier := adminFixtures()
	svc := NewAdminApplicationService(store, users, notifier, testFrontendURL)

	detail, err := svc.GetApplicationByCode(context.Background(), "HS-AAAA1111")
	require.NoError(t, err)
	assert.Nil(t, store.lastOwnerID)
	assert.Equal(t, "HS-AAAA1111", detail.ApplicationCode)
}
