package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/app/repositories"
	"github.com/longvh/admissions/internal/pkg/apperrors"
	"github.com/longvh/admissions/internal/pkg/logger"
	"github.com/longvh/admissions/internal/pkg/notification"
)

// AdminApplicationService defines the admin-side application operations
type AdminApplicationService interface {
	GetAllApplications(ctx context.Context, filter *dto.ApplicationFilterRequest) (*dto.PaginatedApplicationsResponse, error)
	GetApplicationByCode(ctx context.Context, code string) (*dto.ApplicationDetailResponse, error)
	UpdateApplicationStatus(ctx context.Context, code string, req *dto.StatusUpdateRequest) (*dto.StatusUpdateResponse, error)
}

// adminApplicationServiceImpl implements AdminApplicationService
type adminApplicationServiceImpl struct {
	applicationStore ApplicationStore
	userStore        UserStore
	notifier         notification.StatusNotifier
	frontendURL      string
	now              func() time.Time
}

// NewAdminApplicationService creates a new AdminApplicationService
func NewAdminApplicationService(
	applicationStore ApplicationStore,
	userStore UserStore,
	notifier notification.StatusNotifier,
	frontendURL string,
) AdminApplicationService {
	return &adminApplicationServiceImpl{
		applicationStore: applicationStore,
		userStore:        userStore,
		notifier:         notifier,
		frontendURL:      frontendURL,
		now:              time.Now,
	}
}

// GetAllApplications lists every candidate's applications, filtered and
// paginated. Free-text search matches code or candidate name.
func (s *adminApplicationServiceImpl) GetAllApplications(ctx context.Context, filter *dto.ApplicationFilterRequest) (*dto.PaginatedApplicationsResponse, error) {
	storeFilter, err := compileFilter(filter, nil, true, repositories.FilterByUpdatedAt)
	if err != nil {
		return nil, err
	}

	apps, totalRecords, err := s.applicationStore.List(ctx, storeFilter, filter.Page, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	return paginatedResponse(apps, totalRecords, filter.Page, filter.Limit), nil
}

// GetApplicationByCode retrieves one application regardless of owner.
func (s *adminApplicationServiceImpl) GetApplicationByCode(ctx context.Context, code string) (*dto.ApplicationDetailResponse, error) {
	app, err := s.applicationStore.GetByCode(ctx, code, nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}
	return dto.FromApplication(app), nil
}

// UpdateApplicationStatus moves one application to the requested status.
// A missing record is NOT_FOUND; a record already carrying the requested
// status is a no-op reported with Changed=false and an untouched timestamp.
// On an actual change the owner is notified best-effort: a notifier failure
// is logged, never surfaced.
func (s *adminApplicationServiceImpl) UpdateApplicationStatus(ctx context.Context, code string, req *dto.StatusUpdateRequest) (*dto.StatusUpdateResponse, error) {
	status, err := models.ParseApplicationStatus(req.Status)
	if err != nil {
		return nil, apperrors.NewValidationError("status", "status must be one of PENDING, APPROVED, CANCEL")
	}

	// Existence check first so a missing record and an unchanged one stay
	// distinguishable after the guarded update.
	app, err := s.applicationStore.GetByCode(ctx, code, nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}

	rowsAffected, err := s.applicationStore.UpdateStatus(ctx, code, status, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error updating application status: %w", err)
	}

	if rowsAffected == 0 {
		logger.Info().Str("applicationCode", code).Str("status", status.Code()).Msg("Status update was a no-op")
		return &dto.StatusUpdateResponse{
			Message: "Application already has this status",
			Changed: false,
		}, nil
	}

	s.notifyOwner(ctx, app, status)

	logger.Info().Str("applicationCode", code).Str("from", app.Status.Code()).Str("to", status.Code()).Msg("Application status updated")
	return &dto.StatusUpdateResponse{
		Message: "Application status updated successfully",
		Changed: true,
	}, nil
}

// notifyOwner emails the candidate about the new status. Failures here must
// not fail the transition, they are logged and dropped.
func (s *adminApplicationServiceImpl) notifyOwner(ctx context.Context, app *models.Application, status models.ApplicationStatus) {
	owner, err := s.userStore.GetByID(ctx, app.UserID)
	if err != nil {
		logger.Warn().Err(err).Int64("userID", app.UserID).Str("applicationCode", app.ApplicationCode).Msg("Could not resolve owner for status notification")
		return
	}

	detailLink := fmt.Sprintf("%s/applications/%s", s.frontendURL, app.ApplicationCode)
	if err := s.notifier.SendStatusUpdate(owner.Email, owner.FullName, app.ApplicationCode, status.Label(), detailLink); err != nil {
		logger.Warn().Err(err).Str("applicationCode", app.ApplicationCode).Msg("Failed to send status notification")
	}
}
