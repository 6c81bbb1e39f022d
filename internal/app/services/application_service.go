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
	"github.com/longvh/admissions/internal/pkg/codegen"
	"github.com/longvh/admissions/internal/pkg/helpers"
	"github.com/longvh/admissions/internal/pkg/logger"
)

// codeRetryAttempts bounds the generate-and-insert loop when a freshly
// generated application code collides with an existing one.
const codeRetryAttempts = 3

// ApplicationService defines the candidate-facing application operations
type ApplicationService interface {
	SubmitApplication(ctx context.Context, userID int64, req *dto.SubmitApplicationRequest) (*dto.SubmitApplicationResponse, error)
	GetMyApplications(ctx context.Context, userID int64, filter *dto.ApplicationFilterRequest) (*dto.PaginatedApplicationsResponse, error)
	GetMyApplicationByCode(ctx context.Context, userID int64, code string) (*dto.ApplicationDetailResponse, error)
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	applicationStore ApplicationStore
	now              func() time.Time
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationStore ApplicationStore) ApplicationService {
	return &applicationServiceImpl{
		applicationStore: applicationStore,
		now:              time.Now,
	}
}

// SubmitApplication stores a new application for the given candidate. The
// application code and status are assigned here, never taken from the
// request; a code collision gets a fresh code and another attempt.
func (s *applicationServiceImpl) SubmitApplication(ctx context.Context, userID int64, req *dto.SubmitApplicationRequest) (*dto.SubmitApplicationResponse, error) {
	now := s.now().UTC()
	app := s.buildApplication(userID, req, now)

	var id int64
	var err error
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		app.ApplicationCode = codegen.NewApplicationCode()
		id, err = s.applicationStore.Create(ctx, app)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrApplicationCodeTaken) {
			return nil, fmt.Errorf("error creating application: %w", err)
		}
		logger.Warn().Int("attempt", attempt+1).Str("applicationCode", app.ApplicationCode).Msg("Regenerating colliding application code")
	}
	if err != nil {
		return nil, fmt.Errorf("error creating application after %d attempts: %w", codeRetryAttempts, err)
	}

	return &dto.SubmitApplicationResponse{
		Message:         "Application submitted successfully",
		ApplicationID:   id,
		ApplicationCode: app.ApplicationCode,
		Status:          app.Status.Code(),
	}, nil
}

// GetMyApplications lists the candidate's own applications, filtered and
// paginated.
func (s *applicationServiceImpl) GetMyApplications(ctx context.Context, userID int64, filter *dto.ApplicationFilterRequest) (*dto.PaginatedApplicationsResponse, error) {
	// Candidate search stays on the code field only.
	storeFilter, err := compileFilter(filter, &userID, false, repositories.FilterByUpdatedAt)
	if err != nil {
		return nil, err
	}

	apps, totalRecords, err := s.applicationStore.List(ctx, storeFilter, filter.Page, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	return paginatedResponse(apps, totalRecords, filter.Page, filter.Limit), nil
}

// GetMyApplicationByCode retrieves one of the candidate's own applications.
// A code belonging to another candidate reads the same as a missing one.
func (s *applicationServiceImpl) GetMyApplicationByCode(ctx context.Context, userID int64, code string) (*dto.ApplicationDetailResponse, error) {
	app, err := s.applicationStore.GetByCode(ctx, code, &userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}
	return dto.FromApplication(app), nil
}

// buildApplication maps a submission request onto a storable record with
// server-assigned fields filled in.
func (s *applicationServiceImpl) buildApplication(userID int64, req *dto.SubmitApplicationRequest, now time.Time) *models.Application {
	var extras []models.ExtraDocument
	for _, doc := range req.ExtraDocuments {
		extras = append(extras, models.ExtraDocument{Description: doc.Description, Files: doc.Files})
	}

	return &models.Application{
		UserID:              userID,
		Status:              models.StatusPending,
		Fullname:            req.Fullname,
		Gender:              req.Gender,
		DOB:                 req.DOB,
		IDNumber:            req.IDNumber,
		Province:            req.Province,
		District:            req.District,
		Ward:                req.Ward,
		AddressDetail:       req.AddressDetail,
		MathScore:           req.MathScore,
		LiteratureScore:     req.LiteratureScore,
		EnglishScore:        req.EnglishScore,
		PhysicsScore:        req.PhysicsScore,
		ChemistryScore:      req.ChemistryScore,
		BiologyScore:        req.BiologyScore,
		HistoryScore:        req.HistoryScore,
		GeographyScore:      req.GeographyScore,
		CivicEducationScore: req.CivicEducationScore,
		SchoolCode:          req.School,
		MajorCode:           req.Major,
		SubjectGroupCode:    req.SubjectGroup,
		TotalScore:          req.TotalScore,
		CCCDFront:           req.CCCDFront,
		CCCDBack:            req.CCCDBack,
		Transcript:          req.Transcript,
		Priority:            req.Priority,
		PriorityProof:       req.PriorityProof,
		ExtraDocuments:      extras,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// compileFilter turns raw query-string filters into a store predicate.
// Unknown status values and malformed dates are validation errors naming the
// offending field; a bound is never silently dropped.
func compileFilter(req *dto.ApplicationFilterRequest, ownerID *int64, searchInName bool, dateField repositories.TimestampField) (repositories.ApplicationFilter, error) {
	filter := repositories.ApplicationFilter{
		OwnerID:          ownerID,
		Search:           req.Search,
		SearchInName:     searchInName,
		SchoolCode:       req.SchoolCode,
		MajorCode:        req.MajorCode,
		SubjectGroupCode: req.SubjectGroup,
		DateField:        dateField,
	}

	if req.Status != "" {
		status, err := models.ParseApplicationStatus(req.Status)
		if err != nil {
			return repositories.ApplicationFilter{}, apperrors.NewValidationError("status", "status must be one of PENDING, APPROVED, CANCEL")
		}
		filter.Status = status.Code()
	}

	if req.DateFrom != "" {
		from, err := helpers.ParseDateLowerBound("dateFrom", req.DateFrom)
		if err != nil {
			return repositories.ApplicationFilter{}, err
		}
		filter.DateFrom = &from
	}

	if req.DateTo != "" {
		to, err := helpers.ParseDateUpperBound("dateTo", req.DateTo)
		if err != nil {
			return repositories.ApplicationFilter{}, err
		}
		filter.DateTo = &to
	}

	return filter, nil
}

// paginatedResponse assembles the shared listing envelope.
func paginatedResponse(apps []models.Application, totalRecords int64, page, limit int) *dto.PaginatedApplicationsResponse {
	items := []dto.ApplicationListItem{}
	for i := range apps {
		items = append(items, dto.FromApplicationListItem(&apps[i]))
	}

	return &dto.PaginatedApplicationsResponse{
		Pagination:   helpers.NewPaginationInfo(totalRecords, page, limit),
		Applications: items,
	}
}
