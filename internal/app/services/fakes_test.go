package services

import (
	"context"
	"time"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/app/repositories"
	"github.com/longvh/admissions/internal/pkg/apperrors"
)

// fakeApplicationStore is a scriptable in-memory ApplicationStore.
type fakeApplicationStore struct {
	createErrs  []error // consumed one per Create call, nil = success
	createCalls []models.Application
	nextID      int64

	listApps   []models.Application
	listTotal  int64
	listErr    error
	lastFilter repositories.ApplicationFilter
	lastPage   int
	lastLimit  int

	byCode      map[string]*models.Application
	lastOwnerID *int64

	updateRows  int64
	updateErr   error
	updatedAt   time.Time
	updateCalls int

	stats    *models.OverviewStatistics
	statsErr error
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.Application) (int64, error) {
	f.createCalls = append(f.createCalls, *app)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return 0, err
		}
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeApplicationStore) List(_ context.Context, filter repositories.ApplicationFilter, page, limit int) ([]models.Application, int64, error) {
	f.lastFilter = filter
	f.lastPage = page
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listApps, f.listTotal, nil
}

func (f *fakeApplicationStore) GetByCode(_ context.Context, code string, ownerID *int64) (*models.Application, error) {
	f.lastOwnerID = ownerID
	app, ok := f.byCode[code]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	if ownerID != nil && app.UserID != *ownerID {
		return nil, apperrors.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationStore) UpdateStatus(_ context.Context, _ string, _ models.ApplicationStatus, now time.Time) (int64, error) {
	f.updateCalls++
	f.updatedAt = now
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	return f.updateRows, nil
}

func (f *fakeApplicationStore) GetOverviewStatistics(_ context.Context, filter repositories.ApplicationFilter) (*models.OverviewStatistics, error) {
	f.lastFilter = filter
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

// fakeUserStore resolves users from a fixed map.
type fakeUserStore struct {
	users map[int64]*models.User
	err   error
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// fakeNotifier records sent notifications and can be scripted to fail.
type fakeNotifier struct {
	err   error
	sent  int
	email string
	label string
	link  string
}

func (f *fakeNotifier) SendStatusUpdate(toEmail, _ string, _ string, statusLabel, detailLink string) error {
	f.sent++
	f.email = toEmail
	f.label = statusLabel
	f.link = detailLink
	return f.err
}

// fakeSchoolStore serves fixed reference data.
type fakeSchoolStore struct {
	schools []models.School
	majors  map[string][]models.Major
}

func (f *fakeSchoolStore) GetAll(_ context.Context) ([]models.School, error) {
	return f.schools, nil
}

func (f *fakeSchoolStore) GetByCode(_ context.Context, code string) (*models.School, error) {
	for i := range f.schools {
		if f.schools[i].Code == code {
			return &f.schools[i], nil
		}
	}
	return nil, apperrors.ErrSchoolNotFound
}

func (f *fakeSchoolStore) GetMajors(_ context.Context, schoolCode string) ([]models.Major, error) {
	return f.majors[schoolCode], nil
}

// fakeCombinationStore serves fixed subject combinations.
type fakeCombinationStore struct {
	combinations map[string]*models.SubjectCombination
}

func (f *fakeCombinationStore) GetByCode(_ context.Context, code string) (*models.SubjectCombination, error) {
	combination, ok := f.combinations[code]
	if !ok {
		return nil, apperrors.ErrSubjectCombinationNotFound
	}
	return combination, nil
}
