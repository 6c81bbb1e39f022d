package services

import (
	"context"
	"time"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/app/repositories"
)

// The services consume their repositories through narrow interfaces so the
// data layer can be swapped for fakes in tests. The concrete pgx-backed
// repositories satisfy these.

// ApplicationStore is the persistence surface for applications.
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) (int64, error)
	List(ctx context.Context, filter repositories.ApplicationFilter, page, limit int) ([]models.Application, int64, error)
	GetByCode(ctx context.Context, code string, ownerID *int64) (*models.Application, error)
	UpdateStatus(ctx context.Context, code string, status models.ApplicationStatus, now time.Time) (int64, error)
	GetOverviewStatistics(ctx context.Context, filter repositories.ApplicationFilter) (*models.OverviewStatistics, error)
}

// SchoolStore is the read surface for school reference data.
type SchoolStore interface {
	GetAll(ctx context.Context) ([]models.School, error)
	GetByCode(ctx context.Context, code string) (*models.School, error)
	GetMajors(ctx context.Context, schoolCode string) ([]models.Major, error)
}

// SubjectCombinationStore is the read surface for subject combinations.
type SubjectCombinationStore interface {
	GetByCode(ctx context.Context, code string) (*models.SubjectCombination, error)
}

// UserStore is the read surface for user identity facts.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
