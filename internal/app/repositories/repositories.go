package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ApplicationRepository        *ApplicationRepository
	SchoolRepository             *SchoolRepository
	SubjectCombinationRepository *SubjectCombinationRepository
	UserRepository               *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ApplicationRepository:        NewApplicationRepository(db),
		SchoolRepository:             NewSchoolRepository(db),
		SubjectCombinationRepository: NewSubjectCombinationRepository(db),
		UserRepository:               NewUserRepository(db),
	}
}
