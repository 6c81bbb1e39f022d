package services

import (
	"github.com/longvh/admissions/internal/app/repositories"
	"github.com/longvh/admissions/internal/pkg/notification"
)

// Services holds all the service instances
type Services struct {
	ApplicationService      ApplicationService
	AdminApplicationService AdminApplicationService
	StatisticsService       StatisticsService
	SchoolService           SchoolService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, notifier notification.StatusNotifier, frontendURL string) *Services {
	return &Services{
		ApplicationService: NewApplicationService(repos.ApplicationRepository),
		AdminApplicationService: NewAdminApplicationService(
			repos.ApplicationRepository,
			repos.UserRepository,
			notifier,
			frontendURL,
		),
		StatisticsService: NewStatisticsService(repos.ApplicationRepository),
		SchoolService:     NewSchoolService(repos.SchoolRepository, repos.SubjectCombinationRepository),
	}
}
