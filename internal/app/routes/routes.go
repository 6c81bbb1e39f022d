package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/longvh/admissions/internal/app/controllers"
	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	applicationController *controllers.ApplicationController,
	adminApplicationController *controllers.AdminApplicationController,
	statisticsController *controllers.StatisticsController,
	schoolController *controllers.SchoolController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Candidate application routes
		applications := authenticated.Group("/applications")
		{
			applications.POST("", applicationController.SubmitApplication)
			applications.GET("", applicationController.GetMyApplications)
			applications.GET("/:code", applicationController.GetMyApplicationByCode)
		}

		// Read-only reference data
		schools := authenticated.Group("/schools")
		{
			schools.GET("", schoolController.GetAllSchools)
			schools.GET("/:code/majors", schoolController.GetSchoolMajors)
		}
		authenticated.GET("/subject-combinations/:code", schoolController.GetSubjectCombination)

		// Admin routes - Protected by role-based middleware
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/applications", adminApplicationController.GetAllApplications)
			admin.GET("/applications/:code", adminApplicationController.GetApplicationByCode)
			admin.PATCH("/applications/:code/status", adminApplicationController.UpdateApplicationStatus)
			admin.GET("/statistics/overview", statisticsController.GetOverview)
		}
	}
}
