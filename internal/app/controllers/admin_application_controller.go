package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/app/services"
	"github.com/longvh/admissions/internal/middleware"
)

// AdminApplicationController handles admin-side application operations
type AdminApplicationController struct {
	adminService services.AdminApplicationService
}

// NewAdminApplicationController creates a new AdminApplicationController
func NewAdminApplicationController(adminService services.AdminApplicationService) *AdminApplicationController {
	return &AdminApplicationController{adminService: adminService}
}

// GetAllApplications handles listing every candidate's applications
// @Summary List all applications
// @Description Retrieves applications across all candidates with filtering and pagination. Search matches application code or candidate name.
// @Tags admin
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param search query string false "Case-insensitive substring of code or candidate name"
// @Param status query string false "Status filter (PENDING, APPROVED, CANCEL)"
// @Param schoolCode query string false "School code filter"
// @Param majorCode query string false "Major code filter"
// @Param subjectGroup query string false "Subject group filter"
// @Param dateFrom query string false "Inclusive lower bound on last update (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper bound on last update (YYYY-MM-DD)"
// @Success 200 {object} dto.PaginatedApplicationsResponse "Applications retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/applications [get]
func (c *AdminApplicationController) GetAllApplications(ctx *gin.Context) {
	filter := parseFilterRequest(ctx)
	resp, err := c.adminService.GetAllApplications(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetApplicationByCode handles retrieving any application by code
// @Summary Get application detail
// @Description Retrieves one application by code, regardless of owner
// @Tags admin
// @Produce json
// @Param code path string true "Application code" example(HS-A1B2C3D4)
// @Success 200 {object} dto.ApplicationDetailResponse "Application retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/applications/{code} [get]
func (c *AdminApplicationController) GetApplicationByCode(ctx *gin.Context) {
	resp, err := c.adminService.GetApplicationByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateApplicationStatus handles an application status transition
// @Summary Update application status
// @Description Moves an application to the requested status. Requesting the status the application already carries is a no-op reported with changed=false.
// @Tags admin
// @Accept json
// @Produce json
// @Param code path string true "Application code" example(HS-A1B2C3D4)
// @Param request body dto.StatusUpdateRequest true "Target status"
// @Success 200 {object} dto.StatusUpdateResponse "Status updated or unchanged"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/applications/{code}/status [patch]
func (c *AdminApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleBindingError(err)))
		return
	}

	resp, err := c.adminService.UpdateApplicationStatus(ctx, ctx.Param("code"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
