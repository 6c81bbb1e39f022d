package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/app/services"
	"github.com/longvh/admissions/internal/middleware"
	"github.com/longvh/admissions/internal/pkg/helpers"
)

// ApplicationController handles candidate application operations
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// SubmitApplication handles a new application submission
// @Summary Submit an application
// @Description Stores a new admission application for the authenticated candidate. The application code and status are assigned server-side.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Application form"
// @Success 201 {object} dto.SubmitApplicationResponse "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleBindingError(err)))
		return
	}

	resp, err := c.applicationService.SubmitApplication(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetMyApplications handles listing the caller's own applications
// @Summary List own applications
// @Description Retrieves the authenticated candidate's applications with optional filtering and pagination
// @Tags applications
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param search query string false "Case-insensitive substring of the application code"
// @Param status query string false "Status filter (PENDING, APPROVED, CANCEL)"
// @Param dateFrom query string false "Inclusive lower bound on last update (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper bound on last update (YYYY-MM-DD)"
// @Success 200 {object} dto.PaginatedApplicationsResponse "Applications retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications [get]
func (c *ApplicationController) GetMyApplications(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	filter := parseFilterRequest(ctx)
	resp, err := c.applicationService.GetMyApplications(ctx, userID, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetMyApplicationByCode handles retrieving one of the caller's applications
// @Summary Get own application detail
// @Description Retrieves one of the authenticated candidate's applications by code. A code owned by another candidate reads as missing.
// @Tags applications
// @Produce json
// @Param code path string true "Application code" example(HS-A1B2C3D4)
// @Success 200 {object} dto.ApplicationDetailResponse "Application retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications/{code} [get]
func (c *ApplicationController) GetMyApplicationByCode(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	resp, err := c.applicationService.GetMyApplicationByCode(ctx, userID, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// parseFilterRequest collects the raw listing filters from the query string.
// Date and status values stay unparsed: the service layer validates them.
func parseFilterRequest(ctx *gin.Context) *dto.ApplicationFilterRequest {
	page, limit := helpers.ParsePaginationParams(ctx)
	return &dto.ApplicationFilterRequest{
		Search:       ctx.Query("search"),
		Status:       ctx.Query("status"),
		SchoolCode:   ctx.Query("schoolCode"),
		MajorCode:    ctx.Query("majorCode"),
		SubjectGroup: ctx.Query("subjectGroup"),
		DateFrom:     ctx.Query("dateFrom"),
		DateTo:       ctx.Query("dateTo"),
		Page:         page,
		Limit:        limit,
	}
}
