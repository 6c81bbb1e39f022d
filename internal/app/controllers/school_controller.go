package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/longvh/admissions/internal/app/models/dto"
	"github.com/longvh/admissions/internal/app/services"
	"github.com/longvh/admissions/internal/middleware"
)

// SchoolController handles read-only reference data operations
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// GetAllSchools handles listing all schools
// @Summary Get all schools
// @Description Retrieves every school, without major lists
// @Tags reference-data
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SchoolResponse} "Schools retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /schools [get]
func (c *SchoolController) GetAllSchools(ctx *gin.Context) {
	schools, err := c.schoolService.GetAllSchools(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schools))
}

// GetSchoolMajors handles listing one school's majors
// @Summary Get a school's majors
// @Description Retrieves the majors offered by one school
// @Tags reference-data
// @Produce json
// @Param code path string true "School code" example(BKHN)
// @Success 200 {object} dto.APIResponse{data=[]dto.MajorResponse} "Majors retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /schools/{code}/majors [get]
func (c *SchoolController) GetSchoolMajors(ctx *gin.Context) {
	majors, err := c.schoolService.GetSchoolMajors(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(majors))
}

// GetSubjectCombination handles retrieving one subject combination
// @Summary Get a subject combination
// @Description Retrieves one subject combination by its code
// @Tags reference-data
// @Produce json
// @Param code path string true "Combination code" example(A00)
// @Success 200 {object} dto.APIResponse{data=dto.SubjectCombinationResponse} "Combination retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Subject combination not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subject-combinations/{code} [get]
func (c *SchoolController) GetSubjectCombination(ctx *gin.Context) {
	combination, err := c.schoolService.GetSubjectCombination(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(combination))
}
