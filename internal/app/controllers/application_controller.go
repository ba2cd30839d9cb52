package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/services"
	"github.com/campushq/placement-portal/internal/middleware"
)

// ApplicationController handles application endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Submit records a student's application to a drive
// @Summary Submit an application
// @Description Applies a student to a placement drive. The student must meet the drive's minimum CGPA and may apply to each drive only once.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.APIResponse "Invalid data, duplicate application or CGPA below requirement"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Students may only apply on their own behalf.
	if role, _ := ctx.Get("role"); role == string(models.RoleStudent) {
		if accountID, ok := ctx.Get("accountID"); ok {
			req.StudentID = accountID.(int64)
		}
	}

	application, err := c.applicationService.SubmitApplication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application, "Application submitted successfully"))
}

// List retrieves applications
// @Summary List applications
// @Description Retrieves applications. Students see their own, companies see applications to their drives, admins see everything.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student ID"
// @Param companyId query int false "Filter by company ID"
// @Param placementId query int false "Filter by placement ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid filter parameters"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	var filter dto.ApplicationFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Non-admin callers are scoped to their own records regardless of the
	// filters they pass.
	role, _ := ctx.Get("role")
	accountID, _ := ctx.Get("accountID")
	switch role {
	case string(models.RoleStudent):
		if id, ok := accountID.(int64); ok {
			filter.StudentID = id
		}
	case string(models.RoleCompany):
		if id, ok := accountID.(int64); ok {
			filter.CompanyID = id
		}
	}

	applications, err := c.applicationService.ListApplications(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications, ""))
}
