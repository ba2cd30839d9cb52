package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/services"
	"github.com/campushq/placement-portal/internal/middleware"
)

// CompanyController handles company endpoints
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// Register creates a new company account
// @Summary Register a company
// @Description Registers a new company. The account starts unverified; an admin must verify it before its drives go live.
// @Tags companies
// @Accept json
// @Produce json
// @Param request body dto.RegisterCompanyRequest true "Company registration data"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company registered"
// @Failure 400 {object} dto.APIResponse "Invalid or duplicate registration data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) Register(ctx *gin.Context) {
	var req dto.RegisterCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	company, err := c.companyService.RegisterCompany(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(company, "Company registered successfully"))
}

// List retrieves all companies
// @Summary List companies
// @Description Retrieves all registered companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	companies, err := c.companyService.ListCompanies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(companies, ""))
}

// Verify marks a company as verified
// @Summary Verify a company
// @Description Marks a company account as verified. Admin only.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company verified"
// @Failure 400 {object} dto.APIResponse "Invalid company ID"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /companies/{id}/verify [put]
func (c *CompanyController) Verify(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company ID").
			WithDetails("Company ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	company, err := c.companyService.VerifyCompany(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(company, "Company verified successfully"))
}
