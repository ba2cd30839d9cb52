package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/services"
	"github.com/campushq/placement-portal/internal/middleware"
)

// PlacementController handles placement drive endpoints
type PlacementController struct {
	placementService *services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// Create posts a new placement drive
// @Summary Create a placement drive
// @Description Posts a new drive for a company. Drives of verified companies go live immediately; others are held for approval.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlacementRequest true "Drive data"
// @Success 201 {object} dto.APIResponse{data=models.Placement} "Drive created"
// @Failure 400 {object} dto.APIResponse "Invalid request data or unknown company"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /placements [post]
func (c *PlacementController) Create(ctx *gin.Context) {
	var req dto.CreatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	placement, err := c.placementService.CreatePlacement(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(placement, "Placement drive created successfully"))
}

// List retrieves placement drives
// @Summary List placement drives
// @Description Retrieves drives, optionally filtered by status
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending_approval, active, closed)
// @Success 200 {object} dto.APIResponse{data=[]models.Placement} "Drives retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /placements [get]
func (c *PlacementController) List(ctx *gin.Context) {
	placements, err := c.placementService.ListPlacements(ctx, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(placements, ""))
}

// GetByID retrieves a single drive
// @Summary Get placement drive by ID
// @Description Retrieves a drive by its ID
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Drive retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid placement ID"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Drive not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /placements/{id} [get]
func (c *PlacementController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid placement ID").
			WithDetails("Placement ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	placement, err := c.placementService.GetPlacement(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(placement, ""))
}
