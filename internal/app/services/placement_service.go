package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/repositories"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
)

// PlacementService manages placement drives.
type PlacementService struct {
	placementRepo repositories.IPlacementRepository
	companyRepo   repositories.ICompanyRepository
	logger        zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(
	placementRepo repositories.IPlacementRepository,
	companyRepo repositories.ICompanyRepository,
	logger zerolog.Logger,
) *PlacementService {
	return &PlacementService{
		placementRepo: placementRepo,
		companyRepo:   companyRepo,
		logger:        logger,
	}
}

// CreatePlacement posts a new drive for a company. The drive's status depends
// on the company's verification state: verified companies go live immediately,
// pending ones are held for approval. The company name is copied onto the
// drive so listings render without a join.
func (s *PlacementService) CreatePlacement(ctx context.Context, req *dto.CreatePlacementRequest) (*models.Placement, error) {
	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			return nil, apperrors.NewBadRequestError("company not found")
		}
		return nil, err
	}

	status := models.PlacementStatusPendingApproval
	if company.Status == models.CompanyStatusVerified {
		status = models.PlacementStatusActive
	}

	selectionRounds := req.SelectionRounds
	if selectionRounds == nil {
		selectionRounds = []string{}
	}

	placement := &models.Placement{
		Title:       req.Title,
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Description: req.Description,
		Requirements: models.PlacementRequirements{
			MinimumCGPA:         req.Requirements.MinimumCGPA,
			EligibleDepartments: req.Requirements.EligibleDepartments,
			SkillsRequired:      req.Requirements.SkillsRequired,
		},
		JobDetails: models.PlacementJobDetails{
			Position: req.JobDetails.Position,
			CTC:      req.JobDetails.CTC,
			Location: req.JobDetails.Location,
			WorkMode: req.JobDetails.WorkMode,
		},
		SelectionRounds:     selectionRounds,
		ApplicationDeadline: req.ApplicationDeadline,
		DriveDate:           req.DriveDate,
		Status:              status,
		PostedDate:          time.Now(),
		ApplicationsCount:   0,
	}

	if err := s.placementRepo.Create(ctx, placement); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("placementID", placement.ID).
		Int64("companyID", company.ID).
		Str("status", string(status)).
		Msg("Placement drive created")

	return placement, nil
}

// GetPlacement retrieves a single drive by ID.
func (s *PlacementService) GetPlacement(ctx context.Context, id int64) (*models.Placement, error) {
	return s.placementRepo.GetByID(ctx, id)
}

// ListPlacements retrieves drives, optionally filtered by status.
func (s *PlacementService) ListPlacements(ctx context.Context, status string) ([]*models.Placement, error) {
	return s.placementRepo.GetAll(ctx, status)
}
