package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/repositories"
	"github.com/campushq/placement-portal/internal/db"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
	"github.com/campushq/placement-portal/internal/pkg/metrics"
)

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// ApplicationService handles application submission and listing.
type ApplicationService struct {
	applicationRepo repositories.IApplicationRepository
	studentRepo     repositories.IStudentRepository
	placementRepo   repositories.IPlacementRepository
	txRunner        TxRunner
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	studentRepo repositories.IStudentRepository,
	placementRepo repositories.IPlacementRepository,
	txRunner TxRunner,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		studentRepo:     studentRepo,
		placementRepo:   placementRepo,
		txRunner:        txRunner,
		logger:          logger,
	}
}

// SubmitApplication records a student's application to a drive. Eligibility is
// checked against the drive's minimum CGPA before anything is written; the
// insert and the drive's applications_count increment then commit together,
// so the counter always matches the number of application rows. The unique
// (student, placement) constraint rejects duplicates even under concurrent
// submissions.
func (s *ApplicationService) SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if req.StudentID <= 0 {
		return nil, apperrors.NewValidationError("studentId is required")
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewBadRequestError("student not found")
		}
		return nil, err
	}

	placement, err := s.placementRepo.GetByID(ctx, req.PlacementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlacementNotFound) {
			return nil, apperrors.NewBadRequestError("placement not found")
		}
		return nil, err
	}

	if placement.Requirements.MinimumCGPA != nil && student.CGPA < *placement.Requirements.MinimumCGPA {
		s.logger.Warn().
			Int64("studentID", student.ID).
			Int64("placementID", placement.ID).
			Float64("cgpa", student.CGPA).
			Float64("minimumCGPA", *placement.Requirements.MinimumCGPA).
			Msg("Application rejected: CGPA below requirement")
		return nil, apperrors.ErrNotEligible
	}

	now := time.Now()
	application := &models.Application{
		StudentID:       student.ID,
		StudentName:     student.Name,
		PlacementID:     placement.ID,
		PlacementTitle:  placement.Title,
		CompanyID:       placement.CompanyID,
		CompanyName:     placement.CompanyName,
		ApplicationDate: now,
		Status:          models.ApplicationStatusApplied,
		CurrentRound:    models.InitialApplicationRound,
		RoundsCompleted: []string{},
		Resume:          student.Resume,
		LastUpdated:     now,
	}

	err = s.txRunner.WithTransaction(ctx, func(txCtx context.Context, tx pgx.Tx) error {
		if err := s.applicationRepo.Create(txCtx, tx, application); err != nil {
			return err
		}
		return s.placementRepo.IncrementApplicationsCount(txCtx, tx, placement.ID)
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsTotal.Inc()
	s.logger.Info().
		Int64("applicationID", application.ID).
		Int64("studentID", student.ID).
		Int64("placementID", placement.ID).
		Msg("Application submitted")

	return application, nil
}

// ListApplications retrieves applications matching the filter.
func (s *ApplicationService) ListApplications(ctx context.Context, filter dto.ApplicationFilter) ([]*models.Application, error) {
	return s.applicationRepo.List(ctx, filter)
}
