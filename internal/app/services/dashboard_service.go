package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/repositories"
)

// DashboardService aggregates portal-wide statistics.
type DashboardService struct {
	studentRepo     repositories.IStudentRepository
	companyRepo     repositories.ICompanyRepository
	placementRepo   repositories.IPlacementRepository
	applicationRepo repositories.IApplicationRepository
	logger          zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	studentRepo repositories.IStudentRepository,
	companyRepo repositories.ICompanyRepository,
	placementRepo repositories.IPlacementRepository,
	applicationRepo repositories.IApplicationRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		studentRepo:     studentRepo,
		companyRepo:     companyRepo,
		placementRepo:   placementRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// GetStats collects the dashboard counters. Each count is computed in the
// database; nothing is loaded into memory beyond the scalars.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalCompanies, companiesVerified, companiesPending, err := s.companyRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	activePlacements, err := s.placementRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	totalApplications, pendingApplications, selectedStudents, err := s.applicationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		TotalStudents:       totalStudents,
		TotalCompanies:      totalCompanies,
		ActivePlacements:    activePlacements,
		TotalApplications:   totalApplications,
		PendingApplications: pendingApplications,
		SelectedStudents:    selectedStudents,
		CompaniesVerified:   companiesVerified,
		CompaniesPending:    companiesPending,
	}, nil
}
