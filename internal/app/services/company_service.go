package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/repositories"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
	"github.com/campushq/placement-portal/internal/pkg/auth"
	"github.com/campushq/placement-portal/internal/pkg/metrics"
)

// CompanyService handles company registration and verification
type CompanyService struct {
	companyRepo repositories.ICompanyRepository
	logger      zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repositories.ICompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// RegisterCompany creates a new company account. New companies start in the
// 'pending' status; their drives stay held back until an admin verifies them.
func (s *CompanyService) RegisterCompany(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.Company, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("company name and email are required")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	company := &models.Company{
		Name:             req.Name,
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Password:         hashedPassword,
		Website:          req.Website,
		Industry:         req.Industry,
		Location:         req.Location,
		CompanySize:      req.CompanySize,
		Description:      req.Description,
		Phone:            req.Phone,
		HRContactPerson:  req.HRContactPerson,
		HREmail:          req.HREmail,
		HRPhone:          req.HRPhone,
		Status:           models.CompanyStatusPending,
		RegistrationDate: time.Now(),
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(models.RoleCompany)).Inc()
	return company, nil
}

// ListCompanies retrieves all companies.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

// VerifyCompany moves a company from 'pending' to 'verified'. Drives the
// company posts afterwards go live immediately; drives posted while pending
// keep their pending_approval status.
func (s *CompanyService) VerifyCompany(ctx context.Context, id int64) (*models.Company, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("company id must be positive")
	}

	if err := s.companyRepo.UpdateStatus(ctx, id, models.CompanyStatusVerified); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("companyID", id).Msg("Company verified")
	return s.companyRepo.GetByID(ctx, id)
}
