package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
	"github.com/campushq/placement-portal/internal/pkg/dberrors"
	"github.com/campushq/placement-portal/internal/pkg/logger"
)

var companyColumns = []string{
	"id", "name", "email", "password", "website", "industry", "location",
	"company_size", "description", "phone", "hr_contact_person", "hr_email",
	"hr_phone", "status", "registration_date",
}

// ICompanyRepository defines company data access operations
type ICompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetByEmail(ctx context.Context, email string) (*models.Company, error)
	GetAll(ctx context.Context) ([]*models.Company, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountByStatus(ctx context.Context) (total, verified, pending int64, err error)
}

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new company and fills in the assigned id. A duplicate
// email surfaces as ErrCompanyAlreadyExists via the unique constraint.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Insert("companies").
		Columns("name", "email", "password", "website", "industry", "location",
			"company_size", "description", "phone", "hr_contact_person", "hr_email",
			"hr_phone", "status", "registration_date").
		Values(company.Name, company.Email, company.Password, company.Website,
			company.Industry, company.Location, company.CompanySize, company.Description,
			company.Phone, company.HRContactPerson, company.HREmail, company.HRPhone,
			company.Status, company.RegistrationDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create company SQL")
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&company.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "companies_email_key") {
			logger.Warn().Str("email", company.Email).Msg("Attempted to create duplicate company")
			return apperrors.ErrCompanyAlreadyExists
		}
		logger.Error().Err(err).Str("email", company.Email).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}

	logger.Info().Int64("companyID", company.ID).Str("email", company.Email).Msg("Company created successfully")
	return nil
}

// GetByID retrieves a company by id
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	return r.scanCompany(r.db.QueryRow(ctx, sql, args...))
}

// GetByEmail retrieves a company by email
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get company by email query: %w", err)
	}

	return r.scanCompany(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves all companies
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("companies").
		OrderBy("registration_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company, err := r.scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading company rows: %w", err)
	}

	return companies, nil
}

// UpdateStatus sets the verification status for a company.
func (r *CompanyRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	sql, args, err := r.sb.Update("companies").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update company status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("companyID", id).Msg("Error executing update company status query")
		return fmt.Errorf("error updating company status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// CountByStatus returns total, verified and pending company counts in a
// single scan.
func (r *CompanyRepository) CountByStatus(ctx context.Context) (total, verified, pending int64, err error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'verified'),
		       COUNT(*) FILTER (WHERE status = 'pending')
		FROM companies
	`
	if err = r.db.QueryRow(ctx, query).Scan(&total, &verified, &pending); err != nil {
		return 0, 0, 0, fmt.Errorf("error counting companies: %w", err)
	}
	return total, verified, pending, nil
}

func (r *CompanyRepository) scanCompany(row pgx.Row) (*models.Company, error) {
	var company models.Company
	err := row.Scan(
		&company.ID, &company.Name, &company.Email, &company.Password,
		&company.Website, &company.Industry, &company.Location, &company.CompanySize,
		&company.Description, &company.Phone, &company.HRContactPerson,
		&company.HREmail, &company.HRPhone, &company.Status, &company.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		logger.Error().Err(err).Msg("Error scanning company row")
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}
	return &company, nil
}
