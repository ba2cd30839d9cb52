package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
	"github.com/campushq/placement-portal/internal/pkg/dberrors"
	"github.com/campushq/placement-portal/internal/pkg/logger"
)

var applicationColumns = []string{
	"id", "student_id", "student_name", "placement_id", "placement_title",
	"company_id", "company_name", "application_date", "status", "current_round",
	"rounds_completed", "resume", "feedback", "last_updated",
}

// IApplicationRepository defines application data access operations
type IApplicationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, application *models.Application) error
	List(ctx context.Context, filter dto.ApplicationFilter) ([]*models.Application, error)
	CountByStatus(ctx context.Context) (total, pending, selected int64, err error)
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new application inside the caller's transaction and fills
// in the assigned id. The (student_id, placement_id) unique constraint turns
// a concurrent duplicate submission into ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, tx pgx.Tx, application *models.Application) error {
	sql, args, err := r.sb.Insert("applications").
		Columns("student_id", "student_name", "placement_id", "placement_title",
			"company_id", "company_name", "application_date", "status", "current_round",
			"rounds_completed", "resume", "feedback", "last_updated").
		Values(application.StudentID, application.StudentName, application.PlacementID,
			application.PlacementTitle, application.CompanyID, application.CompanyName,
			application.ApplicationDate, application.Status, application.CurrentRound,
			application.RoundsCompleted, application.Resume, application.Feedback,
			application.LastUpdated).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&application.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_id_placement_id_key") {
			logger.Warn().Int64("studentID", application.StudentID).Int64("placementID", application.PlacementID).Msg("Duplicate application rejected")
			return apperrors.ErrAlreadyApplied
		}
		logger.Error().Err(err).Int64("studentID", application.StudentID).Int64("placementID", application.PlacementID).Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// List retrieves applications filtered by any combination of student,
// company and placement ids. Zero filter values are ignored.
func (r *ApplicationRepository) List(ctx context.Context, filter dto.ApplicationFilter) ([]*models.Application, error) {
	builder := r.sb.Select(applicationColumns...).
		From("applications").
		OrderBy("application_date DESC")

	if filter.StudentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.CompanyID > 0 {
		builder = builder.Where(squirrel.Eq{"company_id": filter.CompanyID})
	}
	if filter.PlacementID > 0 {
		builder = builder.Where(squirrel.Eq{"placement_id": filter.PlacementID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		application, err := r.scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading application rows: %w", err)
	}

	return applications, nil
}

// CountByStatus returns total, pending ('applied') and 'selected' counts in
// a single scan.
func (r *ApplicationRepository) CountByStatus(ctx context.Context) (total, pending, selected int64, err error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'applied'),
		       COUNT(*) FILTER (WHERE status = 'selected')
		FROM applications
	`
	if err = r.db.QueryRow(ctx, query).Scan(&total, &pending, &selected); err != nil {
		return 0, 0, 0, fmt.Errorf("error counting applications: %w", err)
	}
	return total, pending, selected, nil
}

func (r *ApplicationRepository) scanApplication(row pgx.Row) (*models.Application, error) {
	var application models.Application
	err := row.Scan(
		&application.ID, &application.StudentID, &application.StudentName,
		&application.PlacementID, &application.PlacementTitle, &application.CompanyID,
		&application.CompanyName, &application.ApplicationDate, &application.Status,
		&application.CurrentRound, &application.RoundsCompleted, &application.Resume,
		&application.Feedback, &application.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Msg("Error scanning application row")
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &application, nil
}
