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
	"github.com/campushq/placement-portal/internal/pkg/logger"
)

var placementColumns = []string{
	"id", "title", "company_id", "company_name", "description", "minimum_cgpa",
	"eligible_departments", "skills_required", "position", "ctc", "job_location",
	"work_mode", "selection_rounds", "application_deadline", "drive_date",
	"status", "posted_date", "applications_count",
}

// IPlacementRepository defines placement drive data access operations
type IPlacementRepository interface {
	Create(ctx context.Context, placement *models.Placement) error
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	GetAll(ctx context.Context, status string) ([]*models.Placement, error)
	IncrementApplicationsCount(ctx context.Context, tx pgx.Tx, id int64) error
	CountActive(ctx context.Context) (int64, error)
}

// PlacementRepository handles placement drive database operations
type PlacementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new placement drive and fills in the assigned id.
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	sql, args, err := r.sb.Insert("placements").
		Columns("title", "company_id", "company_name", "description", "minimum_cgpa",
			"eligible_departments", "skills_required", "position", "ctc", "job_location",
			"work_mode", "selection_rounds", "application_deadline", "drive_date",
			"status", "posted_date", "applications_count").
		Values(placement.Title, placement.CompanyID, placement.CompanyName,
			placement.Description, placement.Requirements.MinimumCGPA,
			placement.Requirements.EligibleDepartments, placement.Requirements.SkillsRequired,
			placement.JobDetails.Position, placement.JobDetails.CTC,
			placement.JobDetails.Location, placement.JobDetails.WorkMode,
			placement.SelectionRounds, placement.ApplicationDeadline, placement.DriveDate,
			placement.Status, placement.PostedDate, placement.ApplicationsCount).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create placement SQL")
		return fmt.Errorf("failed to build create placement query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&placement.ID)
	if err != nil {
		logger.Error().Err(err).Str("title", placement.Title).Int64("companyID", placement.CompanyID).Msg("Error executing create placement query")
		return fmt.Errorf("error creating placement: %w", err)
	}

	logger.Info().Int64("placementID", placement.ID).Str("title", placement.Title).Str("status", placement.Status).Msg("Placement drive created")
	return nil
}

// GetByID retrieves a placement drive by id
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	sql, args, err := r.sb.Select(placementColumns...).
		From("placements").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get placement query: %w", err)
	}

	return r.scanPlacement(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves placement drives, optionally filtered by status.
func (r *PlacementRepository) GetAll(ctx context.Context, status string) ([]*models.Placement, error) {
	builder := r.sb.Select(placementColumns...).
		From("placements").
		OrderBy("posted_date DESC")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list placements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing placements: %w", err)
	}
	defer rows.Close()

	var placements []*models.Placement
	for rows.Next() {
		placement, err := r.scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading placement rows: %w", err)
	}

	return placements, nil
}

// IncrementApplicationsCount atomically bumps the applications counter for a
// drive inside the caller's transaction. The SQL increment avoids the
// read-modify-write race under concurrent submissions.
func (r *PlacementRepository) IncrementApplicationsCount(ctx context.Context, tx pgx.Tx, id int64) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE placements SET applications_count = applications_count + 1 WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("placementID", id).Msg("Error incrementing applications count")
		return fmt.Errorf("error incrementing applications count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// CountActive returns the number of currently active drives
func (r *PlacementRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM placements WHERE status = 'active'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active placements: %w", err)
	}
	return count, nil
}

func (r *PlacementRepository) scanPlacement(row pgx.Row) (*models.Placement, error) {
	var placement models.Placement
	err := row.Scan(
		&placement.ID, &placement.Title, &placement.CompanyID, &placement.CompanyName,
		&placement.Description, &placement.Requirements.MinimumCGPA,
		&placement.Requirements.EligibleDepartments, &placement.Requirements.SkillsRequired,
		&placement.JobDetails.Position, &placement.JobDetails.CTC,
		&placement.JobDetails.Location, &placement.JobDetails.WorkMode,
		&placement.SelectionRounds, &placement.ApplicationDeadline, &placement.DriveDate,
		&placement.Status, &placement.PostedDate, &placement.ApplicationsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		logger.Error().Err(err).Msg("Error scanning placement row")
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}
	return &placement, nil
}
