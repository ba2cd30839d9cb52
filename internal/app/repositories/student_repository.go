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

var studentColumns = []string{
	"id", "name", "email", "password", "student_no", "department", "year",
	"cgpa", "skills", "phone", "resume", "status", "eligible_for_placements",
	"registration_date",
}

// IStudentRepository defines student data access operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Count(ctx context.Context) (int64, error)
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student and fills in the assigned id. Duplicate
// email or student number surfaces as ErrStudentAlreadyExists via the
// table's unique constraints rather than a check-then-insert.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "email", "password", "student_no", "department", "year",
			"cgpa", "skills", "phone", "resume", "status", "eligible_for_placements",
			"registration_date").
		Values(student.Name, student.Email, student.Password, student.StudentNo,
			student.Department, student.Year, student.CGPA, student.Skills,
			student.Phone, student.Resume, student.Status, student.EligibleForPlacements,
			student.RegistrationDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") ||
			dberrors.IsDuplicateConstraintError(err, "students_student_no_key") {
			logger.Warn().Str("email", student.Email).Str("studentNo", student.StudentNo).Msg("Attempted to create duplicate student")
			return apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("studentID", student.ID).Str("email", student.Email).Msg("Student created successfully")
	return nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	return r.scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	return r.scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("registration_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := r.scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading student rows: %w", err)
	}

	return students, nil
}

// Update persists the full student row. Returns ErrStudentNotFound when the
// id does not exist.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("department", student.Department).
		Set("year", student.Year).
		Set("cgpa", student.CGPA).
		Set("skills", student.Skills).
		Set("phone", student.Phone).
		Set("resume", student.Resume).
		Set("status", student.Status).
		Set("eligible_for_placements", student.EligibleForPlacements).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count returns the number of registered students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

func (r *StudentRepository) scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.Name, &student.Email, &student.Password,
		&student.StudentNo, &student.Department, &student.Year, &student.CGPA,
		&student.Skills, &student.Phone, &student.Resume, &student.Status,
		&student.EligibleForPlacements, &student.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}
