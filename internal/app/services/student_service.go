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

// StudentService handles student registration and profile operations
type StudentService struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// RegisterStudent creates a new student account. The server assigns the id,
// stamps the registration date and seeds the placement-eligibility defaults.
// Email and student-number uniqueness is enforced by the storage layer, so a
// lost race between two identical registrations still yields one row.
func (s *StudentService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("name and email are required")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:                  req.Name,
		Email:                 strings.ToLower(strings.TrimSpace(req.Email)),
		Password:              hashedPassword,
		StudentNo:             req.StudentNo,
		Department:            req.Department,
		Year:                  req.Year,
		CGPA:                  req.CGPA,
		Skills:                req.Skills,
		Phone:                 req.Phone,
		Resume:                req.Resume,
		Status:                models.StudentStatusActive,
		EligibleForPlacements: true,
		RegistrationDate:      time.Now(),
	}
	if student.Skills == nil {
		student.Skills = []string{}
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(models.RoleStudent)).Inc()
	return student, nil
}

// GetStudent retrieves a single student by id.
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("student id must be positive")
	}
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves all students.
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// UpdateStudent applies a partial update to a student profile. Fields left
// nil in the request keep their stored values. Email, student number and
// password are not updatable through this path.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		student.Name = *req.Name
	}
	if req.Department != nil {
		student.Department = *req.Department
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.CGPA != nil {
		student.CGPA = *req.CGPA
	}
	if req.Skills != nil {
		student.Skills = req.Skills
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Resume != nil {
		student.Resume = *req.Resume
	}
	if req.Status != nil {
		student.Status = *req.Status
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student profile updated")
	return student, nil
}
