package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
)

func newApplicationServiceForTest(
	applicationRepo *MockApplicationRepository,
	studentRepo *MockStudentRepository,
	placementRepo *MockPlacementRepository,
	runner *fakeTxRunner,
) *ApplicationService {
	return NewApplicationService(applicationRepo, studentRepo, placementRepo, runner, zerolog.Nop())
}

func eligibleStudent() *models.Student {
	return &models.Student{
		ID:     7,
		Name:   "Priya Sharma",
		Email:  "priya@college.edu",
		CGPA:   8.2,
		Resume: "resumes/priya.pdf",
	}
}

func driveWithMinCGPA(min float64) *models.Placement {
	return &models.Placement{
		ID:          3,
		Title:       "Graduate Engineer",
		CompanyID:   11,
		CompanyName: "Acme Corp",
		Requirements: models.PlacementRequirements{
			MinimumCGPA: &min,
		},
		Status: models.PlacementStatusActive,
	}
}

func TestApplicationService_SubmitApplication_Success(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

	studentRepo.On("GetByID", mock.Anything, int64(7)).Return(eligibleStudent(), nil)
	placementRepo.On("GetByID", mock.Anything, int64(3)).Return(driveWithMinCGPA(7.5), nil)
	applicationRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Application")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*models.Application).ID = 100
		}).Return(nil)
	placementRepo.On("IncrementApplicationsCount", mock.Anything, mock.Anything, int64(3)).Return(nil)

	app, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
		StudentID:   7,
		PlacementID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), app.ID)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, models.InitialApplicationRound, app.CurrentRound)
	// Denormalized copies come from the live records at submit time.
	assert.Equal(t, "Priya Sharma", app.StudentName)
	assert.Equal(t, "Graduate Engineer", app.PlacementTitle)
	assert.Equal(t, int64(11), app.CompanyID)
	assert.Equal(t, "Acme Corp", app.CompanyName)
	assert.Equal(t, "resumes/priya.pdf", app.Resume)
	assert.Empty(t, app.RoundsCompleted)
	placementRepo.AssertNumberOfCalls(t, "IncrementApplicationsCount", 1)
}

func TestApplicationService_SubmitApplication_CGPABoundary(t *testing.T) {
	testCases := []struct {
		name        string
		studentCGPA float64
		minimumCGPA float64
		wantErr     error
	}{
		{"below minimum rejected", 7.0, 7.5, apperrors.ErrNotEligible},
		{"exactly at minimum accepted", 7.5, 7.5, nil},
		{"above minimum accepted", 8.0, 7.5, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			applicationRepo := new(MockApplicationRepository)
			studentRepo := new(MockStudentRepository)
			placementRepo := new(MockPlacementRepository)
			svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

			student := eligibleStudent()
			student.CGPA = tc.studentCGPA
			studentRepo.On("GetByID", mock.Anything, int64(7)).Return(student, nil)
			placementRepo.On("GetByID", mock.Anything, int64(3)).Return(driveWithMinCGPA(tc.minimumCGPA), nil)

			if tc.wantErr == nil {
				applicationRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
				placementRepo.On("IncrementApplicationsCount", mock.Anything, mock.Anything, int64(3)).Return(nil)
			}

			_, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
				StudentID:   7,
				PlacementID: 3,
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				applicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplicationService_SubmitApplication_NoMinimumCGPA(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

	student := eligibleStudent()
	student.CGPA = 0
	studentRepo.On("GetByID", mock.Anything, int64(7)).Return(student, nil)

	drive := driveWithMinCGPA(0)
	drive.Requirements.MinimumCGPA = nil
	placementRepo.On("GetByID", mock.Anything, int64(3)).Return(drive, nil)
	applicationRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	placementRepo.On("IncrementApplicationsCount", mock.Anything, mock.Anything, int64(3)).Return(nil)

	_, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
		StudentID:   7,
		PlacementID: 3,
	})

	assert.NoError(t, err)
}

func TestApplicationService_SubmitApplication_MissingStudentID(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

	// Student tokens get the id filled in upstream; an admin submitting
	// without one is a validation failure, not a lookup.
	_, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
		PlacementID: 3,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	studentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestApplicationService_SubmitApplication_UnknownStudent(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

	studentRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrStudentNotFound)

	_, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
		StudentID:   99,
		PlacementID: 3,
	})

	// A missing referenced entity on submit is a bad request, not a 404.
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestApplicationService_SubmitApplication_UnknownPlacement(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

	studentRepo.On("GetByID", mock.Anything, int64(7)).Return(eligibleStudent(), nil)
	placementRepo.On("GetByID", mock.Anything, int64(77)).Return(nil, apperrors.ErrPlacementNotFound)

	_, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
		StudentID:   7,
		PlacementID: 77,
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestApplicationService_SubmitApplication_Duplicate(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

	studentRepo.On("GetByID", mock.Anything, int64(7)).Return(eligibleStudent(), nil)
	placementRepo.On("GetByID", mock.Anything, int64(3)).Return(driveWithMinCGPA(7.5), nil)
	applicationRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrAlreadyApplied)

	_, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
		StudentID:   7,
		PlacementID: 3,
	})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	// The failed insert aborts the transaction before the counter moves.
	placementRepo.AssertNotCalled(t, "IncrementApplicationsCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_SubmitApplication_TxFailure(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	txErr := errors.New("begin failed")
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{err: txErr})

	studentRepo.On("GetByID", mock.Anything, int64(7)).Return(eligibleStudent(), nil)
	placementRepo.On("GetByID", mock.Anything, int64(3)).Return(driveWithMinCGPA(7.5), nil)

	_, err := svc.SubmitApplication(context.Background(), &dto.SubmitApplicationRequest{
		StudentID:   7,
		PlacementID: 3,
	})

	assert.ErrorIs(t, err, txErr)
}

func TestApplicationService_ListApplications(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	studentRepo := new(MockStudentRepository)
	placementRepo := new(MockPlacementRepository)
	svc := newApplicationServiceForTest(applicationRepo, studentRepo, placementRepo, &fakeTxRunner{})

	filter := dto.ApplicationFilter{StudentID: 7}
	applicationRepo.On("List", mock.Anything, filter).Return([]*models.Application{
		{ID: 1, StudentID: 7}, {ID: 2, StudentID: 7},
	}, nil)

	apps, err := svc.ListApplications(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, apps, 2)
}
