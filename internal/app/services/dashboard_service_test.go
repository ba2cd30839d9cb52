package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	companyRepo := new(MockCompanyRepository)
	placementRepo := new(MockPlacementRepository)
	applicationRepo := new(MockApplicationRepository)
	svc := NewDashboardService(studentRepo, companyRepo, placementRepo, applicationRepo, zerolog.Nop())

	studentRepo.On("Count", mock.Anything).Return(int64(120), nil)
	companyRepo.On("CountByStatus", mock.Anything).Return(int64(15), int64(10), int64(5), nil)
	placementRepo.On("CountActive", mock.Anything).Return(int64(8), nil)
	applicationRepo.On("CountByStatus", mock.Anything).Return(int64(300), int64(250), int64(20), nil)

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalStudents)
	assert.Equal(t, int64(15), stats.TotalCompanies)
	assert.Equal(t, int64(10), stats.CompaniesVerified)
	assert.Equal(t, int64(5), stats.CompaniesPending)
	assert.Equal(t, int64(8), stats.ActivePlacements)
	assert.Equal(t, int64(300), stats.TotalApplications)
	assert.Equal(t, int64(250), stats.PendingApplications)
	assert.Equal(t, int64(20), stats.SelectedStudents)
}

func TestDashboardService_GetStats_PropagatesError(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	companyRepo := new(MockCompanyRepository)
	placementRepo := new(MockPlacementRepository)
	applicationRepo := new(MockApplicationRepository)
	svc := NewDashboardService(studentRepo, companyRepo, placementRepo, applicationRepo, zerolog.Nop())

	countErr := errors.New("connection reset")
	studentRepo.On("Count", mock.Anything).Return(int64(0), countErr)

	stats, err := svc.GetStats(context.Background())

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, countErr)
}
