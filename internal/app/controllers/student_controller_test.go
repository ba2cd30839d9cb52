package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/services"
	"github.com/campushq/placement-portal/internal/middleware"
	"github.com/campushq/placement-portal/internal/pkg/auth"
)

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newStudentUpdateRouter(repo *MockStudentRepository) (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "placement-portal-test",
	})

	controller := NewStudentController(services.NewStudentService(repo, zerolog.Nop()))
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	router := gin.New()
	router.PUT("/api/v1/students/:id", authMiddleware.JWTAuth(), controller.Update)
	return router, jwtService
}

func putStudent(t *testing.T, router *gin.Engine, token, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/students/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	return w
}

func TestStudentUpdate_CompanyCannotUpdateStudent(t *testing.T) {
	repo := new(MockStudentRepository)
	router, jwtService := newStudentUpdateRouter(repo)

	token, _, _, _, err := jwtService.GenerateTokenPair(42, "hr@acme.com", string(models.RoleCompany))
	require.NoError(t, err)

	w := putStudent(t, router, token, "7", `{"name":"Rewritten By Company"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStudentUpdate_StudentCannotUpdateOtherStudent(t *testing.T) {
	repo := new(MockStudentRepository)
	router, jwtService := newStudentUpdateRouter(repo)

	token, _, _, _, err := jwtService.GenerateTokenPair(8, "bob@college.edu", string(models.RoleStudent))
	require.NoError(t, err)

	w := putStudent(t, router, token, "7", `{"name":"Hijacked"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStudentUpdate_StudentUpdatesOwnRecord(t *testing.T) {
	repo := new(MockStudentRepository)
	router, jwtService := newStudentUpdateRouter(repo)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&models.Student{
		ID:    7,
		Name:  "Ada Lovelace",
		Email: "ada@college.edu",
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	token, _, _, _, err := jwtService.GenerateTokenPair(7, "ada@college.edu", string(models.RoleStudent))
	require.NoError(t, err)

	w := putStudent(t, router, token, "7", `{"phone":"555-0101"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStudentUpdate_AdminUpdatesAnyStudent(t *testing.T) {
	repo := new(MockStudentRepository)
	router, jwtService := newStudentUpdateRouter(repo)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&models.Student{
		ID:    7,
		Name:  "Ada Lovelace",
		Email: "ada@college.edu",
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	token, _, _, _, err := jwtService.GenerateTokenPair(1, "placement@college.edu", string(models.RoleAdmin))
	require.NoError(t, err)

	w := putStudent(t, router, token, "7", `{"department":"ECE"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertCalled(t, "Update", mock.Anything, mock.Anything)
}
