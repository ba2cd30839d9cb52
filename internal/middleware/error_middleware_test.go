package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performWithError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation", apperrors.NewValidationError("name required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("student not found"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate student", apperrors.ErrStudentAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate company", apperrors.ErrCompanyAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"not eligible", apperrors.ErrNotEligible, http.StatusBadRequest, dto.ErrorCodeNotEligible},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"placement not found", apperrors.ErrPlacementNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unknown error", assert.AnError, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := performWithError(tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_CustomMessageSurvives(t *testing.T) {
	w := performWithError(apperrors.NewValidationError("company name and email are required"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "company name and email are required", resp.Error.Message)
}

func TestHandleAPIError_InternalDetailsHidden(t *testing.T) {
	w := performWithError(assert.AnError)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
