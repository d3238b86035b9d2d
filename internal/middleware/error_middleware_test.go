package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "validation", err: apperrors.NewValidationError("the name is required"), wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "bad request", err: apperrors.ErrBadRequest, wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "not found sentinel", err: apperrors.ErrAreaNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "wrapped not found", err: apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student not found"), wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "unique conflict", err: apperrors.ErrTeacherEmailExists, wantStatus: 409, wantCode: dto.ErrorCodeUniqueConflict},
		{name: "student number conflict", err: apperrors.ErrStudentNumberExists, wantStatus: 409, wantCode: dto.ErrorCodeUniqueConflict},
		{name: "referential conflict", err: apperrors.ErrCareerHasRelations, wantStatus: 409, wantCode: dto.ErrorCodeReferentialConflict},
		{name: "external service", err: apperrors.ErrExternalService, wantStatus: 502, wantCode: dto.ErrorCodeExternalServiceError},
		{name: "unknown error", err: errors.New("kaboom"), wantStatus: 500, wantCode: dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorSurfacesCustomMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrAreaHasRelations,
		"cannot delete: 2 careers, 1 courses and 3 teachers reference this area")

	rec, body := handleError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "cannot delete: 2 careers, 1 courses and 3 teachers reference this area", body.Error.Message)
}

func TestHandleAPIErrorSentinelMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{name: "student number", err: apperrors.ErrStudentNumberExists, wantMessage: "student number is already in use"},
		{name: "student email", err: apperrors.ErrStudentEmailExists, wantMessage: "student email is already in use"},
		{name: "teacher email", err: apperrors.ErrTeacherEmailExists, wantMessage: "teacher with this email already exists"},
		{name: "area name", err: apperrors.ErrAreaNameExists, wantMessage: "academic area with this name already exists"},
		{name: "career relations", err: apperrors.ErrCareerHasRelations, wantMessage: "career has enrolled students and cannot be deleted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)
			assert.Equal(t, http.StatusConflict, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
		})
	}
}

func TestHandleAPIErrorInternalDetails(t *testing.T) {
	_, body := handleError(t, errors.New("pq: connection refused"))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Equal(t, "pq: connection refused", body.Error.Details)
}
