package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessMessage(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessMessage(c, "OTP sent")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response MessageResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "OTP sent", response.Message)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name         string
		send         func(echo.Context, string) error
		message      string
		expectedCode int
		expectedBody string
	}{
		{"bad request", BadRequestResponse, "Phone number is required", http.StatusBadRequest, "Phone number is required"},
		{"unauthorized default", UnauthorizedResponse, "", http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", ForbiddenResponse, "Admin access required", http.StatusForbidden, "Admin access required"},
		{"internal default", InternalServerErrorResponse, "", http.StatusInternalServerError, "Internal Server Error"},
		{"service unavailable", ServiceUnavailableResponse, "Failed to send OTP via WhatsApp", http.StatusServiceUnavailable, "Failed to send OTP via WhatsApp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tt.send(c, tt.message)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedBody, response.Error)
		})
	}
}
