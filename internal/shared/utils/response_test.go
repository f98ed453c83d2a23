package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaras-platform/jaras/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, http.StatusOK, "ok", map[string]int{"units": 3})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
	assert.Nil(t, resp.Error)
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"unavailable", errors.NewUnavailableError("catalog unavailable"), http.StatusServiceUnavailable, "unavailable"},
		{"wrapped validation", fmt.Errorf("quote: %w", errors.NewValidationError("bad")), http.StatusBadRequest, "validation_error"},
		{"plain error hides details", fmt.Errorf("dial tcp: refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.NotContains(t, resp.Error.Message, "dial tcp")
		})
	}
}
