package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHealth(t *testing.T, controller *HealthController) (int, HealthResponse) {
	t.Helper()

	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w.Code, response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when output dir is writable", func(t *testing.T) {
		code, response := serveHealth(t, NewHealthController(t.TempDir(), "1.0.0"))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["output_dir"])
		assert.Contains(t, response.Time, "T")
	})

	t.Run("reports missing output dir", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "gone")

		code, response := serveHealth(t, NewHealthController(missing, "1.0.0"))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["output_dir"], "error")
	})

	t.Run("output dir not configured", func(t *testing.T) {
		code, response := serveHealth(t, NewHealthController("", ""))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "not configured", response.Checks["output_dir"])
		assert.Empty(t, response.Version)
	})
}

func TestHealthResponse_OmitsEmptyVersion(t *testing.T) {
	response := HealthResponse{
		Status: "healthy",
		Time:   "2024-01-01T12:00:00Z",
		Checks: map[string]string{},
	}

	jsonBytes, err := json.Marshal(response)
	require.NoError(t, err)

	assert.NotContains(t, string(jsonBytes), "version")
}
