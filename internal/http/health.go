package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	outputDir string
	version   string
}

func NewHealthController(outputDir, version string) *HealthController {
	return &HealthController{
		outputDir: outputDir,
		version:   version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check the output directory can take new memes
	if h.outputDir != "" {
		if err := checkWritable(h.outputDir); err != nil {
			checks["output_dir"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["output_dir"] = "ok"
		}
	} else {
		checks["output_dir"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// checkWritable touches and removes a probe file in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
