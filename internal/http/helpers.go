package http

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// MemesURLPrefix is where the output directory is served.
const MemesURLPrefix = "/memes"

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// wantsJSON returns true if the client asked for JSON instead of a page.
func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
}

// respondError sends an error as JSON or as the error page.
func respondError(c *gin.Context, status int, code, message string) {
	if wantsJSON(c) {
		c.JSON(status, ErrorResponse{Error: message, Code: code})
		return
	}
	c.HTML(status, "error", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// memeURL maps a file in the output directory to its public URL.
func memeURL(path string) string {
	return MemesURLPrefix + "/" + filepath.Base(path)
}
