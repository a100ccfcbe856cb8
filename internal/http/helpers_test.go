package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWantsJSON(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	assert.False(t, wantsJSON(c))

	c.Request.Header.Set("Accept", "application/json, text/plain")
	assert.True(t, wantsJSON(c))
}

func TestMemeURL(t *testing.T) {
	assert.Equal(t, "/memes/abc.png", memeURL("/var/lib/memegen/memes/abc.png"))
	assert.Equal(t, "/memes/abc.jpg", memeURL("abc.jpg"))
}

func TestRespondError_JSON(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Accept", "application/json")

	respondError(c, http.StatusTeapot, "teapot", "short and stout")

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"short and stout","code":"teapot"}`, w.Body.String())
}
