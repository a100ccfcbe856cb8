package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/memegen/internal/security"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(security.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.SessionLoadSave())
	}

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}
	router.Static(MemesURLPrefix, cfg.OutputDir)

	health := NewHealthController(cfg.OutputDir, cfg.Version)
	memes := NewMemeController(cfg.Generator, cfg.Fetcher, cfg.Sessions)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// UI routes
	router.GET("/", memes.Random)
	router.GET("/create", memes.Form)
	router.POST("/create", memes.Create)

	return router
}
