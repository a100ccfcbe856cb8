package http

import (
	"github.com/mrlokans/memegen/internal/security"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Generator MemeGenerator
	Fetcher   ImageFetcher

	// Directory generated memes are written to, served under /memes
	OutputDir string

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string

	// CSRF protection is enabled when a secret is set
	CSRFSecret    []byte
	SecureCookies bool

	// Optional per-visitor history of generated memes
	Sessions *security.SessionManager
}
