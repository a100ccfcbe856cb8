// Package security provides the browser-facing protections of the web UI:
// CSRF tokens for form posts, response security headers and a cookie-backed
// session that remembers the memes a visitor generated recently.
//
// # Configuration
//
//	CSRF_SECRET=<32 bytes, hex or raw>  # Generated at startup if empty
//	SECURE_COOKIES=true                 # HTTPS-only cookies
//
// # Usage
//
//	sessions := security.NewSessionManager(24*time.Hour, cfg.Security.SecureCookies)
//	router.Use(security.CSRFMiddleware(secret, cfg.Security.SecureCookies))
//	router.Use(sessions.SessionLoadSave())
//
// Templates render the hidden token field with the csrfField function.
package security
