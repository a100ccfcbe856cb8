package security

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// CSRFTemplateField is the template function name for getting the CSRF token field.
const CSRFTemplateField = "csrfField"

// CSRFFormField is the form field gorilla/csrf reads the token from.
const CSRFFormField = "gorilla.csrf.Token"

const csrfTokenContextKey = "csrf_token"

// CSRFMiddleware creates a Gin middleware for CSRF protection.
// Safe HTTP methods pass through and get a token for the next form.
// When secure is false requests are treated as plain HTTP so the
// referer check meant for TLS does not reject local development.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		if !secure {
			c.Request = csrf.PlaintextHTTPRequest(c.Request)
		}

		passed := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Set(csrfTokenContextKey, csrf.Token(r))
			// Session middleware runs after this and layers its context on top
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
		if !passed {
			// The error handler already responded
			c.Abort()
		}
	}
}

// csrfErrorHandler handles CSRF validation failures.
func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"CSRF token invalid or missing"}`))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Form Expired</title></head>
<body style="font-family: system-ui; max-width: 400px; margin: 100px auto; text-align: center;">
<h1>Form Expired</h1>
<p>The form submission was invalid or has expired.</p>
<p><a href="/create">Go back and try again</a></p>
</body>
</html>`))
}

// GetCSRFToken retrieves the CSRF token from the Gin context.
func GetCSRFToken(c *gin.Context) string {
	if token, exists := c.Get(csrfTokenContextKey); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}

// CSRFTokenField returns an HTML hidden input field with the CSRF token.
func CSRFTokenField(c *gin.Context) string {
	token := GetCSRFToken(c)
	if token == "" {
		return ""
	}
	return `<input type="hidden" name="` + CSRFFormField + `" value="` + token + `">`
}

// ParseSecret decodes a configured secret. Hex strings are decoded, anything
// else is used as raw bytes. An empty value yields a fresh random 32-byte key.
func ParseSecret(configured string) ([]byte, bool, error) {
	if configured == "" {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, false, err
		}
		return secret, true, nil
	}

	if secret, err := hex.DecodeString(configured); err == nil {
		return secret, false, nil
	}
	return []byte(configured), false, nil
}
