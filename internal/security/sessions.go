package security

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

// SessionKeyRecentMemes holds the public paths of a visitor's latest memes.
const SessionKeyRecentMemes = "recent_memes"

// MaxRecentMemes caps the history kept per session.
const MaxRecentMemes = 5

// SessionManager wraps scs.SessionManager with application-specific methods.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates an in-memory session manager. Sessions do not
// survive a restart.
func NewSessionManager(lifetime time.Duration, secureCookies bool) *SessionManager {
	sm := scs.New()
	sm.Store = memstore.New()

	sm.Lifetime = lifetime
	sm.IdleTimeout = lifetime / 2

	sm.Cookie.Name = "memegen_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &SessionManager{SessionManager: sm}
}

// AddRecentMeme records a generated meme, newest first, dropping the oldest
// past MaxRecentMemes.
func (sm *SessionManager) AddRecentMeme(ctx context.Context, path string) {
	recent := append([]string{path}, sm.RecentMemes(ctx)...)
	if len(recent) > MaxRecentMemes {
		recent = recent[:MaxRecentMemes]
	}
	sm.Put(ctx, SessionKeyRecentMemes, recent)
}

// RecentMemes returns the visitor's recent memes, newest first.
func (sm *SessionManager) RecentMemes(ctx context.Context) []string {
	recent, ok := sm.Get(ctx, SessionKeyRecentMemes).([]string)
	if !ok {
		return nil
	}
	return append([]string(nil), recent...)
}
