package storefront

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jemtech/storefront/internal/gallery"
)

// SessionCookieName identifies the browsing session that owns a gallery
// controller.
const SessionCookieName = "jemtech_session"

// sessionTTL bounds both the cookie lifetime and how long an idle session's
// gallery state is retained.
const sessionTTL = 30 * 24 * time.Hour

// sweepInterval is how often the store scans for expired sessions.
const sweepInterval = time.Minute

type sessionEntry struct {
	gallery  *gallery.Controller
	lastSeen time.Time
}

// SessionStore hands each browsing session its own gallery controller and
// serializes access to it. Sessions idle past sessionTTL are swept, so the
// map tracks active visitors rather than growing per cookie forever.
type SessionStore struct {
	mu        sync.Mutex
	galleries map[string]*sessionEntry
	secure    bool
	lastSweep time.Time
}

// NewSessionStore creates a session store. secure controls the cookie's
// Secure flag and should be true behind TLS.
func NewSessionStore(secure bool) *SessionStore {
	return &SessionStore{
		galleries: make(map[string]*sessionEntry),
		secure:    secure,
		lastSweep: time.Now(),
	}
}

// WithGallery runs fn against the session's controller while holding the
// store lock, so transitions from concurrent requests in one session never
// interleave. The session and its cookie are created when absent.
func (s *SessionStore) WithGallery(w http.ResponseWriter, r *http.Request, fn func(*gallery.Controller)) {
	sessionID := GetSessionIDFromCookie(r)
	if sessionID == "" {
		sessionID = uuid.New().String()
		s.setSessionCookie(w, sessionID)
	}

	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	entry, ok := s.galleries[sessionID]
	if !ok {
		entry = &sessionEntry{gallery: gallery.NewController()}
		s.galleries[sessionID] = entry
	}
	entry.lastSeen = now
	fn(entry.gallery)
}

// sweep drops sessions idle past sessionTTL. Called with the lock held, at
// most once per sweepInterval.
func (s *SessionStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now

	for id, entry := range s.galleries {
		if now.Sub(entry.lastSeen) > sessionTTL {
			delete(s.galleries, id)
		}
	}
}

func (s *SessionStore) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetSessionIDFromCookie retrieves the session ID from the jemtech_session
// cookie. Returns empty string if the cookie is not present.
func GetSessionIDFromCookie(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
