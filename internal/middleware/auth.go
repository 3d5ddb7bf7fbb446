package middleware

import (
	"context"
	"net/http"
	"time"

	"news-service/internal/logger"
	"news-service/internal/session"
)

const loginPath = "/login"

// unexported, collision-proof context keys
type accountIDContextKeyType struct{}
type sessionContextKeyType struct{}

var (
	accountIDKey = accountIDContextKeyType{}
	sessionKey   = sessionContextKeyType{}
)

// AccountIDFromContext extracts the authenticated account ID from context.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

// SessionFromContext extracts the current session from context. The
// session may be anonymous; login binds an account into it.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

type SessionMiddleware struct {
	Store  session.Store
	TTL    time.Duration
	Cookie session.CookieOptions
}

func NewSessionMiddleware(
	store session.Store,
	ttl time.Duration,
	cookie session.CookieOptions,
) *SessionMiddleware {
	return &SessionMiddleware{Store: store, TTL: ttl, Cookie: cookie}
}

// Ensure attaches the client's session to the request context, creating
// an empty anonymous one on first contact with an unknown client.
func (m *SessionMiddleware) Ensure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.load(r)

		if sess == nil {
			sess = m.start(w, r)
		}

		if sess != nil {
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth gates protected routes. A missing, expired or anonymous
// session redirects to the login page instead of returning 401; on
// success the bound account ID is attached to the request context.
func (m *SessionMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.load(r)

		if sess == nil || !sess.Authenticated() {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		ctx = context.WithValue(ctx, accountIDKey, sess.AccountID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// load resolves the session cookie to a live session, deleting expired
// ones on sight. Returns nil for anything unusable.
func (m *SessionMiddleware) load(r *http.Request) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := m.Store.Get(r.Context(), cookie.Value)
	if err != nil || sess == nil {
		return nil
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = m.Store.Delete(r.Context(), cookie.Value)
		return nil
	}

	return sess
}

// start creates an anonymous session and issues its cookie. Failures are
// logged and swallowed: the request proceeds without a session.
func (m *SessionMiddleware) start(w http.ResponseWriter, r *http.Request) *session.Session {
	sessionID, err := session.GenerateID()
	if err != nil {
		logger.Error("failed to generate session id", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	now := time.Now()
	sess := &session.Session{
		SessionID: sessionID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.TTL),
	}

	if err := m.Store.Create(r.Context(), *sess); err != nil {
		logger.Error("failed to create session", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	session.SetCookie(w, sessionID, sess.ExpiresAt, m.Cookie)

	return sess
}
