package api

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName       = "portfolio_session"
	sessionAdminIDKey = "admin_id"
)

// sessionManager wraps the cookie store behind the credential gate. The
// session is the only server-side proof that a request comes from the
// authenticated admin.
type sessionManager struct {
	store *sessions.CookieStore
}

func newSessionManager(secret []byte, secure bool) *sessionManager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &sessionManager{store: store}
}

// establish binds a new session to the given admin id.
func (m *sessionManager) establish(w http.ResponseWriter, r *http.Request, adminID uint) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[sessionAdminIDKey] = adminID
	return session.Save(r, w)
}

// clear invalidates the current session.
func (m *sessionManager) clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, sessionAdminIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// adminID returns the admin id bound to the request's session, if any.
func (m *sessionManager) adminID(r *http.Request) (uint, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	id, ok := session.Values[sessionAdminIDKey].(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
