package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func seedAdmin(t *testing.T, repo *database.AdminRepo) {
	t.Helper()
	admin := &models.Admin{Username: "admin"}
	require.NoError(t, admin.SetPassword("admin123"))
	require.NoError(t, repo.Add(admin))
}

func TestLogin_Success(t *testing.T) {
	db := newTestDatabase(t)
	seedAdmin(t, db.AdminRepo())
	sessions := newTestSessions()
	handler := newAuthHandler(db.AdminRepo(), sessions)

	rec := postLogin(t, handler.login(), url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"success"`)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, sessionName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDatabase(t)
	seedAdmin(t, db.AdminRepo())
	handler := newAuthHandler(db.AdminRepo(), newTestSessions())

	rec := postLogin(t, handler.login(), url.Values{
		"username": {"admin"},
		"password": {"letmein"},
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		require.NotEqual(t, sessionName, cookie.Name)
	}
}

func TestLogin_UnknownUsername(t *testing.T) {
	db := newTestDatabase(t)
	seedAdmin(t, db.AdminRepo())
	handler := newAuthHandler(db.AdminRepo(), newTestSessions())

	rec := postLogin(t, handler.login(), url.Values{
		"username": {"root"},
		"password": {"admin123"},
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	db := newTestDatabase(t)
	handler := newAuthHandler(db.AdminRepo(), newTestSessions())

	rec := postLogin(t, handler.login(), url.Values{})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_RejectsAnonymous(t *testing.T) {
	sessions := newTestSessions()
	middleware := newAuthMiddleware(sessions)

	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	middleware.requireSession(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, reached)
}

func TestRequireSession_AllowsAuthenticated(t *testing.T) {
	sessions := newTestSessions()
	middleware := newAuthMiddleware(sessions)

	// Establish a session and reuse the cookie it set.
	loginReq := httptest.NewRequest("POST", "/admin/login", nil)
	loginRec := httptest.NewRecorder()
	require.NoError(t, sessions.establish(loginRec, loginReq, 1))

	var gotAdminID uint
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID, _ = ctxAdminID(r.Context())
	})

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	for _, cookie := range loginRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	middleware.requireSession(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, gotAdminID)
}

func TestLogout_ClearsSession(t *testing.T) {
	db := newTestDatabase(t)
	sessions := newTestSessions()
	handler := newAuthHandler(db.AdminRepo(), sessions)

	req := httptest.NewRequest("GET", "/admin/logout", nil)
	rec := httptest.NewRecorder()
	handler.logout()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, sessionName, cookies[0].Name)
	require.Negative(t, cookies[0].MaxAge)
}
