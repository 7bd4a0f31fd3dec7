package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/ayaskant-12/portfolio-backend/uploads"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newProjectRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	db := newTestDatabase(t)
	handler := newProjectHandler(db.ProjectRepo(), uploads.New(t.TempDir()), newReadCache())

	r := chi.NewRouter()
	r.Get("/admin/projects", handler.list())
	r.Post("/admin/projects/add", handler.add())
	r.Post("/admin/projects/{id}/edit", handler.edit())
	r.Get("/admin/projects/{id}/delete", handler.delete())
	return r, db
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// postMultipart posts form fields together with one file attachment.
func postMultipart(t *testing.T, router http.Handler, path string, fields map[string]string, fileField, filename string, content io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = io.Copy(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProjectAdd_RequiresTitle(t *testing.T) {
	router, db := newProjectRouter(t)

	rec := postForm(router, "/admin/projects/add", url.Values{"description": {"d"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "title")

	count, err := db.ProjectRepo().Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestProjectAdd_WithImage(t *testing.T) {
	router, db := newProjectRouter(t)

	rec := postMultipart(t, router, "/admin/projects/add", map[string]string{
		"title":       "Chat App",
		"description": "Realtime messaging",
		"tech_stack":  "Go, WebSockets",
		"featured":    "on",
	}, "image", "screenshot.png", strings.NewReader("png-bytes"))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	require.NotZero(t, project.ID)
	require.True(t, project.Featured)
	require.True(t, strings.HasPrefix(project.ImageURL, "uploads/projects/screenshot_"))

	stored, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, project.ImageURL, stored.ImageURL)
}

func TestProjectAdd_SkipsDisallowedImage(t *testing.T) {
	router, _ := newProjectRouter(t)

	rec := postMultipart(t, router, "/admin/projects/add", map[string]string{
		"title":       "Chat App",
		"description": "d",
	}, "image", "payload.exe", strings.NewReader("mz"))

	require.Equal(t, http.StatusCreated, rec.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	require.Empty(t, project.ImageURL)
}

func TestProjectEdit_PartialUpdate(t *testing.T) {
	router, db := newProjectRouter(t)

	project := &models.Project{Title: "Old Title", Description: "Old desc", TechStack: "Go", Featured: true}
	require.NoError(t, db.ProjectRepo().Add(project))

	// Only the title and the (unchecked) featured box are submitted.
	rec := postForm(router, "/admin/projects/"+itoa(project.ID)+"/edit", url.Values{
		"title": {"New Title"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, "New Title", stored.Title)
	require.Equal(t, "Old desc", stored.Description)
	require.Equal(t, "Go", stored.TechStack)
	require.False(t, stored.Featured)
}

func TestProjectEdit_NotFound(t *testing.T) {
	router, _ := newProjectRouter(t)

	rec := postForm(router, "/admin/projects/99/edit", url.Values{"title": {"x"}})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectEdit_InvalidID(t *testing.T) {
	router, _ := newProjectRouter(t)

	rec := postForm(router, "/admin/projects/abc/edit", url.Values{"title": {"x"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectDelete(t *testing.T) {
	router, db := newProjectRouter(t)

	project := &models.Project{Title: "Doomed", Description: "d"}
	require.NoError(t, db.ProjectRepo().Add(project))

	req := httptest.NewRequest("GET", "/admin/projects/"+itoa(project.ID)+"/delete", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "deleted successfully")

	stored, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestProjectList_WithEditParam(t *testing.T) {
	router, db := newProjectRouter(t)

	first := &models.Project{Title: "First", Description: "d"}
	second := &models.Project{Title: "Second", Description: "d"}
	require.NoError(t, db.ProjectRepo().Add(first))
	require.NoError(t, db.ProjectRepo().Add(second))

	req := httptest.NewRequest("GET", "/admin/projects?edit="+itoa(first.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listing ProjectListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Equal(t, 2, listing.Total)
	require.NotNil(t, listing.Edit)
	require.Equal(t, "First", listing.Edit.Title)
}
