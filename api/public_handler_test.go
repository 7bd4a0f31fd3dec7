package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/stretchr/testify/require"
)

func TestContact_PersistsMessage(t *testing.T) {
	db := newTestDatabase(t)
	handler := newPublicHandler(db, newReadCache(), nil)

	form := url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"subject": {"Hello"},
		"message": {"I liked your chat project."},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.contact()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])

	messages, err := db.MessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "Visitor", messages[0].Name)
	require.False(t, messages[0].Read)
}

func TestContact_StoreFailureIsReported(t *testing.T) {
	gdb := newTestGorm(t)
	require.NoError(t, gdb.Migrator().DropTable(&models.ContactMessage{}))
	handler := newPublicHandler(database.New(gdb), newReadCache(), nil)

	form := url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"message": {"Is this thing on?"},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.contact()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
	require.Contains(t, body["message"], "Error sending message:")
}

func TestContact_MissingMessageIsRejected(t *testing.T) {
	db := newTestDatabase(t)
	handler := newPublicHandler(db, newReadCache(), nil)

	form := url.Values{
		"name":  {"Visitor"},
		"email": {"visitor@example.com"},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.contact()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	messages, err := db.MessageRepo().FindAll()
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestHome_AggregatesContent(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(t, db.BioRepo().Upsert(&models.Bio{Name: "Ayaskant Dash", AboutMe: "Developer", Email: "a@example.com"}))
	require.NoError(t, db.SkillRepo().Add(&models.Skill{SkillName: "Go", ProficiencyLevel: 75}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{Title: "Featured", Description: "d", Featured: true}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{Title: "Hidden", Description: "d"}))
	require.NoError(t, db.LetsTalkRepo().Add(&models.LetsTalk{Title: "Email me", IsActive: true}))
	require.NoError(t, db.LetsTalkRepo().Add(&models.LetsTalk{Title: "Retired", IsActive: false}))

	handler := newPublicHandler(db, newReadCache(), nil)
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.home()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page HomePage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.NotNil(t, page.Bio)
	require.Equal(t, "Ayaskant Dash", page.Bio.Name)
	require.Len(t, page.Skills, 1)
	require.Len(t, page.FeaturedProjects, 1)
	require.Equal(t, "Featured", page.FeaturedProjects[0].Title)
	require.Len(t, page.LetsTalk, 1)
	require.Equal(t, "Email me", page.LetsTalk[0].Title)
}

func TestHome_ServesFromCacheUntilFlushed(t *testing.T) {
	db := newTestDatabase(t)
	readCache := newReadCache()
	handler := newPublicHandler(db, readCache, nil)

	get := func() HomePage {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		handler.home()(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var page HomePage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		return page
	}

	require.Empty(t, get().Skills)

	// A write that bypasses the handlers is invisible until the cache drops.
	require.NoError(t, db.SkillRepo().Add(&models.Skill{SkillName: "Go", ProficiencyLevel: 75}))
	require.Empty(t, get().Skills)

	readCache.Flush()
	require.Len(t, get().Skills, 1)
}

func TestProjects_ListsAllNewestFirst(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(t, db.ProjectRepo().Add(&models.Project{Title: "First", Description: "d"}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{Title: "Second", Description: "d"}))

	handler := newPublicHandler(db, newReadCache(), nil)
	req := httptest.NewRequest("GET", "/api/projects", nil)
	rec := httptest.NewRecorder()
	handler.projects()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var projects []*models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	require.Equal(t, "Second", projects[0].Title)
}
