package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/ayaskant-12/portfolio-backend/uploads"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newBioRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	db := newTestDatabase(t)
	handler := newBioHandler(db.BioRepo(), db.SocialLinkRepo(), uploads.New(t.TempDir()), newReadCache())

	r := chi.NewRouter()
	r.Get("/admin/bio", handler.page())
	r.Post("/admin/bio", handler.update())
	r.Post("/admin/social/add", handler.addSocial())
	r.Post("/admin/social/{id}/edit", handler.editSocial())
	r.Get("/admin/social/{id}/delete", handler.deleteSocial())
	return r, db
}

func TestBioUpdate_CreatesSingleton(t *testing.T) {
	router, db := newBioRouter(t)

	rec := postForm(router, "/admin/bio", url.Values{
		"name":     {"Ayaskant Dash"},
		"about_me": {"Developer"},
		"email":    {"a@example.com"},
		"tagline":  {"Full-Stack Developer"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	bio, err := db.BioRepo().Get()
	require.NoError(t, err)
	require.NotNil(t, bio)
	require.Equal(t, "Ayaskant Dash", bio.Name)
	require.Equal(t, "Full-Stack Developer", bio.Tagline)
}

func TestBioUpdate_FirstSaveRequiresCoreFields(t *testing.T) {
	router, db := newBioRouter(t)

	rec := postForm(router, "/admin/bio", url.Values{"tagline": {"x"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	bio, err := db.BioRepo().Get()
	require.NoError(t, err)
	require.Nil(t, bio)
}

func TestBioUpdate_PartialKeepsExistingValues(t *testing.T) {
	router, db := newBioRouter(t)
	require.NoError(t, db.BioRepo().Upsert(&models.Bio{
		Name:    "Ayaskant Dash",
		AboutMe: "Developer",
		Email:   "a@example.com",
		Phone:   "+91 1234567890",
	}))

	rec := postForm(router, "/admin/bio", url.Values{"location": {"Bhubaneswar"}})
	require.Equal(t, http.StatusOK, rec.Code)

	bio, err := db.BioRepo().Get()
	require.NoError(t, err)
	require.Equal(t, "Bhubaneswar", bio.Location)
	require.Equal(t, "+91 1234567890", bio.Phone)
	require.Equal(t, "Ayaskant Dash", bio.Name)
}

func TestBioUpdate_CannotBlankName(t *testing.T) {
	router, db := newBioRouter(t)
	require.NoError(t, db.BioRepo().Upsert(&models.Bio{Name: "Ayaskant Dash", AboutMe: "Dev", Email: "a@example.com"}))

	rec := postForm(router, "/admin/bio", url.Values{"name": {"  "}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	bio, err := db.BioRepo().Get()
	require.NoError(t, err)
	require.Equal(t, "Ayaskant Dash", bio.Name)
}

func TestSocialLink_AddEditDelete(t *testing.T) {
	router, db := newBioRouter(t)

	rec := postForm(router, "/admin/social/add", url.Values{
		"platform": {"GitHub"},
		"url":      {"https://github.com/ayaskant-12"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var link models.SocialLink
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
	require.NotZero(t, link.ID)

	rec = postForm(router, "/admin/social/"+itoa(link.ID)+"/edit", url.Values{
		"icon_class": {"fab fa-github"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := db.SocialLinkRepo().FindByID(link.ID)
	require.NoError(t, err)
	require.Equal(t, "fab fa-github", stored.IconClass)
	require.Equal(t, "GitHub", stored.Platform)

	req := httptest.NewRequest("GET", "/admin/social/"+itoa(link.ID)+"/delete", nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, req)
	require.Equal(t, http.StatusOK, delRec.Code)

	stored, err = db.SocialLinkRepo().FindByID(link.ID)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestBioPage_EchoesEditSocial(t *testing.T) {
	router, db := newBioRouter(t)
	link := &models.SocialLink{Platform: "LinkedIn", URL: "https://linkedin.com/in/x"}
	require.NoError(t, db.SocialLinkRepo().Add(link))

	req := httptest.NewRequest("GET", "/admin/bio?edit_social="+itoa(link.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page BioPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Nil(t, page.Bio)
	require.Len(t, page.SocialLinks, 1)
	require.NotNil(t, page.EditSocial)
	require.Equal(t, "LinkedIn", page.EditSocial.Platform)
}
