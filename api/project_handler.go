package api

import (
	"net/http"
	"strconv"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/ayaskant-12/portfolio-backend/uploads"
	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	uploader    *uploads.Uploader
	readCache   *cache.Cache
}

func newProjectHandler(projectRepo *database.ProjectRepo, uploader *uploads.Uploader, readCache *cache.Cache) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		uploader:    uploader,
		readCache:   readCache,
	}
}

// ProjectListing is the admin list view: every project, plus the record
// under edit when the list was requested with ?edit=<id>.
type ProjectListing struct {
	Projects []*models.Project `json:"projects"`
	Edit     *models.Project   `json:"edit,omitempty"`
	Total    int               `json:"total"`
}

// urlParamID parses the {id} route parameter shared by all entity routes.
func urlParamID(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing id")
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid id")
	}
	return uint(id), nil
}

// editParamID parses the optional ?edit=<id> query parameter on list views.
func editParamID(r *http.Request) (uint, bool) {
	idStr := r.URL.Query().Get("edit")
	if idStr == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// list retrieves all projects for the admin panel
// @Summary List projects
// @Description Retrieves all projects newest-first, optionally echoing the record selected for editing
// @Tags Projects
// @Produce json
// @Param edit query int false "ID of the project being edited"
// @Success 200 {object} ProjectListing "Projects with optional edit record"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /admin/projects [get]
func (h projectHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		listing := ProjectListing{Projects: projects, Total: len(projects)}
		if editID, ok := editParamID(r); ok {
			edit, err := h.projectRepo.FindByID(editID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
				return
			}
			listing.Edit = edit
		}

		h.responder.WriteJSON(w, listing)
	}
}

// add creates a new project from form fields
// @Summary Add project
// @Description Creates a project from admin form input, storing an attached image when present
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or malformed field"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /admin/projects/add [post]
func (h projectHandler) add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := projectFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageURL, err := storeOptionalImage(r, h.uploader, "image", uploads.CategoryProjects)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		project.ImageURL = imageURL

		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// edit updates an existing project
// @Summary Edit project
// @Description Applies submitted form fields to an existing project; fields not submitted keep their value
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed field"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /admin/projects/{id}/edit [post]
func (h projectHandler) edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := applyProjectForm(r, project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageURL, err := storeOptionalImage(r, h.uploader, "image", uploads.CategoryProjects)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if imageURL != "" {
			project.ImageURL = imageURL
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSON(w, project)
	}
}

// delete removes a project by ID
// @Summary Delete project
// @Description Permanently removes a project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /admin/projects/{id}/delete [get]
func (h projectHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := h.projectRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// projectFromForm builds a new project from the add form. Title and
// description are required; everything else is optional.
func projectFromForm(r *http.Request) (*models.Project, error) {
	title, err := formRequired(r, "title")
	if err != nil {
		return nil, err
	}
	description, err := formRequired(r, "description")
	if err != nil {
		return nil, err
	}

	return &models.Project{
		Title:       title,
		Description: description,
		TechStack:   formString(r, "tech_stack"),
		ProjectLink: formString(r, "project_link"),
		GithubLink:  formString(r, "github_link"),
		Featured:    formBool(r, "featured"),
	}, nil
}

// applyProjectForm overwrites submitted fields on an existing project.
// Featured follows checkbox semantics: an absent box means false.
func applyProjectForm(r *http.Request, project *models.Project) error {
	if formPresent(r, "title") {
		title, err := formRequired(r, "title")
		if err != nil {
			return err
		}
		project.Title = title
	}
	if formPresent(r, "description") {
		description, err := formRequired(r, "description")
		if err != nil {
			return err
		}
		project.Description = description
	}
	if formPresent(r, "tech_stack") {
		project.TechStack = formString(r, "tech_stack")
	}
	if formPresent(r, "project_link") {
		project.ProjectLink = formString(r, "project_link")
	}
	if formPresent(r, "github_link") {
		project.GithubLink = formString(r, "github_link")
	}
	project.Featured = formBool(r, "featured")
	return nil
}
