package api

import (
	"net/http"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type toolHandler struct {
	responder Responder
	logger    zerolog.Logger
	toolRepo  *database.ToolRepo
	readCache *cache.Cache
}

func newToolHandler(toolRepo *database.ToolRepo, readCache *cache.Cache) toolHandler {
	logger := log.With().Str("handlerName", "toolHandler").Logger()

	return toolHandler{
		responder: NewResponder(logger),
		logger:    logger,
		toolRepo:  toolRepo,
		readCache: readCache,
	}
}

// ToolListing is the admin list view for tools & technologies.
type ToolListing struct {
	Tools []*models.Tool `json:"tools"`
	Edit  *models.Tool   `json:"edit,omitempty"`
	Total int            `json:"total"`
}

func (h toolHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := h.toolRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "tools", err))
			return
		}

		listing := ToolListing{Tools: tools, Total: len(tools)}
		if editID, ok := editParamID(r); ok {
			edit, err := h.toolRepo.FindByID(editID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "tool", err))
				return
			}
			listing.Edit = edit
		}

		h.responder.WriteJSON(w, listing)
	}
}

func (h toolHandler) add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tool, err := toolFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.toolRepo.Add(tool); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "tool", err))
			return
		}
		h.readCache.Flush()

		h.responder.WriteJSONStatus(w, http.StatusCreated, tool)
	}
}

func (h toolHandler) edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tool, err := h.toolRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "tool", err))
			return
		}
		if tool == nil {
			h.responder.WriteError(w, errs.NewNotFound("tool"))
			return
		}

		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := applyToolForm(r, tool); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.toolRepo.Update(tool); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "tool", err))
			return
		}
		h.readCache.Flush()

		h.responder.WriteJSON(w, tool)
	}
}

func (h toolHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tool, err := h.toolRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "tool", err))
			return
		}
		if tool == nil {
			h.responder.WriteError(w, errs.NewNotFound("tool"))
			return
		}

		if err := h.toolRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "tool", err))
			return
		}
		h.readCache.Flush()

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tool deleted successfully",
		})
	}
}

// toolFromForm builds a new tool. Only the name is required.
func toolFromForm(r *http.Request) (*models.Tool, error) {
	name, err := formRequired(r, "name")
	if err != nil {
		return nil, err
	}
	proficiency, err := formInt(r, "proficiency_level")
	if err != nil {
		return nil, err
	}
	displayOrder, err := formInt(r, "display_order")
	if err != nil {
		return nil, err
	}

	return &models.Tool{
		Name:             name,
		Category:         formString(r, "category"),
		IconClass:        formString(r, "icon_class"),
		ProficiencyLevel: proficiency,
		DisplayOrder:     displayOrder,
		IsFeatured:       formBool(r, "is_featured"),
	}, nil
}

func applyToolForm(r *http.Request, tool *models.Tool) error {
	if formPresent(r, "name") {
		name, err := formRequired(r, "name")
		if err != nil {
			return err
		}
		tool.Name = name
	}
	if formPresent(r, "category") {
		tool.Category = formString(r, "category")
	}
	if formPresent(r, "icon_class") {
		tool.IconClass = formString(r, "icon_class")
	}
	if formPresent(r, "proficiency_level") {
		proficiency, err := formInt(r, "proficiency_level")
		if err != nil {
			return err
		}
		tool.ProficiencyLevel = proficiency
	}
	if formPresent(r, "display_order") {
		displayOrder, err := formInt(r, "display_order")
		if err != nil {
			return err
		}
		tool.DisplayOrder = displayOrder
	}
	tool.IsFeatured = formBool(r, "is_featured")
	return nil
}
