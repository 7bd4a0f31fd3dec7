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

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
	readCache *cache.Cache
}

func newSkillHandler(skillRepo *database.SkillRepo, readCache *cache.Cache) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
		readCache: readCache,
	}
}

// SkillListing is the admin list view for skills.
type SkillListing struct {
	Skills []*models.Skill `json:"skills"`
	Edit   *models.Skill   `json:"edit,omitempty"`
	Total  int             `json:"total"`
}

func (h skillHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		listing := SkillListing{Skills: skills, Total: len(skills)}
		if editID, ok := editParamID(r); ok {
			edit, err := h.skillRepo.FindByID(editID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "skill", err))
				return
			}
			listing.Edit = edit
		}

		h.responder.WriteJSON(w, listing)
	}
}

func (h skillHandler) add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := skillFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Add(skill); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "skill", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSONStatus(w, http.StatusCreated, skill)
	}
}

func (h skillHandler) edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := applySkillForm(r, skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Update(skill); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "skill", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		if err := h.skillRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "skill", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}

// skillFromForm builds a new skill from the add form. Name and proficiency
// are required.
func skillFromForm(r *http.Request) (*models.Skill, error) {
	name, err := formRequired(r, "skill_name")
	if err != nil {
		return nil, err
	}
	proficiency, err := formRequiredInt(r, "proficiency_level")
	if err != nil {
		return nil, err
	}
	displayOrder, err := formInt(r, "display_order")
	if err != nil {
		return nil, err
	}

	return &models.Skill{
		SkillName:        name,
		ProficiencyLevel: proficiency,
		Category:         formString(r, "category"),
		IconClass:        formString(r, "icon_class"),
		DisplayOrder:     displayOrder,
	}, nil
}

func applySkillForm(r *http.Request, skill *models.Skill) error {
	if formPresent(r, "skill_name") {
		name, err := formRequired(r, "skill_name")
		if err != nil {
			return err
		}
		skill.SkillName = name
	}
	if formPresent(r, "proficiency_level") {
		proficiency, err := formRequiredInt(r, "proficiency_level")
		if err != nil {
			return err
		}
		skill.ProficiencyLevel = proficiency
	}
	if formPresent(r, "category") {
		skill.Category = formString(r, "category")
	}
	if formPresent(r, "icon_class") {
		skill.IconClass = formString(r, "icon_class")
	}
	if formPresent(r, "display_order") {
		displayOrder, err := formInt(r, "display_order")
		if err != nil {
			return err
		}
		skill.DisplayOrder = displayOrder
	}
	return nil
}
