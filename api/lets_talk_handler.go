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

type letsTalkHandler struct {
	responder    Responder
	logger       zerolog.Logger
	letsTalkRepo *database.LetsTalkRepo
	readCache    *cache.Cache
}

func newLetsTalkHandler(letsTalkRepo *database.LetsTalkRepo, readCache *cache.Cache) letsTalkHandler {
	logger := log.With().Str("handlerName", "letsTalkHandler").Logger()

	return letsTalkHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		letsTalkRepo: letsTalkRepo,
		readCache:    readCache,
	}
}

// LetsTalkListing is the admin list view for "let's talk" cards.
type LetsTalkListing struct {
	Cards []*models.LetsTalk `json:"cards"`
	Edit  *models.LetsTalk   `json:"edit,omitempty"`
	Total int                `json:"total"`
}

func (h letsTalkHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := h.letsTalkRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "lets talk cards", err))
			return
		}

		listing := LetsTalkListing{Cards: cards, Total: len(cards)}
		if editID, ok := editParamID(r); ok {
			edit, err := h.letsTalkRepo.FindByID(editID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "lets talk card", err))
				return
			}
			listing.Edit = edit
		}

		h.responder.WriteJSON(w, listing)
	}
}

func (h letsTalkHandler) add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		card, err := letsTalkFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.letsTalkRepo.Add(card); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "lets talk card", err))
			return
		}
		h.readCache.Flush()

		h.responder.WriteJSONStatus(w, http.StatusCreated, card)
	}
}

func (h letsTalkHandler) edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		card, err := h.letsTalkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "lets talk card", err))
			return
		}
		if card == nil {
			h.responder.WriteError(w, errs.NewNotFound("lets talk card"))
			return
		}

		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := applyLetsTalkForm(r, card); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.letsTalkRepo.Update(card); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "lets talk card", err))
			return
		}
		h.readCache.Flush()

		h.responder.WriteJSON(w, card)
	}
}

func (h letsTalkHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		card, err := h.letsTalkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "lets talk card", err))
			return
		}
		if card == nil {
			h.responder.WriteError(w, errs.NewNotFound("lets talk card"))
			return
		}

		if err := h.letsTalkRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "lets talk card", err))
			return
		}
		h.readCache.Flush()

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "lets talk card deleted successfully",
		})
	}
}

func letsTalkFromForm(r *http.Request) (*models.LetsTalk, error) {
	title, err := formRequired(r, "title")
	if err != nil {
		return nil, err
	}
	displayOrder, err := formInt(r, "display_order")
	if err != nil {
		return nil, err
	}

	return &models.LetsTalk{
		Title:        title,
		Description:  formString(r, "description"),
		ContactInfo:  formString(r, "contact_info"),
		IconClass:    formString(r, "icon_class"),
		DisplayOrder: displayOrder,
		IsActive:     formBool(r, "is_active"),
	}, nil
}

func applyLetsTalkForm(r *http.Request, card *models.LetsTalk) error {
	if formPresent(r, "title") {
		title, err := formRequired(r, "title")
		if err != nil {
			return err
		}
		card.Title = title
	}
	if formPresent(r, "description") {
		card.Description = formString(r, "description")
	}
	if formPresent(r, "contact_info") {
		card.ContactInfo = formString(r, "contact_info")
	}
	if formPresent(r, "icon_class") {
		card.IconClass = formString(r, "icon_class")
	}
	if formPresent(r, "display_order") {
		displayOrder, err := formInt(r, "display_order")
		if err != nil {
			return err
		}
		card.DisplayOrder = displayOrder
	}
	card.IsActive = formBool(r, "is_active")
	return nil
}
