package api

import (
	"net/http"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	educationRepo *database.EducationRepo
}

func newEducationHandler(educationRepo *database.EducationRepo) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		educationRepo: educationRepo,
	}
}

// EducationListing is the admin list view for education entries.
type EducationListing struct {
	Entries []*models.Education `json:"entries"`
	Edit    *models.Education   `json:"edit,omitempty"`
	Total   int                 `json:"total"`
}

func (h educationHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.educationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "education entries", err))
			return
		}

		listing := EducationListing{Entries: entries, Total: len(entries)}
		if editID, ok := editParamID(r); ok {
			edit, err := h.educationRepo.FindByID(editID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "education entry", err))
				return
			}
			listing.Edit = edit
		}

		h.responder.WriteJSON(w, listing)
	}
}

func (h educationHandler) add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry, err := educationFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.educationRepo.Add(entry); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "education entry", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, entry)
	}
}

func (h educationHandler) edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry, err := h.educationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "education entry", err))
			return
		}
		if entry == nil {
			h.responder.WriteError(w, errs.NewNotFound("education entry"))
			return
		}

		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := applyEducationForm(r, entry); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.educationRepo.Update(entry); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "education entry", err))
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}

func (h educationHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry, err := h.educationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "education entry", err))
			return
		}
		if entry == nil {
			h.responder.WriteError(w, errs.NewNotFound("education entry"))
			return
		}

		if err := h.educationRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "education entry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "education entry deleted successfully",
		})
	}
}

func educationFromForm(r *http.Request) (*models.Education, error) {
	degree, err := formRequired(r, "degree")
	if err != nil {
		return nil, err
	}
	institution, err := formRequired(r, "institution")
	if err != nil {
		return nil, err
	}
	startDate, err := formDate(r, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := formOptionalDate(r, "end_date")
	if err != nil {
		return nil, err
	}

	return &models.Education{
		Degree:      degree,
		Institution: institution,
		Location:    formString(r, "location"),
		StartDate:   startDate,
		EndDate:     endDate,
		Current:     formBool(r, "current"),
		Description: formString(r, "description"),
		Grade:       formString(r, "grade"),
	}, nil
}

func applyEducationForm(r *http.Request, entry *models.Education) error {
	if formPresent(r, "degree") {
		degree, err := formRequired(r, "degree")
		if err != nil {
			return err
		}
		entry.Degree = degree
	}
	if formPresent(r, "institution") {
		institution, err := formRequired(r, "institution")
		if err != nil {
			return err
		}
		entry.Institution = institution
	}
	if formPresent(r, "location") {
		entry.Location = formString(r, "location")
	}
	if formPresent(r, "start_date") {
		startDate, err := formDate(r, "start_date")
		if err != nil {
			return err
		}
		entry.StartDate = startDate
	}
	if formPresent(r, "end_date") {
		// An empty end_date clears the column for a program still in progress.
		endDate, err := formOptionalDate(r, "end_date")
		if err != nil {
			return err
		}
		entry.EndDate = endDate
	}
	if formPresent(r, "description") {
		entry.Description = formString(r, "description")
	}
	if formPresent(r, "grade") {
		entry.Grade = formString(r, "grade")
	}
	entry.Current = formBool(r, "current")
	return nil
}
