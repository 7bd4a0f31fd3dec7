package api

import (
	"net/http"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/ayaskant-12/portfolio-backend/uploads"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type certificationHandler struct {
	responder         Responder
	logger            zerolog.Logger
	certificationRepo *database.CertificationRepo
	uploader          *uploads.Uploader
}

func newCertificationHandler(certificationRepo *database.CertificationRepo, uploader *uploads.Uploader) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		certificationRepo: certificationRepo,
		uploader:          uploader,
	}
}

// CertificationListing is the admin list view for certifications.
type CertificationListing struct {
	Certifications []*models.Certification `json:"certifications"`
	Edit           *models.Certification   `json:"edit,omitempty"`
	Total          int                     `json:"total"`
}

func (h certificationHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certifications, err := h.certificationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certifications", err))
			return
		}

		listing := CertificationListing{Certifications: certifications, Total: len(certifications)}
		if editID, ok := editParamID(r); ok {
			edit, err := h.certificationRepo.FindByID(editID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "certification", err))
				return
			}
			listing.Edit = edit
		}

		h.responder.WriteJSON(w, listing)
	}
}

func (h certificationHandler) add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certification, err := certificationFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageURL, err := storeOptionalImage(r, h.uploader, "image", uploads.CategoryCertifications)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		certification.ImageURL = imageURL

		if err := h.certificationRepo.Add(certification); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "certification", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, certification)
	}
}

func (h certificationHandler) edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certification, err := h.certificationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certification", err))
			return
		}
		if certification == nil {
			h.responder.WriteError(w, errs.NewNotFound("certification"))
			return
		}

		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := applyCertificationForm(r, certification); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageURL, err := storeOptionalImage(r, h.uploader, "image", uploads.CategoryCertifications)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if imageURL != "" {
			certification.ImageURL = imageURL
		}

		if err := h.certificationRepo.Update(certification); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "certification", err))
			return
		}

		h.responder.WriteJSON(w, certification)
	}
}

func (h certificationHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certification, err := h.certificationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certification", err))
			return
		}
		if certification == nil {
			h.responder.WriteError(w, errs.NewNotFound("certification"))
			return
		}

		if err := h.certificationRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "certification", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certification deleted successfully",
		})
	}
}

// certificationFromForm builds a new certification. Title, issuing
// organization and issue date are required; the issue and expiry dates must
// be YYYY-MM-DD.
func certificationFromForm(r *http.Request) (*models.Certification, error) {
	title, err := formRequired(r, "title")
	if err != nil {
		return nil, err
	}
	organization, err := formRequired(r, "issuing_organization")
	if err != nil {
		return nil, err
	}
	issueDate, err := formDate(r, "issue_date")
	if err != nil {
		return nil, err
	}
	expiryDate, err := formOptionalDate(r, "expiry_date")
	if err != nil {
		return nil, err
	}

	return &models.Certification{
		Title:               title,
		IssuingOrganization: organization,
		IssueDate:           issueDate,
		ExpiryDate:          expiryDate,
		CredentialID:        formString(r, "credential_id"),
		CredentialURL:       formString(r, "credential_url"),
		Description:         formString(r, "description"),
	}, nil
}

// applyCertificationForm overwrites submitted fields. Submitting an empty
// expiry_date clears the stored expiry.
func applyCertificationForm(r *http.Request, certification *models.Certification) error {
	if formPresent(r, "title") {
		title, err := formRequired(r, "title")
		if err != nil {
			return err
		}
		certification.Title = title
	}
	if formPresent(r, "issuing_organization") {
		organization, err := formRequired(r, "issuing_organization")
		if err != nil {
			return err
		}
		certification.IssuingOrganization = organization
	}
	if formPresent(r, "issue_date") {
		issueDate, err := formDate(r, "issue_date")
		if err != nil {
			return err
		}
		certification.IssueDate = issueDate
	}
	if formPresent(r, "expiry_date") {
		expiryDate, err := formOptionalDate(r, "expiry_date")
		if err != nil {
			return err
		}
		certification.ExpiryDate = expiryDate
	}
	if formPresent(r, "credential_id") {
		certification.CredentialID = formString(r, "credential_id")
	}
	if formPresent(r, "credential_url") {
		certification.CredentialURL = formString(r, "credential_url")
	}
	if formPresent(r, "description") {
		certification.Description = formString(r, "description")
	}
	return nil
}
