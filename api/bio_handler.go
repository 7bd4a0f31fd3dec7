package api

import (
	"net/http"
	"strconv"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/ayaskant-12/portfolio-backend/uploads"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// bioHandler serves the bio page of the admin panel: the singleton bio
// record plus the social links managed alongside it.
type bioHandler struct {
	responder      Responder
	logger         zerolog.Logger
	bioRepo        *database.BioRepo
	socialLinkRepo *database.SocialLinkRepo
	uploader       *uploads.Uploader
	readCache      *cache.Cache
}

func newBioHandler(bioRepo *database.BioRepo, socialLinkRepo *database.SocialLinkRepo, uploader *uploads.Uploader, readCache *cache.Cache) bioHandler {
	logger := log.With().Str("handlerName", "bioHandler").Logger()

	return bioHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		bioRepo:        bioRepo,
		socialLinkRepo: socialLinkRepo,
		uploader:       uploader,
		readCache:      readCache,
	}
}

// BioPage bundles the bio singleton (null until first saved) with the
// ordered social links.
type BioPage struct {
	Bio         *models.Bio          `json:"bio"`
	SocialLinks []*models.SocialLink `json:"social_links"`
	EditSocial  *models.SocialLink   `json:"edit_social,omitempty"`
}

func (h bioHandler) page() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bio, err := h.bioRepo.Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "bio", err))
			return
		}

		links, err := h.socialLinkRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "social links", err))
			return
		}

		page := BioPage{Bio: bio, SocialLinks: links}
		if editID, ok := editSocialParamID(r); ok {
			edit, err := h.socialLinkRepo.FindByID(editID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "social link", err))
				return
			}
			page.EditSocial = edit
		}

		h.responder.WriteJSON(w, page)
	}
}

// update performs the singleton get-or-create: the bio row is created on the
// first save and mutated afterwards.
func (h bioHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bio, err := h.bioRepo.Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "bio", err))
			return
		}
		if bio == nil {
			bio = &models.Bio{}
		}

		if err := applyBioForm(r, bio); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageURL, err := storeOptionalImage(r, h.uploader, "profile_image", uploads.CategoryProfile)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if imageURL != "" {
			bio.ProfileImage = imageURL
		}

		if err := h.bioRepo.Upsert(bio); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("save", "bio", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSON(w, bio)
	}
}

func (h bioHandler) addSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		link, err := socialLinkFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.socialLinkRepo.Add(link); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "social link", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSONStatus(w, http.StatusCreated, link)
	}
}

func (h bioHandler) editSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		link, err := h.socialLinkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "social link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, errs.NewNotFound("social link"))
			return
		}

		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := applySocialLinkForm(r, link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.socialLinkRepo.Update(link); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "social link", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSON(w, link)
	}
}

func (h bioHandler) deleteSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		link, err := h.socialLinkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "social link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, errs.NewNotFound("social link"))
			return
		}

		if err := h.socialLinkRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "social link", err))
			return
		}

		h.readCache.Flush()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "social link deleted successfully",
		})
	}
}

// editSocialParamID parses the ?edit_social=<id> query parameter of the bio page.
func editSocialParamID(r *http.Request) (uint, bool) {
	idStr := r.URL.Query().Get("edit_social")
	if idStr == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// applyBioForm overwrites submitted bio fields. Name, about_me and email may
// not be blanked out.
func applyBioForm(r *http.Request, bio *models.Bio) error {
	if formPresent(r, "name") {
		name, err := formRequired(r, "name")
		if err != nil {
			return err
		}
		bio.Name = name
	}
	if formPresent(r, "about_me") {
		aboutMe, err := formRequired(r, "about_me")
		if err != nil {
			return err
		}
		bio.AboutMe = aboutMe
	}
	if formPresent(r, "email") {
		email, err := formRequired(r, "email")
		if err != nil {
			return err
		}
		bio.Email = email
	}
	if formPresent(r, "tagline") {
		bio.Tagline = formString(r, "tagline")
	}
	if formPresent(r, "phone") {
		bio.Phone = formString(r, "phone")
	}
	if formPresent(r, "location") {
		bio.Location = formString(r, "location")
	}
	if formPresent(r, "resume_url") {
		bio.ResumeURL = formString(r, "resume_url")
	}
	// A brand-new bio must arrive with the required fields.
	if bio.ID == 0 {
		if bio.Name == "" {
			return errs.NewMissingRequiredFieldError("name")
		}
		if bio.AboutMe == "" {
			return errs.NewMissingRequiredFieldError("about_me")
		}
		if bio.Email == "" {
			return errs.NewMissingRequiredFieldError("email")
		}
	}
	return nil
}

// socialLinkFromForm builds a new social link. Platform and url are required.
func socialLinkFromForm(r *http.Request) (*models.SocialLink, error) {
	platform, err := formRequired(r, "platform")
	if err != nil {
		return nil, err
	}
	url, err := formRequired(r, "url")
	if err != nil {
		return nil, err
	}
	displayOrder, err := formInt(r, "display_order")
	if err != nil {
		return nil, err
	}

	return &models.SocialLink{
		Platform:     platform,
		URL:          url,
		IconClass:    formString(r, "icon_class"),
		DisplayOrder: displayOrder,
	}, nil
}

func applySocialLinkForm(r *http.Request, link *models.SocialLink) error {
	if formPresent(r, "platform") {
		platform, err := formRequired(r, "platform")
		if err != nil {
			return err
		}
		link.Platform = platform
	}
	if formPresent(r, "url") {
		url, err := formRequired(r, "url")
		if err != nil {
			return err
		}
		link.URL = url
	}
	if formPresent(r, "icon_class") {
		link.IconClass = formString(r, "icon_class")
	}
	if formPresent(r, "display_order") {
		displayOrder, err := formInt(r, "display_order")
		if err != nil {
			return err
		}
		link.DisplayOrder = displayOrder
	}
	return nil
}
