package api

import (
	"net/http"
	"time"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/ayaskant-12/portfolio-backend/services"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyHome     = "home"
	cacheKeyProjects = "projects"
)

// newReadCache builds the cache shared by the public read handlers. Admin
// mutations flush it so visitors never see stale content for long.
func newReadCache() *cache.Cache {
	return cache.New(5*time.Minute, 10*time.Minute)
}

type publicHandler struct {
	responder      Responder
	logger         zerolog.Logger
	bioRepo        *database.BioRepo
	skillRepo      *database.SkillRepo
	projectRepo    *database.ProjectRepo
	socialLinkRepo *database.SocialLinkRepo
	toolRepo       *database.ToolRepo
	letsTalkRepo   *database.LetsTalkRepo
	messageRepo    *database.MessageRepo
	readCache      *cache.Cache
	notifier       *services.Notifier
}

func newPublicHandler(db database.Database, readCache *cache.Cache, notifier *services.Notifier) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		bioRepo:        db.BioRepo(),
		skillRepo:      db.SkillRepo(),
		projectRepo:    db.ProjectRepo(),
		socialLinkRepo: db.SocialLinkRepo(),
		toolRepo:       db.ToolRepo(),
		letsTalkRepo:   db.LetsTalkRepo(),
		messageRepo:    db.MessageRepo(),
		readCache:      readCache,
		notifier:       notifier,
	}
}

// HomePage aggregates everything the landing page renders in one response.
type HomePage struct {
	Bio              *models.Bio          `json:"bio"`
	Skills           []*models.Skill      `json:"skills"`
	FeaturedProjects []*models.Project    `json:"featured_projects"`
	SocialLinks      []*models.SocialLink `json:"social_links"`
	Tools            []*models.Tool       `json:"tools"`
	LetsTalk         []*models.LetsTalk   `json:"lets_talk"`
}

// @Summary      Home page content
// @Description  Returns the bio, skills, featured projects, social links, tools and lets-talk cards in one payload
// @Produce      json
// @Success      200 {object} HomePage
// @Router       / [get]
func (h publicHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, found := h.readCache.Get(cacheKeyHome); found {
			h.responder.WriteJSON(w, cached)
			return
		}

		page, err := h.buildHomePage()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.readCache.Set(cacheKeyHome, page, cache.DefaultExpiration)
		h.responder.WriteJSON(w, page)
	}
}

func (h publicHandler) buildHomePage() (*HomePage, error) {
	bio, err := h.bioRepo.Get()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "bio", err)
	}
	skills, err := h.skillRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	featured, err := h.projectRepo.FindFeatured()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	socialLinks, err := h.socialLinkRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "social links", err)
	}
	tools, err := h.toolRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tools", err)
	}
	cards, err := h.letsTalkRepo.FindActive()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "lets talk cards", err)
	}

	return &HomePage{
		Bio:              bio,
		Skills:           skills,
		FeaturedProjects: featured,
		SocialLinks:      socialLinks,
		Tools:            tools,
		LetsTalk:         cards,
	}, nil
}

// @Summary      List all projects
// @Produce      json
// @Success      200 {array} models.Project
// @Router       /api/projects [get]
func (h publicHandler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, found := h.readCache.Get(cacheKeyProjects); found {
			h.responder.WriteJSON(w, cached)
			return
		}

		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.readCache.Set(cacheKeyProjects, projects, cache.DefaultExpiration)
		h.responder.WriteJSON(w, projects)
	}
}

// @Summary      Submit a contact message
// @Description  Accepts a visitor message for the admin inbox
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Router       /contact [post]
func (h publicHandler) contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name, err := formRequired(r, "name")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		email, err := formRequired(r, "email")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		body, err := formRequired(r, "message")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := &models.ContactMessage{
			Name:    name,
			Email:   email,
			Subject: formString(r, "subject"),
			Message: body,
		}

		// The form reads the structured acknowledgement, so a storage
		// failure is reported there rather than as an error status.
		if err := h.messageRepo.Add(message); err != nil {
			h.logger.Error().Err(err).Msg("could not persist contact message")
			h.responder.WriteJSON(w, map[string]any{
				"success": false,
				"message": "Error sending message: " + err.Error(),
			})
			return
		}

		if h.notifier != nil {
			go func() {
				if err := h.notifier.NotifyContactMessage(message); err != nil {
					h.logger.Error().Err(err).Msg("could not send contact notification")
				}
			}()
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Thank you for your message! I will get back to you soon.",
		})
	}
}
