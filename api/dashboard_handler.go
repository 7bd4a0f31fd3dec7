package api

import (
	"net/http"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newDashboardHandler(db database.Database) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// DashboardSummary gives the admin landing page its per-section counts.
type DashboardSummary struct {
	Projects       int64 `json:"projects"`
	Skills         int64 `json:"skills"`
	SocialLinks    int64 `json:"social_links"`
	Certifications int64 `json:"certifications"`
	Tools          int64 `json:"tools"`
	Education      int64 `json:"education"`
	LetsTalk       int64 `json:"lets_talk"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

func (h dashboardHandler) summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			summary DashboardSummary
			err     error
		)

		counts := []struct {
			entity string
			dest   *int64
			count  func() (int64, error)
		}{
			{"projects", &summary.Projects, h.db.ProjectRepo().Count},
			{"skills", &summary.Skills, h.db.SkillRepo().Count},
			{"social links", &summary.SocialLinks, h.db.SocialLinkRepo().Count},
			{"certifications", &summary.Certifications, h.db.CertificationRepo().Count},
			{"tools", &summary.Tools, h.db.ToolRepo().Count},
			{"education entries", &summary.Education, h.db.EducationRepo().Count},
			{"lets talk cards", &summary.LetsTalk, h.db.LetsTalkRepo().Count},
			{"messages", &summary.Messages, h.db.MessageRepo().Count},
			{"messages", &summary.UnreadMessages, h.db.MessageRepo().CountUnread},
		}

		for _, c := range counts {
			if *c.dest, err = c.count(); err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("count", c.entity, err))
				return
			}
		}

		h.responder.WriteJSON(w, summary)
	}
}
