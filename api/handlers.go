package api

import (
	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/services"
	"github.com/ayaskant-12/portfolio-backend/uploads"
	"github.com/patrickmn/go-cache"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, sessions *sessionManager, uploader *uploads.Uploader, readCache *cache.Cache, notifier *services.Notifier) *routeHandlers {
	return &routeHandlers{
		authHandler:          newAuthHandler(db.AdminRepo(), sessions),
		publicHandler:        newPublicHandler(db, readCache, notifier),
		dashboardHandler:     newDashboardHandler(db),
		bioHandler:           newBioHandler(db.BioRepo(), db.SocialLinkRepo(), uploader, readCache),
		projectHandler:       newProjectHandler(db.ProjectRepo(), uploader, readCache),
		skillHandler:         newSkillHandler(db.SkillRepo(), readCache),
		certificationHandler: newCertificationHandler(db.CertificationRepo(), uploader),
		toolHandler:          newToolHandler(db.ToolRepo(), readCache),
		educationHandler:     newEducationHandler(db.EducationRepo()),
		letsTalkHandler:      newLetsTalkHandler(db.LetsTalkRepo(), readCache),
		messageHandler:       newMessageHandler(db.MessageRepo()),
	}
}
