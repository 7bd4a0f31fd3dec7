package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up the visitor-facing routes. No session is needed
// here; the login endpoint itself lives on this side of the gate.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers, uploadDir string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.publicHandler.home())
		r.Get("/api/projects", handlers.publicHandler.projects())
		r.Post("/contact", handlers.publicHandler.contact())

		r.Post("/admin/login", handlers.authHandler.login())

		// Uploaded images are served straight off disk.
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	})
}

// setupAdminRoutes sets up all content-management routes behind the session
// gate.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.requireSession)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/admin/logout", handlers.authHandler.logout())
		r.Get("/admin/dashboard", handlers.dashboardHandler.summary())

		// Bio & social link endpoints
		r.Get("/admin/bio", handlers.bioHandler.page())
		r.Post("/admin/bio", handlers.bioHandler.update())
		r.Post("/admin/social/add", handlers.bioHandler.addSocial())
		r.Post("/admin/social/{id}/edit", handlers.bioHandler.editSocial())
		r.Get("/admin/social/{id}/delete", handlers.bioHandler.deleteSocial())

		// Project Handler endpoints
		r.Get("/admin/projects", handlers.projectHandler.list())
		r.Post("/admin/projects/add", handlers.projectHandler.add())
		r.Post("/admin/projects/{id}/edit", handlers.projectHandler.edit())
		r.Get("/admin/projects/{id}/delete", handlers.projectHandler.delete())

		// Skill Handler endpoints
		r.Get("/admin/skills", handlers.skillHandler.list())
		r.Post("/admin/skills/add", handlers.skillHandler.add())
		r.Post("/admin/skills/{id}/edit", handlers.skillHandler.edit())
		r.Get("/admin/skills/{id}/delete", handlers.skillHandler.delete())

		// Certification Handler endpoints
		r.Get("/admin/certifications", handlers.certificationHandler.list())
		r.Post("/admin/certifications/add", handlers.certificationHandler.add())
		r.Post("/admin/certifications/{id}/edit", handlers.certificationHandler.edit())
		r.Get("/admin/certifications/{id}/delete", handlers.certificationHandler.delete())

		// Tool Handler endpoints
		r.Get("/admin/tools", handlers.toolHandler.list())
		r.Post("/admin/tools/add", handlers.toolHandler.add())
		r.Post("/admin/tools/{id}/edit", handlers.toolHandler.edit())
		r.Get("/admin/tools/{id}/delete", handlers.toolHandler.delete())

		// Education Handler endpoints
		r.Get("/admin/education", handlers.educationHandler.list())
		r.Post("/admin/education/add", handlers.educationHandler.add())
		r.Post("/admin/education/{id}/edit", handlers.educationHandler.edit())
		r.Get("/admin/education/{id}/delete", handlers.educationHandler.delete())

		// Lets Talk Handler endpoints
		r.Get("/admin/lets-talk", handlers.letsTalkHandler.list())
		r.Post("/admin/lets-talk/add", handlers.letsTalkHandler.add())
		r.Post("/admin/lets-talk/{id}/edit", handlers.letsTalkHandler.edit())
		r.Get("/admin/lets-talk/{id}/delete", handlers.letsTalkHandler.delete())

		// Message Handler endpoints
		r.Get("/admin/messages", handlers.messageHandler.list())
		r.Get("/admin/messages/{id}/read", handlers.messageHandler.markRead())
		r.Get("/admin/messages/{id}/delete", handlers.messageHandler.delete())
	})
}
