package api

import (
	"net/http"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	adminRepo *database.AdminRepo
	sessions  *sessionManager
}

func newAuthHandler(adminRepo *database.AdminRepo, sessions *sessionManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		adminRepo: adminRepo,
		sessions:  sessions,
	}
}

// login checks the submitted credentials against the stored admin account and
// establishes a session cookie on success. A missing account and a wrong
// password produce the same response so usernames cannot be probed.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		username := formString(r, "username")
		password := formString(r, "password")
		if username == "" || password == "" {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		admin, err := h.adminRepo.FindByUsername(username)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "admin", err))
			return
		}
		if admin == nil || !admin.CheckPassword(password) {
			h.logger.Warn().Str("username", username).Msg("failed login attempt")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		if err := h.sessions.establish(w, r, admin.ID); err != nil {
			h.logger.Error().Err(err).Msg("could not save session")
			h.responder.WriteError(w, errs.NewInternalError("could not establish session"))
			return
		}

		h.logger.Info().Str("username", username).Msg("admin logged in")
		h.responder.WriteJSON(w, map[string]any{
			"status":   "success",
			"username": admin.Username,
		})
	}
}

// logout invalidates the current session cookie. Calling it without a live
// session is harmless.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.sessions.clear(w, r); err != nil {
			h.logger.Error().Err(err).Msg("could not save session")
			h.responder.WriteError(w, errs.NewInternalError("could not clear session"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "logged out",
		})
	}
}
