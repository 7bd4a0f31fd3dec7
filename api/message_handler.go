package api

import (
	"net/http"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/ayaskant-12/portfolio-backend/errs"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
}

func newMessageHandler(messageRepo *database.MessageRepo) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

// MessageListing is the admin inbox view.
type MessageListing struct {
	Messages []*models.ContactMessage `json:"messages"`
	Total    int                      `json:"total"`
	Unread   int64                    `json:"unread"`
}

func (h messageHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "messages", err))
			return
		}

		unread, err := h.messageRepo.CountUnread()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "messages", err))
			return
		}

		h.responder.WriteJSON(w, MessageListing{
			Messages: messages,
			Total:    len(messages),
			Unread:   unread,
		})
	}
}

func (h messageHandler) markRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFound("message"))
			return
		}

		if err := h.messageRepo.MarkRead(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "message", err))
			return
		}

		message.Read = true
		h.responder.WriteJSON(w, message)
	}
}

func (h messageHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFound("message"))
			return
		}

		if err := h.messageRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message deleted successfully",
		})
	}
}
