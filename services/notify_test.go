package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewNotifier_NilWithoutConfig(t *testing.T) {
	require.Nil(t, NewNotifier(nil))
	require.Nil(t, NewNotifier(map[string]string{"RESEND_API_KEY": "key"}))
}

func TestNotifyContactMessage(t *testing.T) {
	var got resendEmailRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(resendEmailResponse{ID: "email-1"})
	}))
	defer server.Close()

	notifier := NewNotifier(map[string]string{
		"RESEND_API_KEY":    "test-key",
		"RESEND_FROM_EMAIL": "Portfolio <no-reply@example.com>",
		"NOTIFY_EMAIL":      "owner@example.com",
	})
	require.NotNil(t, notifier)
	notifier.endpoint = server.URL
	notifier.client = server.Client()
	notifier.logger = zerolog.Nop()

	message := &models.ContactMessage{
		Name:    "Visitor <script>",
		Email:   "visitor@example.com",
		Subject: "Hi",
		Message: "Nice site",
	}
	require.NoError(t, notifier.NotifyContactMessage(message))

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, []string{"owner@example.com"}, got.To)
	require.Contains(t, got.Subject, "Visitor")
	require.Contains(t, got.Html, "visitor@example.com")
	require.NotContains(t, got.Html, "<script>")
}

func TestNotifyContactMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(resendErrorResponse{Message: "invalid from address"})
	}))
	defer server.Close()

	notifier := &Notifier{
		apiKey:    "k",
		fromEmail: "bad",
		toEmail:   "owner@example.com",
		endpoint:  server.URL,
		client:    &http.Client{Timeout: time.Second},
		logger:    zerolog.Nop(),
	}

	err := notifier.NotifyContactMessage(&models.ContactMessage{Name: "V", Email: "v@example.com", Message: "m"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid from address")
}
