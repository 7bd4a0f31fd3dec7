// Package services holds outbound integrations that sit beside the HTTP
// layer rather than inside it.
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/ayaskant-12/portfolio-backend/config"
	"github.com/ayaskant-12/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// resendEmailResponse represents the response from the Resend API
type resendEmailResponse struct {
	ID string `json:"id"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// Notifier emails the site owner when a visitor leaves a contact message.
// It is optional: without the Resend configuration in place the site just
// collects messages in the inbox.
type Notifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	endpoint  string
	client    *http.Client
	logger    zerolog.Logger
}

// NewNotifier builds a Notifier from config, or returns nil when the
// RESEND_API_KEY, RESEND_FROM_EMAIL or NOTIFY_EMAIL variables are not set.
func NewNotifier(c map[string]string) *Notifier {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	fromEmail := config.GetString(c, "RESEND_FROM_EMAIL", "")
	toEmail := config.GetString(c, "NOTIFY_EMAIL", "")
	if apiKey == "" || fromEmail == "" || toEmail == "" {
		return nil
	}

	return &Notifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		endpoint:  resendEndpoint,
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    log.With().Str("service", "notifier").Logger(),
	}
}

// NotifyContactMessage sends the owner an email summarizing a new contact
// message.
func (n *Notifier) NotifyContactMessage(message *models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message from %s", message.Name)
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s (%s)</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Message),
	)

	payload := resendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: subject,
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp resendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse resendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		n.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		n.logger.Info().Str("emailId", emailResponse.ID).Msg("Sent contact notification")
	}

	return nil
}
