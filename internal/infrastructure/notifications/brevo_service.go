package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoServiceImpl implements domain.Notifier over the Brevo
// transactional email API.
type BrevoServiceImpl struct {
	client      *http.Client
	apiKey      string
	senderEmail string
	senderName  string
}

// NewBrevoService creates a new Brevo notification service
func NewBrevoService(apiKey, senderEmail, senderName string) domain.Notifier {
	return &BrevoServiceImpl{
		client:      &http.Client{Timeout: 15 * time.Second},
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoMessage struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	TextContent string         `json:"textContent"`
}

// Send implements domain.Notifier. When no API key is configured the
// message is logged instead of delivered, which keeps local
// development working without credentials.
func (b *BrevoServiceImpl) Send(to, subject, body string) error {
	if b.apiKey == "" {
		log.Info().Str("to", to).Str("subject", subject).Msg("mock email (no Brevo API key configured)")
		return nil
	}

	payload, err := json.Marshal(brevoMessage{
		Sender:      brevoAddress{Name: b.senderName, Email: b.senderEmail},
		To:          []brevoAddress{{Email: to}},
		Subject:     subject,
		TextContent: body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, brevoEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo rejected email: status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
