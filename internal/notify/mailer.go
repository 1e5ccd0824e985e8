// Package notify implements the external delivery capability of the reset
// flow as a client of an HTTP mail API.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"passvault/internal/config"
	"passvault/internal/logger"
)

// mailMessage is the JSON payload posted to the mail API.
type mailMessage struct {
	// MessageID lets the API deduplicate retried deliveries.
	MessageID string `json:"message_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Mailer sends reset-code messages through an HTTP mail API. It satisfies
// [reset.Notifier].
type Mailer struct {
	client *resty.Client
	sender string
	logger *logger.Logger
}

// NewMailer constructs a [Mailer] from the mail configuration. The API
// token, when configured, is sent as a bearer credential on every request.
func NewMailer(cfg config.Mail, logger *logger.Logger) *Mailer {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)
	if cfg.APIToken != "" {
		cli.SetAuthToken(cfg.APIToken)
	}

	return &Mailer{
		client: cli,
		sender: cfg.Sender,
		logger: logger,
	}
}

// Send posts one message to the mail API. A non-2xx response is an error;
// the caller decides whether to surface or merely log it.
func (m *Mailer) Send(ctx context.Context, address, subject, body string) error {
	log := logger.FromContext(ctx)

	message := mailMessage{
		MessageID: uuid.NewString(),
		From:      m.sender,
		To:        address,
		Subject:   subject,
		Body:      body,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post("/api/messages")
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	if resp.IsError() {
		log.Warn().
			Str("func", "*Mailer.Send").
			Int("status", resp.StatusCode()).
			Str("message_id", message.MessageID).
			Msg("mail API rejected message")
		return fmt.Errorf("mail API returned status %d", resp.StatusCode())
	}

	return nil
}
