// Package notify forwards completed contact forms to the external
// automation webhook. One best-effort attempt, no retry.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/winspiration/assistant/form"
)

type Config struct {
	WebhookURL string        `envconfig:"WEBHOOK_URL" split_words:"true"`
	Timeout    time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"15s"`
}

type payload struct {
	Type      string       `json:"type"`
	Data      form.Session `json:"data"`
	Timestamp string       `json:"timestamp"`
}

type Notifier struct {
	url        string
	httpClient *http.Client
	logger     zerolog.Logger

	now func() time.Time
}

func New(cfg Config, logger zerolog.Logger) *Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Notifier{
		url:        strings.TrimSpace(cfg.WebhookURL),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Notify posts the completed session and reports whether the endpoint
// accepted it. With no URL configured it skips the call and returns false;
// the caller then falls back to the direct-contact confirmation text.
func (n *Notifier) Notify(ctx context.Context, sess form.Session) bool {
	if n.url == "" {
		n.logger.Info().Msg("notification webhook not configured, skipping submission")
		return false
	}

	body, err := json.Marshal(payload{
		Type:      "contact_form",
		Data:      sess,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		n.logger.Error().Err(err).Msg("marshal contact form payload")
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error().Err(err).Msg("build notification request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Error().Err(err).Msg("send contact form notification")
		return false
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		n.logger.Error().Int("status", res.StatusCode).Msg("notification endpoint rejected contact form")
		return false
	}

	n.logger.Info().Str("user_id", sess.UserID).Msg("contact form forwarded")
	return true
}
