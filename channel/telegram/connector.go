// Package telegram is the polling channel adapter. It talks to the Telegram
// Bot API directly over HTTP: a getUpdates long-poll loop feeding the dialog
// coordinator, replies sent back with sendMessage.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/winspiration/assistant/channel/webhook"
)

type Config struct {
	BotToken    string `envconfig:"BOT_TOKEN" split_words:"true"`
	APIBase     string `envconfig:"API_BASE" split_words:"true" default:"https://api.telegram.org"`
	PollSeconds int    `envconfig:"POLL_SECONDS" split_words:"true" default:"25"`
}

type Connector struct {
	token       string
	apiBase     string
	pollSeconds int
	dialog      webhook.MessageHandler
	httpClient  *http.Client
	logger      zerolog.Logger
	offset      int64
}

func New(cfg Config, dialog webhook.MessageHandler, logger zerolog.Logger) *Connector {
	apiBase := strings.TrimSpace(cfg.APIBase)
	if apiBase == "" {
		apiBase = "https://api.telegram.org"
	}
	pollSeconds := cfg.PollSeconds
	if pollSeconds < 1 {
		pollSeconds = 25
	}
	return &Connector{
		token:       strings.TrimSpace(cfg.BotToken),
		apiBase:     strings.TrimRight(apiBase, "/"),
		pollSeconds: pollSeconds,
		dialog:      dialog,
		httpClient: &http.Client{
			Timeout: time.Duration(pollSeconds+10) * time.Second,
		},
		logger: logger,
	}
}

// Start runs the polling loop until the context is cancelled. With no token
// configured the connector stays idle so the HTTP channel keeps serving.
func (c *Connector) Start(ctx context.Context) error {
	if c.token == "" {
		c.logger.Info().Msg("telegram connector disabled, bot token missing")
		<-ctx.Done()
		return nil
	}

	c.logger.Info().Str("api_base", c.apiBase).Msg("telegram connector started")

	for {
		if ctx.Err() != nil {
			c.logger.Info().Msg("telegram connector stopped")
			return nil
		}
		if err := c.pollOnce(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error().Err(err).Msg("telegram poll failed")
			select {
			case <-ctx.Done():
				c.logger.Info().Msg("telegram connector stopped")
				return nil
			case <-time.After(1500 * time.Millisecond):
			}
		}
	}
}

func (c *Connector) pollOnce(ctx context.Context) error {
	url := fmt.Sprintf("%s/bot%s/getUpdates?timeout=%d&offset=%d", c.apiBase, c.token, c.pollSeconds, c.offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var payload getUpdatesResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode getUpdates: %w", err)
	}
	if !payload.OK {
		return fmt.Errorf("telegram getUpdates failed")
	}

	for _, update := range payload.Result {
		if update.UpdateID >= c.offset {
			c.offset = update.UpdateID + 1
		}
		if update.Message == nil {
			continue
		}
		if err := c.handleMessage(ctx, *update.Message); err != nil {
			c.logger.Error().Err(err).Int64("update_id", update.UpdateID).Msg("handle telegram message failed")
		}
	}
	return nil
}

func (c *Connector) handleMessage(ctx context.Context, message telegramMessage) error {
	text := strings.TrimSpace(message.Text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "/") {
		return c.handleCommand(ctx, message, text)
	}

	userID := strconv.FormatInt(message.From.ID, 10)
	displayName := strings.TrimSpace(message.From.FirstName)
	if displayName == "" {
		displayName = "User"
	}

	c.logger.Info().Str("user_id", userID).Str("name", displayName).Msg("telegram message received")

	if err := c.sendChatAction(ctx, message.Chat.ID, "typing"); err != nil {
		c.logger.Warn().Err(err).Msg("send typing action failed")
	}

	reply := c.dialog.HandleMessage(ctx, userID, displayName, text)
	if reply == "" {
		return nil
	}
	return c.sendMessage(ctx, message.Chat.ID, reply)
}

func (c *Connector) handleCommand(ctx context.Context, message telegramMessage, text string) error {
	command := strings.ToLower(strings.Fields(text)[0])
	// Commands can arrive as /start@botname in groups.
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}

	switch command {
	case "/start":
		name := strings.TrimSpace(message.From.FirstName)
		if name == "" {
			name = "there"
		}
		return c.sendMessage(ctx, message.Chat.ID, welcomeText(name))
	case "/help":
		return c.sendMessage(ctx, message.Chat.ID, helpText)
	default:
		return nil
	}
}

func (c *Connector) sendMessage(ctx context.Context, chatID int64, text string) error {
	body := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	return c.post(ctx, "sendMessage", body)
}

func (c *Connector) sendChatAction(ctx context.Context, chatID int64, action string) error {
	body := map[string]any{
		"chat_id": chatID,
		"action":  action,
	}
	return c.post(ctx, "sendChatAction", body)
}

func (c *Connector) post(ctx context.Context, method string, body map[string]any) error {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.token, method)
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var response struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return fmt.Errorf("decode %s: %w", method, err)
	}
	if !response.OK {
		return fmt.Errorf("telegram %s failed", method)
	}
	return nil
}

func welcomeText(name string) string {
	return fmt.Sprintf("👋 Hello %s! Welcome to Winspiration Energy & Engineering.\n\n", name) +
		"🏗️ *We Inspire Engineering Excellence*\n\n" +
		"I can help you with:\n" +
		"• Our engineering services (Piping, Stress Analysis, 3D Modeling)\n" +
		"• Project portfolio & case studies\n" +
		"• Industries we serve (Oil & Gas, Power, Petrochemical, etc.)\n" +
		"• Company information & certifications (ISO 9001:2015)\n" +
		"• Frequently asked questions\n\n" +
		"💼 International experience in UK, USA, UAE, Nigeria, Vietnam & more!\n\n" +
		"Just ask me anything about our engineering services!"
}

const helpText = "❓ *How to use Winspiration Bot:*\n\n" +
	"Simply send me a message! For example:\n\n" +
	"🔧 \"What services do you offer?\"\n" +
	"📂 \"Show me your projects\"\n" +
	"🏭 \"Which industries do you serve?\"\n" +
	"📞 \"How can I contact you?\"\n" +
	"❔ \"Are you ISO certified?\"\n\n" +
	"I use AI to understand your questions and provide accurate information about Winspiration's engineering services!"
