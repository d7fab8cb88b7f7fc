// Package webhook is the HTTP channel adapter: a JSON webhook for inbound
// messages and a health probe.
package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// MessageHandler resolves one inbound message to reply text.
type MessageHandler interface {
	HandleMessage(ctx context.Context, userID, displayName, text string) string
}

type messageRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	dialog MessageHandler
	logger zerolog.Logger

	now func() time.Time
}

func NewHandler(dialog MessageHandler, logger zerolog.Logger) *Handler {
	return &Handler{
		dialog: dialog,
		logger: logger,
		now:    time.Now,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/webhook", h.handleWebhook)
	r.Get("/health", h.handleHealth)
	return r
}

func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("malformed webhook body")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = "anonymous"
	}

	h.logger.Info().Str("user_id", userID).Int("text_len", len(req.Text)).Msg("webhook message received")

	reply := h.dialog.HandleMessage(r.Context(), userID, "", req.Text)
	writeJSON(w, http.StatusOK, messageResponse{Reply: reply})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
