package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeDialog struct {
	reply      string
	lastUserID string
	lastText   string
}

func (f *fakeDialog) HandleMessage(_ context.Context, userID, _, text string) string {
	f.lastUserID = userID
	f.lastText = text
	return f.reply
}

func TestWebhookRoundTrip(t *testing.T) {
	t.Parallel()

	dialog := &fakeDialog{reply: "We offer engineering services."}
	h := NewHandler(dialog, zerolog.Nop())
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	res, err := http.Post(srv.URL+"/webhook", "application/json",
		strings.NewReader(`{"text":"what do you do?","userId":"u1"}`))
	if err != nil {
		t.Fatalf("POST /webhook error = %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var body messageResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Reply != "We offer engineering services." {
		t.Fatalf("reply = %q", body.Reply)
	}
	if dialog.lastUserID != "u1" || dialog.lastText != "what do you do?" {
		t.Fatalf("dialog saw user=%q text=%q", dialog.lastUserID, dialog.lastText)
	}
}

func TestWebhookDefaultsAnonymousUser(t *testing.T) {
	t.Parallel()

	dialog := &fakeDialog{reply: "hi"}
	h := NewHandler(dialog, zerolog.Nop())
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	res, err := http.Post(srv.URL+"/webhook", "application/json",
		strings.NewReader(`{"text":"hello"}`))
	if err != nil {
		t.Fatalf("POST /webhook error = %v", err)
	}
	res.Body.Close()

	if dialog.lastUserID != "anonymous" {
		t.Fatalf("user id = %q, want anonymous", dialog.lastUserID)
	}
}

func TestWebhookRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeDialog{}, zerolog.Nop())
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	res, err := http.Post(srv.URL+"/webhook", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST /webhook error = %v", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeDialog{}, zerolog.Nop())
	h.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health error = %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var body healthResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("status field = %q", body.Status)
	}
	if body.Timestamp != "2025-03-14T09:30:00Z" {
		t.Fatalf("timestamp = %q", body.Timestamp)
	}
}
