package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type fakeDialog struct {
	reply string
	calls []string
}

func (f *fakeDialog) HandleMessage(_ context.Context, userID, displayName, text string) string {
	f.calls = append(f.calls, fmt.Sprintf("%s|%s|%s", userID, displayName, text))
	return f.reply
}

// botAPIStub records sendMessage / sendChatAction calls and serves one
// scripted getUpdates batch.
type botAPIStub struct {
	mu      sync.Mutex
	updates string
	sent    []map[string]any
	actions []map[string]any
}

func (s *botAPIStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch {
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			io.WriteString(w, s.updates)
			s.updates = `{"ok":true,"result":[]}`
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			s.sent = append(s.sent, body)
			io.WriteString(w, `{"ok":true}`)
		case strings.HasSuffix(r.URL.Path, "/sendChatAction"):
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			s.actions = append(s.actions, body)
			io.WriteString(w, `{"ok":true}`)
		default:
			http.NotFound(w, r)
		}
	})
}

func newTestConnector(t *testing.T, stub *botAPIStub, dialog *fakeDialog) *Connector {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return New(Config{BotToken: "test-token", APIBase: srv.URL, PollSeconds: 1}, dialog, zerolog.Nop())
}

func TestPollOnceDeliversMessageAndReplies(t *testing.T) {
	t.Parallel()

	stub := &botAPIStub{updates: `{"ok":true,"result":[{
		"update_id": 100,
		"message": {
			"message_id": 1,
			"from": {"id": 7, "first_name": "Jane"},
			"chat": {"id": 55, "type": "private"},
			"text": "what services do you offer?"
		}
	}]}`}
	dialog := &fakeDialog{reply: "We offer piping engineering."}
	c := newTestConnector(t, stub, dialog)

	if err := c.pollOnce(context.Background()); err != nil {
		t.Fatalf("pollOnce error = %v", err)
	}

	if len(dialog.calls) != 1 || dialog.calls[0] != "7|Jane|what services do you offer?" {
		t.Fatalf("dialog calls = %v", dialog.calls)
	}
	if len(stub.actions) != 1 || stub.actions[0]["action"] != "typing" {
		t.Fatalf("chat actions = %v", stub.actions)
	}
	if len(stub.sent) != 1 {
		t.Fatalf("sent messages = %v", stub.sent)
	}
	if stub.sent[0]["text"] != "We offer piping engineering." {
		t.Fatalf("reply text = %v", stub.sent[0]["text"])
	}
	if stub.sent[0]["chat_id"] != float64(55) {
		t.Fatalf("chat_id = %v", stub.sent[0]["chat_id"])
	}
	if stub.sent[0]["parse_mode"] != "Markdown" {
		t.Fatalf("parse_mode = %v", stub.sent[0]["parse_mode"])
	}
	if c.offset != 101 {
		t.Fatalf("offset = %d, want 101", c.offset)
	}
}

func TestStartCommandBypassesDialog(t *testing.T) {
	t.Parallel()

	stub := &botAPIStub{updates: `{"ok":true,"result":[{
		"update_id": 1,
		"message": {
			"message_id": 1,
			"from": {"id": 7, "first_name": "Jane"},
			"chat": {"id": 55, "type": "private"},
			"text": "/start"
		}
	}]}`}
	dialog := &fakeDialog{reply: "should not be used"}
	c := newTestConnector(t, stub, dialog)

	if err := c.pollOnce(context.Background()); err != nil {
		t.Fatalf("pollOnce error = %v", err)
	}
	if len(dialog.calls) != 0 {
		t.Fatalf("commands must not reach the dialog, got %v", dialog.calls)
	}
	if len(stub.sent) != 1 {
		t.Fatalf("sent messages = %v", stub.sent)
	}
	text, _ := stub.sent[0]["text"].(string)
	if !strings.Contains(text, "Hello Jane!") {
		t.Fatalf("welcome text = %q", text)
	}
}

func TestGroupCommandSuffixIsStripped(t *testing.T) {
	t.Parallel()

	stub := &botAPIStub{updates: `{"ok":true,"result":[{
		"update_id": 1,
		"message": {
			"message_id": 1,
			"from": {"id": 7, "first_name": "Jane"},
			"chat": {"id": 55, "type": "group"},
			"text": "/help@winspiration_bot"
		}
	}]}`}
	c := newTestConnector(t, stub, &fakeDialog{})

	if err := c.pollOnce(context.Background()); err != nil {
		t.Fatalf("pollOnce error = %v", err)
	}
	if len(stub.sent) != 1 {
		t.Fatalf("sent messages = %v", stub.sent)
	}
	text, _ := stub.sent[0]["text"].(string)
	if !strings.Contains(text, "How to use") {
		t.Fatalf("help text = %q", text)
	}
}

func TestUnknownCommandAndEmptyTextIgnored(t *testing.T) {
	t.Parallel()

	stub := &botAPIStub{updates: `{"ok":true,"result":[
		{"update_id": 1, "message": {"message_id": 1, "from": {"id": 7}, "chat": {"id": 55}, "text": "/settings"}},
		{"update_id": 2, "message": {"message_id": 2, "from": {"id": 7}, "chat": {"id": 55}, "text": "   "}},
		{"update_id": 3}
	]}`}
	dialog := &fakeDialog{}
	c := newTestConnector(t, stub, dialog)

	if err := c.pollOnce(context.Background()); err != nil {
		t.Fatalf("pollOnce error = %v", err)
	}
	if len(dialog.calls) != 0 || len(stub.sent) != 0 {
		t.Fatalf("nothing should be handled, dialog=%v sent=%v", dialog.calls, stub.sent)
	}
	if c.offset != 4 {
		t.Fatalf("offset = %d, want 4", c.offset)
	}
}

func TestPollOnceRejectsAPIError(t *testing.T) {
	t.Parallel()

	stub := &botAPIStub{updates: `{"ok":false}`}
	c := newTestConnector(t, stub, &fakeDialog{})

	if err := c.pollOnce(context.Background()); err == nil {
		t.Fatal("expected error when getUpdates reports ok=false")
	}
}

func TestEmptyReplySendsNothing(t *testing.T) {
	t.Parallel()

	stub := &botAPIStub{updates: `{"ok":true,"result":[{
		"update_id": 1,
		"message": {
			"message_id": 1,
			"from": {"id": 7},
			"chat": {"id": 55, "type": "private"},
			"text": "hello"
		}
	}]}`}
	dialog := &fakeDialog{reply: ""}
	c := newTestConnector(t, stub, dialog)

	if err := c.pollOnce(context.Background()); err != nil {
		t.Fatalf("pollOnce error = %v", err)
	}
	if len(dialog.calls) != 1 {
		t.Fatalf("dialog calls = %v", dialog.calls)
	}
	// Missing first name falls back to a generic display name.
	if dialog.calls[0] != "7|User|hello" {
		t.Fatalf("dialog call = %q", dialog.calls[0])
	}
	if len(stub.sent) != 0 {
		t.Fatalf("sent messages = %v", stub.sent)
	}
}
