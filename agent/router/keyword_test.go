package router

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	contractx "github.com/winspiration/assistant/agent/contract"
)

func keywordReply(t *testing.T, text string) string {
	t.Helper()
	k := NewKeyword(zerolog.Nop())
	out, err := k.Handle(context.Background(), "u1", text)
	if err != nil {
		t.Fatalf("Handle(%q) error = %v", text, err)
	}
	if out.Kind != contractx.OutcomeReply {
		t.Fatalf("Handle(%q) kind = %s, want reply", text, out.Kind)
	}
	return out.Text
}

func TestServicesBranch(t *testing.T) {
	t.Parallel()

	reply := keywordReply(t, "What services do you do?")
	if !strings.Contains(reply, "We offer the following services") {
		t.Fatalf("unexpected services reply: %q", reply)
	}
	if !strings.Contains(reply, "Piping Stress Analysis") {
		t.Fatalf("services reply missing service names: %q", reply)
	}
}

func TestProjectsBranchWinsOverAbout(t *testing.T) {
	t.Parallel()

	// Contains both "about" and "project"; branch order puts projects first.
	reply := keywordReply(t, "Tell me about your projects")
	if !strings.Contains(reply, "recent projects") {
		t.Fatalf("unexpected projects reply: %q", reply)
	}
}

func TestAboutBranch(t *testing.T) {
	t.Parallel()

	reply := keywordReply(t, "How can I reach you?")
	if !strings.Contains(reply, "Winspiration Energy & Engineering") {
		t.Fatalf("unexpected about reply: %q", reply)
	}
	if !strings.Contains(reply, "Contact Us") {
		t.Fatalf("about reply missing contact block: %q", reply)
	}
}

func TestGreetingBranch(t *testing.T) {
	t.Parallel()

	reply := keywordReply(t, "hello")
	if !strings.Contains(reply, "What would you like to know?") {
		t.Fatalf("unexpected greeting reply: %q", reply)
	}
}

func TestFallbackWhenNothingMatches(t *testing.T) {
	t.Parallel()

	reply := keywordReply(t, "qwerty")
	if reply != fallbackText {
		t.Fatalf("fallback reply = %q", reply)
	}
}
