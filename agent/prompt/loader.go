package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/system.txt
	systemRaw string

	//go:embed template/phrasing.txt
	phrasingRaw string
)

// PromptSet holds the loaded prompt content for the LLM router.
type PromptSet struct {
	// System frames the assistant for the first, tool-selecting completion.
	System string
	// Phrasing frames the second completion that turns a tool result into
	// a natural-language answer.
	Phrasing string
}

// LoadPromptSet returns trimmed prompts. Safe to call concurrently; the
// embed is compile-time.
func LoadPromptSet() PromptSet {
	return PromptSet{
		System:   strings.TrimSpace(systemRaw),
		Phrasing: strings.TrimSpace(phrasingRaw),
	}
}
