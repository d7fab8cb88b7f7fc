package contract

// OutcomeKind discriminates what a router wants the channel adapter to do.
type OutcomeKind string

const (
	// OutcomeReply carries literal text to send back to the user.
	OutcomeReply OutcomeKind = "reply"
	// OutcomeStartForm tells the adapter to open a contact-form session
	// instead of sending prose.
	OutcomeStartForm OutcomeKind = "start_form"
)

// Outcome is the tagged result of routing one message. Adapters must check
// Kind before rendering anything to the user.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Text string      `json:"text,omitempty"`
}

func Reply(text string) Outcome {
	return Outcome{Kind: OutcomeReply, Text: text}
}

func StartForm() Outcome {
	return Outcome{Kind: OutcomeStartForm}
}
