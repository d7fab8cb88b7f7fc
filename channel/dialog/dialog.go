// Package dialog coordinates one inbound message against the contact-form
// state and the intent router. Both channel adapters (webhook and Telegram)
// feed messages through here so command parsing behaves identically on
// every channel.
package dialog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	contractx "github.com/winspiration/assistant/agent/contract"
	"github.com/winspiration/assistant/content"
	"github.com/winspiration/assistant/form"
)

// Notifier forwards a completed form; the boolean selects between the two
// confirmation templates.
type Notifier interface {
	Notify(ctx context.Context, sess form.Session) bool
}

var cancelKeywords = []string{"cancel", "stop", "exit", "quit", "nevermind", "go back", "abort"}

var editCommand = regexp.MustCompile(`(?i)^edit\s+(\w+)\s+(.+)$`)

type Coordinator struct {
	forms    *form.Store
	router   contractx.Router
	notifier Notifier
	logger   zerolog.Logger
}

func New(forms *form.Store, router contractx.Router, notifier Notifier, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		forms:    forms,
		router:   router,
		notifier: notifier,
		logger:   logger,
	}
}

// HandleMessage resolves one user message to reply text. It never returns
// an error: every failure path collapses to user-facing guidance so a bad
// message can not take the process down.
func (c *Coordinator) HandleMessage(ctx context.Context, userID, displayName, text string) string {
	lower := strings.ToLower(text)

	if wantsToCancel(lower) {
		if _, active := c.forms.Active(userID); active {
			c.forms.Cancel(userID)
			c.logger.Info().Str("user_id", userID).Msg("contact form cancelled")
			return cancelledText()
		}
		return "No problem! How else can I help you?"
	}

	if sess, active := c.forms.Active(userID); active {
		return c.handleFormInput(ctx, sess, lower, text)
	}

	outcome, err := c.router.Handle(ctx, userID, text)
	if err != nil {
		c.logger.Error().Err(err).Str("user_id", userID).Msg("routing failed")
		return "❌ Sorry, I encountered an error processing your message. Please try again!"
	}

	if outcome.Kind == contractx.OutcomeStartForm {
		c.forms.Start(userID, displayName)
		c.logger.Info().Str("user_id", userID).Msg("contact form started")
		return formIntroText
	}
	return outcome.Text
}

func (c *Coordinator) handleFormInput(ctx context.Context, sess form.Session, lower, text string) string {
	userID := sess.UserID

	if lower == "review" || lower == "show" || lower == "check" {
		summary, ok := c.forms.Summary(userID)
		if !ok {
			return "❌ Sorry, there was an error. Please try again or type \"cancel\" to stop."
		}
		if next, missing := sess.NextMissing(); missing {
			summary += "\n\n" + form.Prompt(next)
		}
		return summary
	}

	if match := editCommand.FindStringSubmatch(text); match != nil {
		field, ok := form.ParseField(match[1])
		if !ok {
			return "❌ Invalid field name. Valid fields are: " + strings.Join(form.FieldNames(), ", ")
		}
		updated, err := c.forms.EditField(userID, field, match[2])
		if err != nil {
			c.logger.Error().Err(err).Str("user_id", userID).Msg("edit field failed")
			return "❌ Could not edit field. Please try again."
		}
		reply := fmt.Sprintf("✅ Updated %s: %s\n\nType \"review\" to see all current data.", field, match[2])
		if next, missing := updated.NextMissing(); missing {
			reply += "\n\n" + form.Prompt(next)
		}
		return reply
	}

	next, missing := sess.NextMissing()
	if !missing {
		// All values are present but an edit reopened the form; the next
		// plain message confirms it and triggers the handoff.
		return c.finishForm(ctx, userID)
	}

	updated, err := c.forms.SetField(userID, next, text)
	if err != nil {
		c.logger.Error().Err(err).Str("user_id", userID).Msg("set field failed")
		return "❌ Sorry, there was an error. Please try again or type \"cancel\" to stop."
	}

	if still, stillMissing := updated.NextMissing(); stillMissing {
		return form.Prompt(still)
	}
	return c.finishForm(ctx, userID)
}

func (c *Coordinator) finishForm(ctx context.Context, userID string) string {
	completed, ok := c.forms.Complete(userID)
	if !ok {
		return "❌ Sorry, there was an error. Please try again or type \"cancel\" to stop."
	}

	sent := c.notifier.Notify(ctx, completed)
	c.logger.Info().Str("user_id", userID).Bool("forwarded", sent).Msg("contact form completed")

	name := completed.Value(form.FieldName)
	email := completed.Value(form.FieldEmail)
	phone := completed.Value(form.FieldPhone)
	if sent {
		return fmt.Sprintf("✅ *Thank you, %s!*\n\n"+
			"Your inquiry has been received. Our team will contact you shortly at:\n"+
			"📧 %s\n📱 %s\n\n"+
			"We typically respond within 24 hours during business days.", name, email, phone)
	}
	contact := content.Company().Contact
	return fmt.Sprintf("✅ *Thank you, %s!*\n\n"+
		"Your inquiry has been recorded. Our team will contact you at:\n"+
		"📧 %s\n📱 %s\n\n"+
		"Alternatively, you can reach us directly at:\n"+
		"📧 %s\n📞 %s", name, email, phone, contact.Email, contact.Phone)
}

func wantsToCancel(lower string) bool {
	for _, kw := range cancelKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func cancelledText() string {
	contact := content.Company().Contact
	return fmt.Sprintf("❌ Contact form cancelled.\n\n"+
		"No problem! Feel free to ask me anything else about Winspiration Engineering.\n\n"+
		"You can always reach us directly at:\n"+
		"📧 %s\n📞 %s", contact.Email, contact.Phone)
}

const formIntroText = "📋 *Contact Form*\n\n" +
	"I'll help you get in touch with our team! I need a few details from you.\n\n" +
	"👤 Please provide your full name:\n\n" +
	"_(Type \"cancel\" anytime to stop)_"
