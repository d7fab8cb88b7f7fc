// Package router holds the two interchangeable intent-routing strategies:
// a keyword matcher with canned templates and an LLM-backed router that
// delegates tool selection to the hosted completion service.
package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	contractx "github.com/winspiration/assistant/agent/contract"
	toolx "github.com/winspiration/assistant/agent/tool"
	"github.com/winspiration/assistant/content"
)

// Keyword routes by fixed keyword sets, first matching branch wins. Branch
// order: services, projects, about, greeting, fallback.
type Keyword struct {
	logger zerolog.Logger
}

var _ contractx.Router = (*Keyword)(nil)

func NewKeyword(logger zerolog.Logger) *Keyword {
	return &Keyword{logger: logger}
}

func (k *Keyword) Handle(ctx context.Context, userID, text string) (contractx.Outcome, error) {
	lower := strings.ToLower(text)
	k.logger.Debug().Str("user_id", userID).Str("text", text).Msg("keyword routing")

	switch {
	case containsAny(lower, "service", "what do you do", "what can you do"):
		res, err := toolx.Execute(ctx, toolx.ToolListServices)
		if err != nil {
			return contractx.Outcome{}, err
		}
		return contractx.Reply(renderServices(res.Payload.(toolx.ServicesOutput))), nil

	case containsAny(lower, "project", "portfolio", "work", "example"):
		res, err := toolx.Execute(ctx, toolx.ToolListProjects)
		if err != nil {
			return contractx.Outcome{}, err
		}
		return contractx.Reply(renderProjects(res.Payload.([]content.Project))), nil

	case containsAny(lower, "about", "who are you", "contact", "reach"):
		res, err := toolx.Execute(ctx, toolx.ToolGetAboutInfo)
		if err != nil {
			return contractx.Outcome{}, err
		}
		return contractx.Reply(renderAbout(res.Payload.(content.CompanyInfo))), nil

	case containsAny(lower, "hello", "hi", "hey"):
		return contractx.Reply(greetingText), nil

	default:
		return contractx.Reply(fallbackText), nil
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

const greetingText = "👋 Hello! I'm the Winspiration Energy & Engineering assistant.\n\n" +
	"I can help you with:\n" +
	"• Our services\n" +
	"• Portfolio/projects\n" +
	"• Company information\n\n" +
	"What would you like to know?"

const fallbackText = "I'm here to help! You can ask me about:\n\n" +
	"🎨 Services - \"What services do you offer?\"\n" +
	"📁 Projects - \"Show me your portfolio\"\n" +
	"ℹ️ About Us - \"Tell me about your company\"\n\n" +
	"What would you like to know?"

func renderServices(out toolx.ServicesOutput) string {
	var b strings.Builder
	b.WriteString("✨ We offer the following services:\n\n")
	for i, svc := range out.Services {
		fmt.Fprintf(&b, "%d. %s\n", i+1, svc.Name)
	}
	b.WriteString("\nWould you like to know more about any specific service?")
	return b.String()
}

func renderProjects(projects []content.Project) string {
	var b strings.Builder
	b.WriteString("🎨 Here are some of our recent projects:\n\n")
	for i, p := range projects {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "📁 *%s*\n   %s\n   🔗 %s", p.Name, p.Description, p.URL)
	}
	b.WriteString("\n\nWant to discuss a project idea?")
	return b.String()
}

func renderAbout(info content.CompanyInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ℹ️ *About %s*\n\n%s\n\n", info.Name, info.Tagline)
	fmt.Fprintf(&b, "📅 Founded: %d\n📍 Location: %s\n\n", info.Founded, info.Location)
	b.WriteString("We specialize in:\n")
	for _, s := range info.Specialties {
		fmt.Fprintf(&b, "• %s\n", s)
	}
	fmt.Fprintf(&b, "\n📞 *Contact Us:*\n📧 Email: %s\n📱 Phone: %s", info.Contact.Email, info.Contact.Phone)
	return b.String()
}
