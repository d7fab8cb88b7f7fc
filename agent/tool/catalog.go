// Package tool exposes the assistant's lookup functions over the static
// content store, plus their function-calling specs for the completion
// service. All tools are parameterless and cannot fail once the process is
// up; the only error surface is an unknown tool name.
package tool

import (
	"context"
	"fmt"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/winspiration/assistant/agent/contract"
	"github.com/winspiration/assistant/content"
)

const (
	ToolListServices           = "listServices"
	ToolListProjects           = "listProjects"
	ToolGetAboutInfo           = "getAboutInfo"
	ToolGetIndustries          = "getIndustries"
	ToolGetFAQs                = "getFAQs"
	ToolInitiateContactRequest = "initiateContactRequest"
)

// Result is one executed tool call.
type Result struct {
	Tool    string `json:"tool"`
	Payload any    `json:"payload"`
}

type ServicesOutput struct {
	Services []content.Service `json:"services"`
}

type IndustriesOutput struct {
	Industries []string `json:"industries"`
	Message    string   `json:"message"`
}

type FAQsOutput struct {
	FAQs []content.FAQ `json:"faqs"`
}

// ContactRequestOutput describes the contact form to the completion service.
// It is informational only; the channel adapter starts the actual session
// when it sees this tool was chosen.
type ContactRequestOutput struct {
	Action      string          `json:"action"`
	Message     string          `json:"message"`
	ContactInfo content.Contact `json:"contact_info"`
	Fields      []string        `json:"fields"`
}

// Execute runs the named tool against the content store.
func Execute(_ context.Context, name string) (Result, error) {
	switch name {
	case ToolListServices:
		return Result{Tool: name, Payload: ServicesOutput{Services: content.Services()}}, nil
	case ToolListProjects:
		return Result{Tool: name, Payload: content.Projects()}, nil
	case ToolGetAboutInfo:
		return Result{Tool: name, Payload: content.Company()}, nil
	case ToolGetIndustries:
		return Result{Tool: name, Payload: IndustriesOutput{
			Industries: content.Industries(),
			Message:    "We have extensive experience serving a wide range of industries with international project execution.",
		}}, nil
	case ToolGetFAQs:
		return Result{Tool: name, Payload: FAQsOutput{FAQs: content.FAQs()}}, nil
	case ToolInitiateContactRequest:
		return Result{Tool: name, Payload: ContactRequestOutput{
			Action:      "start_contact_form",
			Message:     "I'll help you get in touch with Winspiration! I'll need a few details from you.",
			ContactInfo: content.Company().Contact,
			Fields:      []string{"name", "email", "phone", "subject", "message"},
		}}, nil
	default:
		return Result{}, fmt.Errorf("%w: %s", contractx.ErrUnknownTool, name)
	}
}

// Specs returns the fixed tool menu offered to the completion service.
// Every tool takes no parameters.
func Specs() []openaisdk.ChatCompletionToolParam {
	describe := func(name, desc string) openaisdk.ChatCompletionToolParam {
		return openaisdk.ChatCompletionToolParam{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        name,
				Description: openaisdk.String(desc),
				Parameters: openaisdk.FunctionParameters{
					"type":       "object",
					"properties": map[string]any{},
					"required":   []string{},
				},
			},
		}
	}

	return []openaisdk.ChatCompletionToolParam{
		describe(ToolListServices,
			"Returns a list of engineering services offered by Winspiration Energy & Engineering. Use this when user asks about services, offerings, what we do, or capabilities."),
		describe(ToolListProjects,
			"Returns portfolio of recent design projects with descriptions and URLs. Use when user asks about projects, portfolio, work examples, or case studies."),
		describe(ToolGetAboutInfo,
			"Returns information about the company including location, founding year, contact details. Use when user asks about the company, contact info, who we are, or how to reach us."),
		describe(ToolGetIndustries,
			"Returns the industries Winspiration serves. Use when user asks which sectors or industries we work with."),
		describe(ToolGetFAQs,
			"Returns frequently asked questions and answers about certifications, international work, and sustainability."),
		describe(ToolInitiateContactRequest,
			"Initiates a contact form when user wants to get in touch, submit inquiry, request quote, or contact the company. Use when user says \"contact\", \"get in touch\", \"reach out\", \"inquiry\", \"quote\", etc."),
	}
}
