package router

import (
	"context"
	"encoding/json"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"

	contractx "github.com/winspiration/assistant/agent/contract"
	promptx "github.com/winspiration/assistant/agent/prompt"
	toolx "github.com/winspiration/assistant/agent/tool"
)

const (
	apologyError = "I apologize, I encountered an error. Please try again."
	apologyEmpty = "I apologize, I encountered an issue processing your request."
)

// ChatCompleter is the slice of the OpenAI SDK the router needs.
// *openai.ChatCompletionService satisfies it.
type ChatCompleter interface {
	New(ctx context.Context, body openaisdk.ChatCompletionNewParams, opts ...option.RequestOption) (*openaisdk.ChatCompletion, error)
}

// LLM forwards the message plus the tool menu to the completion service,
// executes whichever tool it selects, and asks for a phrased answer grounded
// in the tool result. Every external failure resolves to a fixed apology;
// the adapter never sees an error from this router.
type LLM struct {
	completions ChatCompleter
	model       string
	prompts     promptx.PromptSet
	logger      zerolog.Logger
}

var _ contractx.Router = (*LLM)(nil)

func NewLLM(completions ChatCompleter, model string, prompts promptx.PromptSet, logger zerolog.Logger) *LLM {
	return &LLM{
		completions: completions,
		model:       model,
		prompts:     prompts,
		logger:      logger,
	}
}

func (l *LLM) Handle(ctx context.Context, userID, text string) (contractx.Outcome, error) {
	first, err := l.completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(l.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(l.prompts.System),
			openaisdk.UserMessage(text),
		},
		Tools: toolx.Specs(),
	})
	if err != nil {
		l.logger.Error().Err(err).Str("user_id", userID).Msg("completion call failed")
		return contractx.Reply(apologyError), nil
	}
	if len(first.Choices) == 0 {
		l.logger.Warn().Str("user_id", userID).Msg("completion returned no choices")
		return contractx.Reply(apologyEmpty), nil
	}

	message := first.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		if message.Content == "" {
			return contractx.Reply(apologyEmpty), nil
		}
		return contractx.Reply(message.Content), nil
	}

	call := message.ToolCalls[0]
	l.logger.Info().Str("user_id", userID).Str("tool", call.Function.Name).Msg("model selected tool")

	if call.Function.Name == toolx.ToolInitiateContactRequest {
		return contractx.StartForm(), nil
	}

	result, err := toolx.Execute(ctx, call.Function.Name)
	if err != nil {
		l.logger.Error().Err(err).Str("tool", call.Function.Name).Msg("tool execution failed")
		return contractx.Reply(apologyError), nil
	}
	payload, err := json.Marshal(result.Payload)
	if err != nil {
		l.logger.Error().Err(err).Str("tool", call.Function.Name).Msg("tool payload marshal failed")
		return contractx.Reply(apologyError), nil
	}

	second, err := l.completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(l.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(l.prompts.Phrasing),
			openaisdk.UserMessage(text),
			message.ToParam(),
			openaisdk.ToolMessage(string(payload), call.ID),
		},
	})
	if err != nil {
		l.logger.Error().Err(err).Str("user_id", userID).Msg("phrasing call failed")
		return contractx.Reply(apologyError), nil
	}
	if len(second.Choices) == 0 || second.Choices[0].Message.Content == "" {
		return contractx.Reply(apologyEmpty), nil
	}
	return contractx.Reply(second.Choices[0].Message.Content), nil
}
