package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_assistant.go -package=mocks -mock_names=AssistantService=MockAssistantService,ChatGateway=MockChatGateway dayone/internal/service AssistantService,ChatGateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dayone/internal/contextutil"
	"dayone/internal/llm"
	"dayone/internal/recall"
)

const assistantSystemPrompt = "You are DayOne, a supportive habit coach. " +
	"Answer briefly and concretely. When notebook excerpts are provided, " +
	"ground your answer in them."

// ChatGateway is the chat completion endpoint, from the service layer's
// perspective.
type ChatGateway interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
	StreamComplete(ctx context.Context, messages []llm.Message, callback func(chunk string) error) error
}

// AskRequest holds the fields for an assistant prompt.
type AskRequest struct {
	Prompt string
}

// AskResponse holds the assistant's reply.
type AskResponse struct {
	Reply string
}

// AssistantService proxies prompts to the chat completion gateway,
// optionally grounding them in recalled notes.
type AssistantService interface {
	// Ask processes a prompt and returns the generated reply.
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
	// StreamAsk processes a prompt and streams the reply via callback.
	StreamAsk(ctx context.Context, req AskRequest, callback func(chunk string) error) error
}

// assistantService implements AssistantService.
type assistantService struct {
	chat   ChatGateway
	recall recall.Engine // Optional; nil disables note grounding
	logger *slog.Logger
}

// NewAssistantService creates a new AssistantService. recallEngine may be nil.
func NewAssistantService(chat ChatGateway, recallEngine recall.Engine) AssistantService {
	return &assistantService{
		chat:   chat,
		recall: recallEngine,
		logger: slog.Default(),
	}
}

// Ask processes a prompt and returns the generated reply.
func (s *assistantService) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	messages, err := s.buildMessages(ctx, req)
	if err != nil {
		return AskResponse{}, err
	}

	reply, err := s.chat.Complete(ctx, messages)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to get chat completion", "error", err)
		return AskResponse{}, WrapError(ErrExternalService, err.Error())
	}

	return AskResponse{Reply: reply}, nil
}

// StreamAsk processes a prompt and streams the reply via callback.
func (s *assistantService) StreamAsk(ctx context.Context, req AskRequest, callback func(chunk string) error) error {
	messages, err := s.buildMessages(ctx, req)
	if err != nil {
		return err
	}

	if err := s.chat.StreamComplete(ctx, messages, callback); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to stream chat completion", "error", err)
		return WrapError(ErrExternalService, err.Error())
	}
	return nil
}

// buildMessages validates the prompt and assembles the conversation,
// prepending recalled note excerpts when available. Recall failures are
// logged and the prompt proceeds ungrounded.
func (s *assistantService) buildMessages(ctx context.Context, req AskRequest) ([]llm.Message, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Prompt == "" {
		logger.WarnContext(ctx, "empty prompt in assistant request")
		return nil, &ValidationError{Field: "prompt", Message: "cannot be empty"}
	}

	messages := []llm.Message{{Role: "system", Content: assistantSystemPrompt}}

	if s.recall != nil {
		snippets, err := s.recall.Recall(ctx, req.Prompt, 5)
		if err != nil {
			logger.WarnContext(ctx, "note recall failed, answering without context", "error", err)
		} else if len(snippets) > 0 {
			var sb strings.Builder
			sb.WriteString("Notebook excerpts:\n")
			for i, snippet := range snippets {
				fmt.Fprintf(&sb, "%d. %s\n", i+1, snippet.Content)
			}
			messages = append(messages, llm.Message{Role: "system", Content: sb.String()})
		}
	}

	messages = append(messages, llm.Message{Role: "user", Content: req.Prompt})
	return messages, nil
}
