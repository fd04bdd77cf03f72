package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role/content turn in a chat exchange.
type Message struct {
	Role    string
	Content string
}

// ChatRequest carries the shared chat-completion surface: a model identifier,
// an ordered message list, a sampling temperature and a token budget.
// Providers that fix their model at construction time (Gemini) ignore Model.
// JSONOnly asks the provider to emit bare JSON when it supports forcing that.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int
	JSONOnly    bool
}

// ChatClient produces a single text completion for a request.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// NewChatClient builds a client for the configured provider.
func NewChatClient(provider, apiKey, model string) (ChatClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIChatClient(apiKey), nil
	case "gemini":
		return NewGeminiChatClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
