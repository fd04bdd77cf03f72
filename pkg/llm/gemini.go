package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient implements ChatClient using Google's Gemini models.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

// NewGeminiChatClient creates a new Gemini client
func NewGeminiChatClient(apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiChatClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.JSONOnly {
		// Force JSON-only output so downstream parsing can skip prose stripping.
		m.ResponseMIMEType = "application/json"
	}

	// Gemini takes one system instruction plus a user prompt, so fold the
	// message list into those two slots.
	var system, user strings.Builder
	for _, msg := range req.Messages {
		if msg.Role == RoleSystem {
			if system.Len() > 0 {
				system.WriteString("\n")
			}
			system.WriteString(msg.Content)
			continue
		}
		if user.Len() > 0 {
			user.WriteString("\n\n")
		}
		user.WriteString(msg.Content)
	}
	if system.Len() > 0 {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system.String())}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(user.String()))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

// Close closes the underlying Gemini client.
func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
