package llm_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"huakai/pkg/llm"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvideModels,
)

// Models names the chat model each planning step uses. Gemini fixes its
// model at client construction, so both entries carry the same name there.
type Models struct {
	Question  string
	Itinerary string
}

func ProvideModels() Models {
	if strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "openai")) == "gemini" {
		model := getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		return Models{Question: model, Itinerary: model}
	}
	return Models{
		Question:  getEnvWithDefault("OPENAI_QUESTION_MODEL", "gpt-4o"),
		Itinerary: getEnvWithDefault("OPENAI_ITINERARY_MODEL", "gpt-3.5-turbo"),
	}
}

// ProvideChatClient creates a chat client based on environment variables
func ProvideChatClient() (llm.ChatClient, error) {
	provider := strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "openai"))

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	log.Printf("Initializing %s chat client", provider)
	return llm.NewChatClient(provider, apiKey, model)
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
