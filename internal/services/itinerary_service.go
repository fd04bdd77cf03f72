package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"huakai/internal/models/request_models"
	"huakai/internal/models/response_models"
	"huakai/pkg/llm"
	"huakai/pkg/utils"

	"go.uber.org/zap"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const itineraryRetryInstruction = "\n\nIMPORTANT: The JSON must be valid and fully enclosed in curly braces. " +
	"Double-check you haven't truncated the content."

// ComposeInput carries everything one itinerary generation needs.
type ComposeInput struct {
	Location string
	Start    time.Time
	End      time.Time
	Answers  []request_models.PreferenceAnswer
	Format   string
	Search   *response_models.SearchBundle
}

// PlanOutcome distinguishes how a generation ended: free text, parsed JSON,
// or a parse failure that still carries the raw reply for display.
type PlanOutcome struct {
	Text        string
	Structured  *response_models.StructuredItinerary
	RawResponse string
	ParseFailed bool
}

type ItineraryServiceInterface interface {
	Compose(ctx context.Context, input ComposeInput) (*PlanOutcome, error)
}

type itineraryService struct {
	chat   llm.ChatClient
	model  string
	logger *zap.Logger
}

func NewItineraryService(chat llm.ChatClient, model string, logger *zap.Logger) ItineraryServiceInterface {
	return &itineraryService{
		chat:   chat,
		model:  model,
		logger: logger,
	}
}

// Compose always calls the model. Itineraries are never served from a cache,
// so every submission gets a fresh plan.
func (s *itineraryService) Compose(ctx context.Context, input ComposeInput) (*PlanOutcome, error) {
	system := s.systemPrompt(input)
	userContent := s.userContent(input)

	if input.Format != FormatJSON {
		raw, err := s.chat.Complete(ctx, llm.ChatRequest{
			Model:       s.model,
			Messages:    chatMessages(system, userContent),
			Temperature: 0.8,
			MaxTokens:   2000,
		})
		if err != nil {
			s.logger.Error("itinerary generation failed", zap.Error(err))
			return nil, utils.ErrItineraryUnavailable
		}
		return &PlanOutcome{Text: strings.TrimSpace(raw)}, nil
	}

	// Structured mode: up to 2 attempts, the second with stricter wording.
	content := userContent
	var raw string
	for attempt := 1; attempt <= 2; attempt++ {
		out, err := s.chat.Complete(ctx, llm.ChatRequest{
			Model:       s.model,
			Messages:    chatMessages(system, content),
			Temperature: 0.8,
			MaxTokens:   2000,
			JSONOnly:    true,
		})
		if err != nil {
			s.logger.Error("itinerary generation failed",
				zap.Int("attempt", attempt),
				zap.Error(err))
			return nil, utils.ErrItineraryUnavailable
		}
		raw = out

		var parsed response_models.StructuredItinerary
		if err := json.Unmarshal([]byte(llm.CleanJSONResponse(raw)), &parsed); err == nil {
			return &PlanOutcome{Structured: &parsed}, nil
		}
		s.logger.Warn("itinerary JSON did not parse", zap.Int("attempt", attempt))
		content = userContent + itineraryRetryInstruction
	}

	return &PlanOutcome{RawResponse: raw, ParseFailed: true}, nil
}

func (s *itineraryService) systemPrompt(input ComposeInput) string {
	base := fmt.Sprintf("You are an expert travel itinerary planner for %s. "+
		"The user has told you about their preferences, and you know their travel dates. "+
		"Generate a detailed, day-by-day itinerary (for each day from Start Date to End Date) "+
		"that includes events, restaurants, scenic spots, tours, and adventure activities. ", input.Location)

	if input.Format != FormatJSON {
		return base + "Write the itinerary as well-formatted Markdown with a heading for each day."
	}

	return base +
		"Finally, produce a JSON object with two keys: 'itinerary' and 'serpapi_queries'. " +
		"The 'itinerary' key holds a dictionary of daily plans. The 'serpapi_queries' key " +
		"should be a dictionary with multiple categories of search queries relevant to the itinerary, e.g. " +
		"events, places, restaurants, food, adventures. The JSON must be valid, complete, and not truncated."
}

func (s *itineraryService) userContent(input ComposeInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Start Date: %s\n", utils.FormatTripDate(input.Start))
	fmt.Fprintf(&b, "End Date: %s\n\n", utils.FormatTripDate(input.End))

	b.WriteString("Preferences:\n")
	for _, p := range input.Answers {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", p.Question, p.Answer)
	}

	if snippet := ragSnippet(input.Search); snippet != "" {
		b.WriteString("\nWeb search context (use for current names, links, and events):\n")
		b.WriteString(snippet)
	}

	if input.Format == FormatJSON {
		b.WriteString("\n\nGenerate a valid JSON with keys: 'itinerary', 'serpapi_queries'. " +
			"Do not include any extra keys, comments, or text outside the JSON.")
	}
	return b.String()
}

// ragSnippet flattens up to three results per query into the bullet list
// embedded in the composition prompt.
func ragSnippet(bundle *response_models.SearchBundle) string {
	if bundle == nil {
		return ""
	}

	var b strings.Builder
	for _, query := range bundle.Queries {
		result, ok := bundle.Results[query]
		if !ok || result.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "Search: %s\n", query)

		organic := result.OrganicResults
		if len(organic) > 3 {
			organic = organic[:3]
		}
		for _, item := range organic {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", item.Title, truncate(item.Snippet, 200), item.Link)
		}

		if result.LocalResults == nil {
			continue
		}
		places := result.LocalResults.Places
		if len(places) > 3 {
			places = places[:3]
		}
		for _, place := range places {
			fmt.Fprintf(&b, "- %s", place.Title)
			if place.Rating > 0 {
				fmt.Fprintf(&b, ", rated %.1f (%d reviews)", place.Rating, place.Reviews)
			}
			if place.Address != "" {
				fmt.Fprintf(&b, ", %s", place.Address)
			}
			if place.Phone != "" {
				fmt.Fprintf(&b, ", %s", place.Phone)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func chatMessages(system, user string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}
