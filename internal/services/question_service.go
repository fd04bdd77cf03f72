package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"huakai/internal/models/response_models"
	"huakai/pkg/llm"

	"go.uber.org/zap"
)

// QuestionServiceInterface produces the three interview questions shown
// before a traveler submits their preferences.
type QuestionServiceInterface interface {
	Questions(ctx context.Context, location string) ([]string, string)
}

type questionService struct {
	chat   llm.ChatClient
	model  string
	logger *zap.Logger

	mu   sync.Mutex
	memo map[string]questionSet
}

type questionSet struct {
	questions []string
	source    string
}

func NewQuestionService(chat llm.ChatClient, model string, logger *zap.Logger) QuestionServiceInterface {
	return &questionService{
		chat:   chat,
		model:  model,
		logger: logger,
		memo:   make(map[string]questionSet),
	}
}

// FallbackQuestions is the canned interview used whenever generation fails.
func FallbackQuestions(location string) []string {
	return []string{
		fmt.Sprintf("What is one thing you are most excited to experience in %s?", location),
		fmt.Sprintf("What type of cuisine are you most interested in exploring while in %s?", location),
		"Do you have any special interests or activities (e.g., hiking, snorkeling, culture) that you'd like to prioritize?",
	}
}

// Questions returns the memoized question set for a location, generating it
// on first use. The lock spans generation so each location asks the model
// at most once per process.
func (s *questionService) Questions(ctx context.Context, location string) ([]string, string) {
	location = strings.TrimSpace(location)
	key := strings.ToLower(location)

	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.memo[key]; ok {
		return set.questions, set.source
	}

	questions, source := s.generate(ctx, location)
	s.memo[key] = questionSet{questions: questions, source: source}
	return questions, source
}

func (s *questionService) generate(ctx context.Context, location string) ([]string, string) {
	prompt := fmt.Sprintf("You are a helpful itinerary planning assistant for a trip to %s. "+
		"Generate three engaging questions for a traveler. Each question should "+
		"be logically connected, so the second builds on the first, and the third builds on the second. "+
		`Return them as a JSON array, e.g.: ["Q1?", "Q2?", "Q3?"].`, location)

	raw, err := s.chat.Complete(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You are a friendly itinerary planner."},
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
		JSONOnly:    true,
	})
	if err != nil {
		s.logger.Warn("question generation failed, using fallback",
			zap.String("location", location),
			zap.Error(err))
		return FallbackQuestions(location), response_models.SourceFallback
	}

	var questions []string
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(raw)), &questions); err != nil {
		s.logger.Warn("question payload was not a JSON array, using fallback",
			zap.String("location", location),
			zap.Error(err))
		return FallbackQuestions(location), response_models.SourceFallback
	}
	if len(questions) != 3 {
		s.logger.Warn("expected exactly three questions, using fallback",
			zap.String("location", location),
			zap.Int("got", len(questions)))
		return FallbackQuestions(location), response_models.SourceFallback
	}

	for i, q := range questions {
		questions[i] = strings.TrimSpace(q)
	}
	return questions, response_models.SourceModel
}
