package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"huakai/internal/models/response_models"
)

func TestQuestionsFallbackOnTransportError(t *testing.T) {
	chat := &fakeChat{errs: []error{errors.New("connection refused")}}
	svc := NewQuestionService(chat, "gpt-4o", zap.NewNop())

	questions, source := svc.Questions(context.Background(), "Maui, Hawaii")

	require.Len(t, questions, 3)
	assert.Equal(t, response_models.SourceFallback, source)
	assert.Equal(t, FallbackQuestions("Maui, Hawaii"), questions)
	assert.Equal(t, 1, chat.callCount())
}

func TestQuestionsFallbackOnMalformedReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "here are some thoughts about your trip"},
		{"wrong count", `["only one question?"]`},
		{"object instead of array", `{"questions": ["a", "b", "c"]}`},
		{"empty array", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &fakeChat{replies: []string{tt.reply}}
			svc := NewQuestionService(chat, "gpt-4o", zap.NewNop())

			questions, source := svc.Questions(context.Background(), "Maui, Hawaii")

			assert.Equal(t, response_models.SourceFallback, source)
			assert.Equal(t, FallbackQuestions("Maui, Hawaii"), questions)
		})
	}
}

func TestQuestionsUseModelReply(t *testing.T) {
	chat := &fakeChat{replies: []string{`["What draws you here?", " What do you want to eat? ", "Any must-sees?"]`}}
	svc := NewQuestionService(chat, "gpt-4o", zap.NewNop())

	questions, source := svc.Questions(context.Background(), "Kauai")

	assert.Equal(t, response_models.SourceModel, source)
	assert.Equal(t, []string{"What draws you here?", "What do you want to eat?", "Any must-sees?"}, questions)
}

func TestQuestionsStripCodeFences(t *testing.T) {
	chat := &fakeChat{replies: []string{"```json\n[\"A?\", \"B?\", \"C?\"]\n```"}}
	svc := NewQuestionService(chat, "gpt-4o", zap.NewNop())

	questions, source := svc.Questions(context.Background(), "Lisbon")

	assert.Equal(t, response_models.SourceModel, source)
	assert.Equal(t, []string{"A?", "B?", "C?"}, questions)
}

func TestQuestionsMemoizedPerLocation(t *testing.T) {
	chat := &fakeChat{replies: []string{`["A?", "B?", "C?"]`}}
	svc := NewQuestionService(chat, "gpt-4o", zap.NewNop())

	first, _ := svc.Questions(context.Background(), "Maui, Hawaii")
	second, _ := svc.Questions(context.Background(), "maui, hawaii")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, chat.callCount())

	svc.Questions(context.Background(), "Kauai")
	assert.Equal(t, 2, chat.callCount())
}

func TestQuestionsFallbackIsMemoizedToo(t *testing.T) {
	chat := &fakeChat{errs: []error{errors.New("rate limited")}}
	svc := NewQuestionService(chat, "gpt-4o", zap.NewNop())

	svc.Questions(context.Background(), "Maui, Hawaii")
	_, source := svc.Questions(context.Background(), "Maui, Hawaii")

	assert.Equal(t, response_models.SourceFallback, source)
	assert.Equal(t, 1, chat.callCount())
}

func TestQuestionPromptCarriesLocation(t *testing.T) {
	chat := &fakeChat{replies: []string{`["A?", "B?", "C?"]`}}
	svc := NewQuestionService(chat, "gpt-4o", zap.NewNop())

	svc.Questions(context.Background(), "Lisbon")

	req := chat.request(0)
	require.Len(t, req.Messages, 2)
	assert.Contains(t, req.Messages[1].Content, "a trip to Lisbon")
	assert.Equal(t, float32(0.7), req.Temperature)
	assert.Equal(t, "gpt-4o", req.Model)
}
