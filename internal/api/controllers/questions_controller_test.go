package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huakai/internal/models/response_models"
)

func newQuestionsRouter(svc *stubQuestionService) *gin.Engine {
	r := gin.New()
	qc := NewQuestionsController(svc, "Maui, Hawaii")
	r.GET("/api/v1/questions", qc.GetQuestions)
	return r
}

func TestGetQuestionsReturnsPayload(t *testing.T) {
	svc := &stubQuestionService{
		questions: []string{"A?", "B?", "C?"},
		source:    response_models.SourceModel,
	}
	r := newQuestionsRouter(svc)

	w := performJSON(t, r, http.MethodGet, "/api/v1/questions?location=Kauai", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var resp response_models.QuestionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "Kauai", resp.Location)
	assert.Equal(t, []string{"A?", "B?", "C?"}, resp.Questions)
	assert.Equal(t, response_models.SourceModel, resp.Source)
	assert.Equal(t, []string{"Kauai"}, svc.locations)
}

func TestGetQuestionsDefaultsLocation(t *testing.T) {
	for _, path := range []string{"/api/v1/questions", "/api/v1/questions?location=%20%20"} {
		svc := &stubQuestionService{questions: []string{"A?", "B?", "C?"}, source: response_models.SourceFallback}
		r := newQuestionsRouter(svc)

		w := performJSON(t, r, http.MethodGet, path, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Maui, Hawaii"}, svc.locations, "path %s", path)
	}
}
