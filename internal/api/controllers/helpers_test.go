package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"huakai/internal/models/request_models"
	"huakai/internal/models/response_models"
	"huakai/internal/services"
	"huakai/pkg/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubQuestionService struct {
	questions []string
	source    string
	locations []string
}

func (s *stubQuestionService) Questions(_ context.Context, location string) ([]string, string) {
	s.locations = append(s.locations, location)
	return s.questions, s.source
}

type stubSearchService struct {
	bundle *response_models.SearchBundle
	calls  int
}

func (s *stubSearchService) Gather(_ context.Context, _ []request_models.PreferenceAnswer, _, _ time.Time, _ string) *response_models.SearchBundle {
	s.calls++
	if s.bundle != nil {
		return s.bundle
	}
	return &response_models.SearchBundle{
		Queries: []string{},
		Results: map[string]response_models.SearchResult{},
		Source:  response_models.SourceFallback,
	}
}

type stubItineraryService struct {
	outcome *services.PlanOutcome
	err     error
	calls   int
	inputs  []services.ComposeInput
}

func (s *stubItineraryService) Compose(_ context.Context, input services.ComposeInput) (*services.PlanOutcome, error) {
	s.calls++
	s.inputs = append(s.inputs, input)
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

type sentMail struct {
	to, location, dateRange, itinerary string
}

type stubMailService struct {
	err  error
	sent []sentMail
}

func (s *stubMailService) SendItinerary(to, location, dateRange, itinerary string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to, location, dateRange, itinerary})
	return nil
}

func (s *stubMailService) Configured() bool { return s.err == nil }

// scriptedChat always answers with the same reply.
type scriptedChat struct {
	mu    sync.Mutex
	reply string
	calls int
}

func (s *scriptedChat) Complete(_ context.Context, _ llm.ChatRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.reply, nil
}

// countingSearch implements infra.SearchClient with empty results.
type countingSearch struct {
	mu    sync.Mutex
	calls int
}

func (c *countingSearch) Configured() bool { return true }

func (c *countingSearch) Search(_ context.Context, _, _ string) (response_models.SearchResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return response_models.SearchResult{}, nil
}

func (c *countingSearch) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type apiEnvelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodePlan(t *testing.T, w *httptest.ResponseRecorder) response_models.PlanResponse {
	t.Helper()
	env := decodeEnvelope(t, w)
	var plan response_models.PlanResponse
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	return plan
}
