package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"huakai/internal/models/response_models"
	"huakai/pkg/llm"
)

// fakeChat scripts chat completions and records every request it sees.
// Reply i answers call i; the last reply repeats once the script runs out.
type fakeChat struct {
	mu       sync.Mutex
	requests []llm.ChatRequest
	replies  []string
	errs     []error
	calls    int
}

func (f *fakeChat) Complete(_ context.Context, req llm.ChatRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.calls
	f.calls++
	f.requests = append(f.requests, req)

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	if len(f.replies) > 0 {
		return f.replies[len(f.replies)-1], nil
	}
	return "", nil
}

func (f *fakeChat) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeChat) request(i int) llm.ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

// fakeSearch counts calls, tracks peak concurrency, and serves canned
// results per query.
type fakeSearch struct {
	configured bool
	err        error
	result     response_models.SearchResult
	perQuery   map[string]response_models.SearchResult
	delay      time.Duration

	mu      sync.Mutex
	queries []string

	inFlight    int64
	maxInFlight int64
}

func (f *fakeSearch) Configured() bool { return f.configured }

func (f *fakeSearch) Search(_ context.Context, query, _ string) (response_models.SearchResult, error) {
	cur := atomic.AddInt64(&f.inFlight, 1)
	for {
		max := atomic.LoadInt64(&f.maxInFlight)
		if cur <= max || atomic.CompareAndSwapInt64(&f.maxInFlight, max, cur) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	atomic.AddInt64(&f.inFlight, -1)

	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.err != nil {
		return response_models.SearchResult{}, f.err
	}
	if r, ok := f.perQuery[query]; ok {
		return r, nil
	}
	return f.result, nil
}

func (f *fakeSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeSearch) maxConcurrent() int64 {
	return atomic.LoadInt64(&f.maxInFlight)
}

func organicResult(titles ...string) response_models.SearchResult {
	var result response_models.SearchResult
	for _, title := range titles {
		result.OrganicResults = append(result.OrganicResults, response_models.OrganicResult{
			Title:   title,
			Link:    "https://example.com",
			Snippet: "snippet for " + title,
		})
	}
	return result
}
