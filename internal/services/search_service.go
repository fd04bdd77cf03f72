package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"huakai/internal/infra"
	"huakai/internal/models/request_models"
	"huakai/internal/models/response_models"
	"huakai/pkg/llm"
	mem "huakai/pkg/memcache"
	"huakai/pkg/utils"

	"go.uber.org/zap"
)

// SearchGatherServiceInterface runs the supplemental research step: ask the
// model for search queries, fetch results for each, memoize the bundle.
type SearchGatherServiceInterface interface {
	Gather(ctx context.Context, prefs []request_models.PreferenceAnswer, start, end time.Time, location string) *response_models.SearchBundle
}

type searchGatherService struct {
	chat   llm.ChatClient
	model  string
	search infra.SearchClient
	store  mem.SearchBundleStore
	fanout int
	logger *zap.Logger
}

func NewSearchGatherService(
	chat llm.ChatClient,
	model string,
	search infra.SearchClient,
	store mem.SearchBundleStore,
	fanout int,
	logger *zap.Logger,
) SearchGatherServiceInterface {
	if fanout < 1 {
		fanout = 1
	}
	return &searchGatherService{
		chat:   chat,
		model:  model,
		search: search,
		store:  store,
		fanout: fanout,
		logger: logger,
	}
}

// FallbackQueries is the static research list used when query proposal fails.
func FallbackQueries(location string, start time.Time) []string {
	return []string{
		fmt.Sprintf("Top attractions in %s", location),
		fmt.Sprintf("Best restaurants in %s", location),
		fmt.Sprintf("%s events in %s", location, utils.FormatMonthYear(start)),
	}
}

// Gather returns the memoized bundle when the same location, window and
// answers were researched before; otherwise it proposes queries, fetches
// results, and stores the bundle for the rest of the process lifetime.
func (s *searchGatherService) Gather(
	ctx context.Context,
	prefs []request_models.PreferenceAnswer,
	start, end time.Time,
	location string,
) *response_models.SearchBundle {
	answers := make([]string, 0, len(prefs))
	for _, p := range prefs {
		answers = append(answers, p.Answer)
	}
	key := mem.KeyFor(location, utils.FormatTripDate(start), utils.FormatTripDate(end), answers)

	if bundle, ok := s.store.Get(key); ok {
		s.logger.Info("search bundle served from memo", zap.String("location", location))
		return bundle
	}

	queries, source := s.proposeQueries(ctx, prefs, start, end, location)
	results := s.fetchAll(ctx, queries, location)

	bundle := &response_models.SearchBundle{
		Queries: queries,
		Results: results,
		Source:  source,
	}
	s.store.Set(key, bundle, 0)
	return bundle
}

func (s *searchGatherService) proposeQueries(
	ctx context.Context,
	prefs []request_models.PreferenceAnswer,
	start, end time.Time,
	location string,
) ([]string, string) {
	var transcript strings.Builder
	for _, p := range prefs {
		fmt.Fprintf(&transcript, "Q: %s\nA: %s\n", p.Question, p.Answer)
	}

	prompt := fmt.Sprintf("You are planning web research for a trip to %s from %s to %s.\n"+
		"Traveler preferences:\n%s\n"+
		"Propose 3 to 5 Google search queries that would surface current events, attractions, "+
		"restaurants, and activities matching these preferences. "+
		`Return a JSON object: {"search_queries": ["...", "..."]}. Do not include any text outside the JSON.`,
		location, utils.FormatTripDate(start), utils.FormatTripDate(end), transcript.String())

	raw, err := s.chat.Complete(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   500,
		JSONOnly:    true,
	})
	if err != nil {
		s.logger.Warn("query proposal failed, using fallback queries",
			zap.String("location", location),
			zap.Error(err))
		return FallbackQueries(location, start), response_models.SourceFallback
	}

	var payload struct {
		SearchQueries []string `json:"search_queries"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(raw)), &payload); err != nil {
		s.logger.Warn("query proposal was not valid JSON, using fallback queries",
			zap.String("location", location),
			zap.Error(err))
		return FallbackQueries(location, start), response_models.SourceFallback
	}

	queries := make([]string, 0, len(payload.SearchQueries))
	for _, q := range payload.SearchQueries {
		if q = strings.TrimSpace(q); q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		s.logger.Warn("query proposal returned no usable queries, using fallback queries",
			zap.String("location", location))
		return FallbackQueries(location, start), response_models.SourceFallback
	}
	return queries, response_models.SourceModel
}

// fetchAll resolves every query to a result, running at most fanout fetches
// at a time. A query whose retries are exhausted keeps an empty result;
// without a credential no network call is attempted at all.
func (s *searchGatherService) fetchAll(ctx context.Context, queries []string, location string) map[string]response_models.SearchResult {
	results := make(map[string]response_models.SearchResult, len(queries))

	if !s.search.Configured() {
		s.logger.Info("search credential missing, skipping result fetch")
		for _, query := range queries {
			results[query] = response_models.SearchResult{}
		}
		return results
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.fanout)
	)
	seen := make(map[string]struct{}, len(queries))
	for _, query := range queries {
		if _, dup := seen[query]; dup {
			continue
		}
		seen[query] = struct{}{}

		wg.Add(1)
		sem <- struct{}{}
		go func(query string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := s.search.Search(ctx, query, location)
			if err != nil {
				s.logger.Warn("search exhausted retries, keeping empty result",
					zap.String("query", query),
					zap.Error(err))
				result = response_models.SearchResult{}
			}

			mu.Lock()
			results[query] = result
			mu.Unlock()
		}(query)
	}
	wg.Wait()

	return results
}

// DefaultSearchQueries is the built-in set of follow-up searches shown with
// every structured itinerary, keyed by category.
func DefaultSearchQueries(location string, start time.Time) map[string]string {
	return map[string]string{
		"events":      fmt.Sprintf("%s events in %s", location, utils.FormatMonthYear(start)),
		"places":      fmt.Sprintf("Top attractions in %s", location),
		"restaurants": fmt.Sprintf("Best restaurants in %s", location),
		"food":        fmt.Sprintf("Popular %s cuisines and local dishes", location),
		"adventures":  fmt.Sprintf("Outdoor adventures in %s", location),
	}
}

// MergeSearchSuggestions overlays the model's follow-up queries on the
// default set and renders each as a ready-to-open Google search, sorted by
// category for stable output.
func MergeSearchSuggestions(location string, start time.Time, modelQueries map[string]string) []response_models.SuggestedSearch {
	merged := DefaultSearchQueries(location, start)
	for category, query := range modelQueries {
		if category = strings.TrimSpace(category); category == "" {
			continue
		}
		if query = strings.TrimSpace(query); query != "" {
			merged[category] = query
		}
	}

	categories := make([]string, 0, len(merged))
	for category := range merged {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	suggestions := make([]response_models.SuggestedSearch, 0, len(merged))
	for _, category := range categories {
		query := merged[category]
		suggestions = append(suggestions, response_models.SuggestedSearch{
			Category: category,
			Query:    query,
			URL:      "https://www.google.com/search?q=" + url.QueryEscape(query),
		})
	}
	return suggestions
}
