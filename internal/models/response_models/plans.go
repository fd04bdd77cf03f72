package response_models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StructuredItinerary is the parsed planner payload: a dictionary of daily
// plans plus the follow-up search queries the model suggested per category.
type StructuredItinerary struct {
	Itinerary      map[string]string `json:"itinerary"`
	SerpAPIQueries map[string]string `json:"serpapi_queries"`
}

// Flatten renders the daily plans as plain text, ordered by day number when
// the labels carry one.
func (s *StructuredItinerary) Flatten() string {
	keys := make([]string, 0, len(s.Itinerary))
	for k := range s.Itinerary {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, oki := trailingNumber(keys[i])
		nj, okj := trailingNumber(keys[j])
		if oki && okj && ni != nj {
			return ni < nj
		}
		return keys[i] < keys[j]
	})

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s\n%s\n\n", k, s.Itinerary[k])
	}
	return strings.TrimSpace(b.String())
}

func trailingNumber(s string) (int, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SuggestedSearch pairs a query category with a ready-to-open web search.
type SuggestedSearch struct {
	Category string `json:"category"`
	Query    string `json:"query"`
	URL      string `json:"url"`
}

type PlanResponse struct {
	Location          string               `json:"location"`
	StartDate         string               `json:"start_date"`
	EndDate           string               `json:"end_date"`
	Days              int                  `json:"days"`
	Format            string               `json:"format"`
	ItineraryText     string               `json:"itinerary_text,omitempty"`
	Itinerary         *StructuredItinerary `json:"itinerary,omitempty"`
	RawResponse       string               `json:"raw_response,omitempty"`
	ParseFailed       bool                 `json:"parse_failed,omitempty"`
	SuggestedSearches []SuggestedSearch    `json:"suggested_searches,omitempty"`
	Search            *SearchBundle        `json:"search,omitempty"`
	Mailto            string               `json:"mailto,omitempty"`
}
