package response_models

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// SearchResult keeps the slice of a web-search payload the planner cares
// about. Providers return far more keys; unknown ones are dropped on decode.
type SearchResult struct {
	OrganicResults []OrganicResult `json:"organic_results,omitempty"`
	LocalResults   *LocalResults   `json:"local_results,omitempty"`
}

type OrganicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type LocalResults struct {
	Places []LocalPlace `json:"places,omitempty"`
}

type LocalPlace struct {
	Title   string  `json:"title"`
	Rating  float64 `json:"rating,omitempty"`
	Reviews int     `json:"reviews,omitempty"`
	Address string  `json:"address,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Website string  `json:"website,omitempty"`
}

func (r SearchResult) IsEmpty() bool {
	return len(r.OrganicResults) == 0 && (r.LocalResults == nil || len(r.LocalResults.Places) == 0)
}

// SearchBundle is the memoized outcome of one supplemental research run:
// the queries that ran and the raw result for each, keyed by query text.
type SearchBundle struct {
	Queries []string                `json:"queries"`
	Results map[string]SearchResult `json:"results"`
	Source  string                  `json:"source"`
}
