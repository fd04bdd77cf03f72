package request_models

// PreferenceAnswer pairs a generated question with the traveler's answer.
type PreferenceAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PlanRequest is the itinerary submission: where, when, and what the
// traveler told us about their preferences.
type PlanRequest struct {
	Location      string             `json:"location"`
	StartDate     string             `json:"start_date" binding:"required"`
	EndDate       string             `json:"end_date" binding:"required"`
	Answers       []PreferenceAnswer `json:"answers"`
	Format        string             `json:"format"`
	IncludeSearch *bool              `json:"include_search"`
}

// WantsSearch defaults to true when the flag is omitted.
func (r PlanRequest) WantsSearch() bool {
	return r.IncludeSearch == nil || *r.IncludeSearch
}
