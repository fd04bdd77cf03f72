package response_models

type QuestionsResponse struct {
	Location  string   `json:"location"`
	Questions []string `json:"questions"`
	Source    string   `json:"source"`
}
