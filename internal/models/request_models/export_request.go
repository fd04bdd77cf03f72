package request_models

// DownloadRequest asks for an itinerary rendered as a downloadable file.
type DownloadRequest struct {
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Itinerary string `json:"itinerary" binding:"required"`
	Format    string `json:"format"`
}

// EmailRequest asks for an itinerary to be mailed to the traveler.
type EmailRequest struct {
	To        string `json:"to" binding:"required"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Itinerary string `json:"itinerary" binding:"required"`
}
