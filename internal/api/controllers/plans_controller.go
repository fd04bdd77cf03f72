package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"huakai/internal/models/request_models"
	"huakai/internal/models/response_models"
	"huakai/internal/services"
	"huakai/pkg/utils"
)

type PlansController struct {
	searchService    services.SearchGatherServiceInterface
	itineraryService services.ItineraryServiceInterface
	defaultLocation  string
}

func NewPlansController(
	searchService services.SearchGatherServiceInterface,
	itineraryService services.ItineraryServiceInterface,
	defaultLocation string,
) *PlansController {
	return &PlansController{
		searchService:    searchService,
		itineraryService: itineraryService,
		defaultLocation:  defaultLocation,
	}
}

// CreatePlan godoc
// @Summary Generate an itinerary
// @Description Generate a day-by-day itinerary from travel dates and preference answers
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlansController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = p.defaultLocation
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = services.FormatText
	}
	if format != services.FormatText && format != services.FormatJSON {
		utils.RespondError(c, http.StatusBadRequest, "Format must be text or json")
		return
	}

	start, err := utils.ParseTripDate(req.StartDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	end, err := utils.ParseTripDate(req.EndDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	// The window gate runs before any outbound call is attempted.
	if err := utils.ValidateTripWindow(start, end); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	answers := make([]request_models.PreferenceAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if strings.TrimSpace(a.Answer) != "" {
			answers = append(answers, a)
		}
	}
	if len(answers) == 0 {
		utils.HandleServiceError(c, utils.ErrNoAnswers)
		return
	}

	ctx := c.Request.Context()

	var bundle *response_models.SearchBundle
	if req.WantsSearch() {
		bundle = p.searchService.Gather(ctx, answers, start, end, location)
	}

	outcome, err := p.itineraryService.Compose(ctx, services.ComposeInput{
		Location: location,
		Start:    start,
		End:      end,
		Answers:  answers,
		Format:   format,
		Search:   bundle,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.PlanResponse{
		Location:  location,
		StartDate: utils.FormatTripDate(start),
		EndDate:   utils.FormatTripDate(end),
		Days:      utils.TripDayCount(start, end),
		Format:    format,
		Search:    bundle,
	}

	dateRange := utils.FormatTripRange(start, end)
	message := "Itinerary generated successfully"
	switch {
	case outcome.ParseFailed:
		resp.ParseFailed = true
		resp.RawResponse = outcome.RawResponse
		message = "Itinerary could not be parsed as JSON; raw response attached"
	case outcome.Structured != nil:
		resp.Itinerary = outcome.Structured
		resp.SuggestedSearches = services.MergeSearchSuggestions(location, start, outcome.Structured.SerpAPIQueries)
		resp.Mailto = services.MailtoLink(location, dateRange, outcome.Structured.Flatten())
	default:
		resp.ItineraryText = outcome.Text
		resp.Mailto = services.MailtoLink(location, dateRange, outcome.Text)
	}

	utils.RespondSuccess(c, resp, message)
}
