package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"huakai/internal/models/request_models"
	"huakai/internal/services"
	"huakai/pkg/utils"
)

type ExportController struct {
	exportService   services.ExportServiceInterface
	mailService     services.IMailService
	defaultLocation string
}

func NewExportController(
	exportService services.ExportServiceInterface,
	mailService services.IMailService,
	defaultLocation string,
) *ExportController {
	return &ExportController{
		exportService:   exportService,
		mailService:     mailService,
		defaultLocation: defaultLocation,
	}
}

// DownloadItinerary godoc
// @Summary Download an itinerary
// @Description Render the itinerary as a txt or pdf attachment
// @Tags Export
// @Accept json
// @Produce octet-stream
// @Param request body request_models.DownloadRequest true "Download request"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Router /plans/export/download [post]
func (e *ExportController) DownloadItinerary(c *gin.Context) {
	var req request_models.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = e.defaultLocation
	}
	format := strings.ToLower(strings.TrimSpace(req.Format))

	data, contentType, filename, err := e.exportService.Render(format, location, dateRange(req.StartDate, req.EndDate), req.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// EmailItinerary godoc
// @Summary Email an itinerary
// @Description Send the itinerary to the traveler over SMTP
// @Tags Export
// @Accept json
// @Produce json
// @Param request body request_models.EmailRequest true "Email request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /plans/export/email [post]
func (e *ExportController) EmailItinerary(c *gin.Context) {
	var req request_models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	to := strings.TrimSpace(req.To)
	if to == "" || !strings.Contains(to, "@") {
		utils.HandleServiceError(c, utils.ErrInvalidRecipient)
		return
	}
	if strings.TrimSpace(req.Itinerary) == "" {
		utils.HandleServiceError(c, utils.ErrEmptyItinerary)
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = e.defaultLocation
	}

	if err := e.mailService.SendItinerary(to, location, dateRange(req.StartDate, req.EndDate), req.Itinerary); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary emailed successfully")
}

func dateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return ""
	}
	return fmt.Sprintf("%s to %s", start, end)
}
