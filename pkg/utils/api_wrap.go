package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		RespondError(c, http.StatusBadRequest, "Dates must use the YYYY-MM-DD format")
	case errors.Is(err, ErrInvalidTripWindow):
		RespondError(c, http.StatusBadRequest, "Start date must be before end date")
	case errors.Is(err, ErrNoAnswers):
		RespondError(c, http.StatusBadRequest, "At least one answered question is required")
	case errors.Is(err, ErrEmptyItinerary):
		RespondError(c, http.StatusBadRequest, "Itinerary text is required")
	case errors.Is(err, ErrUnsupportedExportFormat):
		RespondError(c, http.StatusBadRequest, "Export format must be txt or pdf")
	case errors.Is(err, ErrInvalidRecipient):
		RespondError(c, http.StatusBadRequest, "A valid recipient address is required")
	case errors.Is(err, ErrMailNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, "Email delivery is not configured")
	case errors.Is(err, ErrMailDeliveryFailed):
		RespondError(c, http.StatusBadGateway, "Email could not be delivered")
	case errors.Is(err, ErrItineraryUnavailable):
		RespondError(c, http.StatusBadGateway, "Itinerary service is unavailable, please try again")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
