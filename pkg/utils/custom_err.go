package utils

import "errors"

var (
	ErrInvalidDate             = errors.New("invalid date")
	ErrInvalidTripWindow       = errors.New("invalid trip window")
	ErrNoAnswers               = errors.New("no preference answers")
	ErrItineraryUnavailable    = errors.New("itinerary service unavailable")
	ErrEmptyItinerary          = errors.New("empty itinerary")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrInvalidRecipient        = errors.New("invalid recipient address")
	ErrMailNotConfigured       = errors.New("mail delivery not configured")
	ErrMailDeliveryFailed      = errors.New("mail delivery failed")
)
