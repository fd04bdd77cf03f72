package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"huakai/cmd/fx/llm_fx"
	"huakai/internal/services"
	"huakai/pkg/llm"
)

var Module = fx.Provide(
	ProvideItineraryService,
	ProvideExportService,
)

func ProvideItineraryService(chat llm.ChatClient, models llm_fx.Models, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(chat, models.Itinerary, logger)
}

func ProvideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}
