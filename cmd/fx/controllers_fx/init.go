package controllers_fx

import (
	"os"

	"go.uber.org/fx"

	"huakai/internal/api/controllers"
	"huakai/internal/services"
)

var Module = fx.Provide(
	ProvidePagesController,
	ProvideQuestionsController,
	ProvidePlansController,
	ProvideExportController,
)

func ProvidePagesController() (*controllers.PagesController, error) {
	return controllers.NewPagesController(defaultLocation())
}

func ProvideQuestionsController(questionService services.QuestionServiceInterface) *controllers.QuestionsController {
	return controllers.NewQuestionsController(questionService, defaultLocation())
}

func ProvidePlansController(
	searchService services.SearchGatherServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *controllers.PlansController {
	return controllers.NewPlansController(searchService, itineraryService, defaultLocation())
}

func ProvideExportController(
	exportService services.ExportServiceInterface,
	mailService services.IMailService,
) *controllers.ExportController {
	return controllers.NewExportController(exportService, mailService, defaultLocation())
}

func defaultLocation() string {
	if value := os.Getenv("DEFAULT_LOCATION"); value != "" {
		return value
	}
	return "Maui, Hawaii"
}
