package questions_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"huakai/cmd/fx/llm_fx"
	"huakai/internal/services"
	"huakai/pkg/llm"
)

var Module = fx.Provide(ProvideQuestionService)

func ProvideQuestionService(chat llm.ChatClient, models llm_fx.Models, logger *zap.Logger) services.QuestionServiceInterface {
	return services.NewQuestionService(chat, models.Question, logger)
}
