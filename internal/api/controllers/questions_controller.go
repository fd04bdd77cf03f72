package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"huakai/internal/models/response_models"
	"huakai/internal/services"
	"huakai/pkg/utils"
)

type QuestionsController struct {
	questionService services.QuestionServiceInterface
	defaultLocation string
}

func NewQuestionsController(questionService services.QuestionServiceInterface, defaultLocation string) *QuestionsController {
	return &QuestionsController{
		questionService: questionService,
		defaultLocation: defaultLocation,
	}
}

// GetQuestions godoc
// @Summary Get interview questions
// @Description Fetch the three preference questions asked before planning a trip
// @Tags Questions
// @Accept json
// @Produce json
// @Param location query string false "Destination (defaults to the configured location)"
// @Success 200 {object} utils.APIResponse
// @Router /questions [get]
func (q *QuestionsController) GetQuestions(c *gin.Context) {
	location := strings.TrimSpace(c.DefaultQuery("location", q.defaultLocation))
	if location == "" {
		location = q.defaultLocation
	}

	questions, source := q.questionService.Questions(c.Request.Context(), location)

	utils.RespondSuccess(c, response_models.QuestionsResponse{
		Location:  location,
		Questions: questions,
		Source:    source,
	}, "Questions fetched successfully")
}
