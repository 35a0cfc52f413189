package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
	"sensor-ops/pkg/utils"
)

type LearningHandler struct {
	learningService service.LearningService
}

func NewLearningHandler(learningService service.LearningService) *LearningHandler {
	return &LearningHandler{
		learningService: learningService,
	}
}

// Topics
// @Summary Knowledge-base topics from Learning_Content
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.TopicsResponse
// @Router /api/v1/learning/topics [get]
func (h *LearningHandler) Topics(c *gin.Context) {
	resp, err := h.learningService.Topics(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Quiz
// @Summary Quiz questions with choices, answer key withheld
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuizResponse
// @Router /api/v1/learning/quiz [get]
func (h *LearningHandler) Quiz(c *gin.Context) {
	resp, err := h.learningService.Quiz(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// GradeAnswer
// @Summary Grade one quiz answer
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.QuizAnswerRequest true "selected answer"
// @Success 200 {object} dto.QuizAnswerResponse
// @Router /api/v1/learning/quiz/answer [post]
func (h *LearningHandler) GradeAnswer(c *gin.Context) {
	var req dto.QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request", utils.FormatValidationError(err))
		return
	}

	resp, err := h.learningService.GradeAnswer(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Calculators
// @Summary Calc_Tools formulas: name, variables, unit
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.CalculatorsResponse
// @Router /api/v1/learning/calculators [get]
func (h *LearningHandler) Calculators(c *gin.Context) {
	resp, err := h.learningService.Calculators(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Calculate
// @Summary Evaluate a named formula against supplied values
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CalcRequest true "formula inputs"
// @Success 200 {object} dto.CalcResponse
// @Router /api/v1/learning/calculators/evaluate [post]
func (h *LearningHandler) Calculate(c *gin.Context) {
	var req dto.CalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request", utils.FormatValidationError(err))
		return
	}

	resp, err := h.learningService.Calculate(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
