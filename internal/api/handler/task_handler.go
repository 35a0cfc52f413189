package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
	"sensor-ops/pkg/utils"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// MyWorkload
// @Summary Tasks involving the caller, split by activity
// @Description Matches the primary assignee exactly and the helper list by substring
// @Tags workload
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MyWorkloadResponse
// @Router /api/v1/workload/my [get]
func (h *TaskHandler) MyWorkload(c *gin.Context) {
	resp, err := h.taskService.MyWorkload(c.Request.Context(), c.GetString("username"))
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// TeamWorkload
// @Summary Per-person active-task chart plus the filtered task table
// @Tags workload
// @Produce json
// @Security ApiKeyAuth
// @Param status query []string false "status filter" collectionFormat(multi)
// @Param person query string false "person filter"
// @Success 200 {object} dto.TeamWorkloadResponse
// @Router /api/v1/workload/team [get]
func (h *TaskHandler) TeamWorkload(c *gin.Context) {
	var query dto.TeamWorkloadQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid query", utils.FormatValidationError(err))
		return
	}

	resp, err := h.taskService.TeamWorkload(c.Request.Context(), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Create
// @Summary Append a task row to Task & Workload
// @Tags workload
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.TaskCreateRequest true "new task"
// @Success 200 {object} responses.Response
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request", utils.FormatValidationError(err))
		return
	}

	if err := h.taskService.Create(c.Request.Context(), &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "task recorded", nil)
}
