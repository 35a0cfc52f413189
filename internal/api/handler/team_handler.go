package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
)

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Profiles
// @Summary Crew profiles with active task counts
// @Tags team
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.TeamProfilesResponse
// @Router /api/v1/team/profiles [get]
func (h *TeamHandler) Profiles(c *gin.Context) {
	resp, err := h.teamService.Profiles(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
