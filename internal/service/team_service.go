package service

import (
	"context"

	"go.uber.org/zap"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/pkg/logger"
	"sensor-ops/internal/repository"
)

type TeamService interface {
	Profiles(ctx context.Context) (*dto.TeamProfilesResponse, error)
}

type teamService struct {
	teamRepo repository.TeamRepository
	taskRepo repository.TaskRepository
}

func NewTeamService(teamRepo repository.TeamRepository, taskRepo repository.TaskRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		taskRepo: taskRepo,
	}
}

// Profiles joins Team_Profile with each member's active task count.
// The count degrades to zero with a warning when the task tab fails.
func (s *teamService) Profiles(ctx context.Context) (*dto.TeamProfilesResponse, error) {
	members, err := s.teamRepo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.TeamProfilesResponse{Members: make([]dto.TeamMemberProfile, 0, len(members))}

	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		logger.Warn("team profiles: task counts unavailable", zap.Error(err))
		resp.Warnings = append(resp.Warnings, "task counts unavailable: "+err.Error())
		tasks = nil
	}

	for _, member := range members {
		// The count is primary-assignee only; helper involvement does
		// not count toward a member's load here.
		active := 0
		for _, task := range tasks {
			if task.IsActive() && task.Assignee == member.Name {
				active++
			}
		}
		resp.Members = append(resp.Members, dto.TeamMemberProfile{
			Name:        member.Name,
			Role:        member.Role,
			Skill:       member.Skill,
			Phone:       member.Phone,
			Certificate: member.Certificate,
			ActiveTasks: active,
		})
	}
	return resp, nil
}
