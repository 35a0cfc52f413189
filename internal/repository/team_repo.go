package repository

import (
	"context"
	"strings"

	"sensor-ops/internal/model"
	"sensor-ops/pkg/constants"
)

// TeamRepository reads the Team_Profile tab.
type TeamRepository interface {
	ListMembers(ctx context.Context) ([]model.TeamMember, error)
}

type teamRepository struct {
	loader TableLoader
}

func NewTeamRepository(loader TableLoader) TeamRepository {
	return &teamRepository{loader: loader}
}

func (r *teamRepository) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetTeamProfile, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColMemberName); len(missing) > 0 {
		return nil, schemaError(constants.SheetTeamProfile, missing, table)
	}

	members := make([]model.TeamMember, 0, len(table.Rows))
	for _, row := range table.Rows {
		name, ok := row.Get(constants.ColMemberName)
		if !ok || strings.EqualFold(name, "nan") {
			continue
		}
		members = append(members, model.TeamMember{
			Name:        name,
			Role:        row.GetOr(constants.ColMemberRole, constants.AbsentValue),
			Skill:       row.GetOr(constants.ColMemberSkill, constants.AbsentValue),
			Phone:       row.GetOr(constants.ColMemberPhone, constants.AbsentValue),
			Certificate: row.GetOr(constants.ColMemberCert, constants.AbsentValue),
		})
	}
	return members, nil
}
