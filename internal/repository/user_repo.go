package repository

import (
	"context"

	"sensor-ops/internal/model"
	"sensor-ops/pkg/constants"
)

// UserRepository reads the Users_DB tab.
type UserRepository interface {
	ListAccounts(ctx context.Context) ([]model.UserAccount, error)
}

type userRepository struct {
	loader TableLoader
}

func NewUserRepository(loader TableLoader) UserRepository {
	return &userRepository{loader: loader}
}

func (r *userRepository) ListAccounts(ctx context.Context) ([]model.UserAccount, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetUsersDB, 0)
	if err != nil {
		return nil, err
	}

	// Username and Password are hard requirements; Status and Role are
	// optional columns with defined defaults.
	if missing := table.MissingColumns(constants.ColUsername, constants.ColPassword); len(missing) > 0 {
		return nil, schemaError(constants.SheetUsersDB, missing, table)
	}

	accounts := make([]model.UserAccount, 0, len(table.Rows))
	for _, row := range table.Rows {
		username, ok := row.Get(constants.ColUsername)
		if !ok {
			continue
		}
		accounts = append(accounts, model.UserAccount{
			Username: username,
			Password: row.GetOr(constants.ColPassword, ""),
			Status:   row.GetOr(constants.ColStatus, ""),
			Role:     row.GetOr(constants.ColRole, ""),
		})
	}
	return accounts, nil
}
