package repository

import (
	"context"

	"sensor-ops/internal/model"
	"sensor-ops/pkg/constants"
)

// TaskRepository reads the Task & Workload append-only log.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
}

type taskRepository struct {
	loader TableLoader
}

func NewTaskRepository(loader TableLoader) TaskRepository {
	return &taskRepository{loader: loader}
}

func (r *taskRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetTasks, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColTaskAssignee, constants.ColTaskHelpers); len(missing) > 0 {
		return nil, schemaError(constants.SheetTasks, missing, table)
	}

	tasks := make([]model.Task, 0, len(table.Rows))
	for _, row := range table.Rows {
		tasks = append(tasks, model.Task{
			Scheduled: row.GetOr(constants.ColTaskScheduled, constants.AbsentValue),
			SiteName:  row.GetOr(constants.ColSiteName, ""),
			Detail:    row.GetOr(constants.ColTaskDetail, constants.AbsentValue),
			Type:      row.GetOr(constants.ColTaskType, constants.AbsentValue),
			Status:    row.GetOr(constants.ColTaskStatus, ""),
			Assignee:  row.GetOr(constants.ColTaskAssignee, ""),
			Helpers:   row.GetOr(constants.ColTaskHelpers, ""),
		})
	}
	return tasks, nil
}
