package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/internal/repository"
	"sensor-ops/pkg/constants"
	pkgErrors "sensor-ops/pkg/responses"
)

type TaskService interface {
	MyWorkload(ctx context.Context, username string) (*dto.MyWorkloadResponse, error)
	TeamWorkload(ctx context.Context, query *dto.TeamWorkloadQuery) (*dto.TeamWorkloadResponse, error)
	Create(ctx context.Context, req *dto.TaskCreateRequest) error
}

type taskService struct {
	taskRepo repository.TaskRepository
	writer   *sheets.Writer
	now      func() time.Time
}

func NewTaskService(taskRepo repository.TaskRepository, writer *sheets.Writer) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		writer:   writer,
		now:      sheetNow,
	}
}

// MyWorkload lists the tasks that involve the caller, either as the
// primary assignee or anywhere in the helper list.
func (s *taskService) MyWorkload(ctx context.Context, username string) (*dto.MyWorkloadResponse, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.MyWorkloadResponse{
		Active: []dto.TaskRow{},
		Done:   []dto.TaskRow{},
	}
	for _, task := range tasks {
		if !task.Involves(username) {
			continue
		}
		row := taskRow(task)
		if task.IsActive() {
			resp.Active = append(resp.Active, row)
		} else {
			resp.Done = append(resp.Done, row)
		}
	}
	return resp, nil
}

// TeamWorkload builds the per-person chart and the filtered task table.
// Chart counts cover primary assignees only, Complete excluded.
func (s *taskService) TeamWorkload(ctx context.Context, query *dto.TeamWorkloadQuery) (*dto.TeamWorkloadResponse, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	active := lo.Filter(tasks, func(t model.Task, _ int) bool {
		return t.IsActive() && t.Assignee != ""
	})
	countByPerson := lo.CountValuesBy(active, func(t model.Task) string { return t.Assignee })
	persons := lo.Keys(countByPerson)
	sort.Strings(persons)

	resp := &dto.TeamWorkloadResponse{
		Counts: make([]dto.PersonTaskCount, 0, len(persons)),
		Tasks:  []dto.TaskRow{},
	}
	for _, person := range persons {
		resp.Counts = append(resp.Counts, dto.PersonTaskCount{Person: person, Count: countByPerson[person]})
	}

	statusSet := map[string]struct{}{}
	for _, status := range query.Status {
		statusSet[status] = struct{}{}
	}
	for _, task := range tasks {
		if len(statusSet) > 0 {
			if _, ok := statusSet[task.Status]; !ok {
				continue
			}
		}
		if query.Person != "" && !task.Involves(query.Person) {
			continue
		}
		resp.Tasks = append(resp.Tasks, taskRow(task))
	}
	return resp, nil
}

// Create appends one row to Task & Workload. The timestamp column is
// stamped server-side in the sheet's timezone.
func (s *taskService) Create(ctx context.Context, req *dto.TaskCreateRequest) error {
	if !constants.IsValidTaskStatus(req.Status) {
		return pkgErrors.New(pkgErrors.CodeValidationError, "unknown task status: "+req.Status)
	}

	row := []string{
		s.now().Format(constants.SheetTimestampLayout),
		req.SiteName,
		req.Detail,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Status,
		req.Assignee,
		strings.Join(req.Helpers, ", "),
	}
	if err := s.writer.Append(ctx, constants.SheetTasks, row); err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeWriteError, "failed to append task", err)
	}
	return nil
}

func taskRow(t model.Task) dto.TaskRow {
	return dto.TaskRow{
		Scheduled: t.Scheduled,
		SiteName:  t.SiteName,
		Detail:    t.Detail,
		Type:      t.Type,
		Status:    t.Status,
		Assignee:  t.Assignee,
		Helpers:   t.Helpers,
	}
}
