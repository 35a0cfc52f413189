package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sensor-ops/internal/core/pmstatus"
	"sensor-ops/internal/dto"
	"sensor-ops/internal/pkg/logger"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/internal/repository"
	"sensor-ops/pkg/constants"
	pkgErrors "sensor-ops/pkg/responses"
)

type SiteService interface {
	ListNames(ctx context.Context) ([]string, error)
	Detail(ctx context.Context, siteName string) (*dto.SiteDetailResponse, error)
	PMPlanBoard(ctx context.Context) (*dto.PMPlanBoardResponse, error)
	SetPMStatus(ctx context.Context, req *dto.PMStatusUpdateRequest) error
}

type siteService struct {
	siteRepo   repository.SiteRepository
	pmRepo     repository.PMRepository
	taskRepo   repository.TaskRepository
	assetRepo  repository.AssetRepository
	writer     *sheets.Writer
	classifier *pmstatus.Classifier
	now        func() time.Time
}

func NewSiteService(
	siteRepo repository.SiteRepository,
	pmRepo repository.PMRepository,
	taskRepo repository.TaskRepository,
	assetRepo repository.AssetRepository,
	writer *sheets.Writer,
) SiteService {
	return &siteService{
		siteRepo:   siteRepo,
		pmRepo:     pmRepo,
		taskRepo:   taskRepo,
		assetRepo:  assetRepo,
		writer:     writer,
		classifier: pmstatus.NewClassifier(constants.ThaiMonths, constants.PMDoneMarker),
		now:        sheetNow,
	}
}

func (s *siteService) ListNames(ctx context.Context) ([]string, error) {
	return s.siteRepo.ListSiteNames(ctx)
}

// Detail builds the per-site drill-down. The PM_Plan entry is required;
// assets and task history degrade to warnings when their tabs fail.
func (s *siteService) Detail(ctx context.Context, siteName string) (*dto.SiteDetailResponse, error) {
	entry, err := s.pmRepo.GetEntry(ctx, siteName)
	if err != nil {
		return nil, err
	}

	resp := &dto.SiteDetailResponse{
		SiteName:  entry.SiteName,
		Completed: entry.Completion == constants.PMDoneMarker,
		Schedule:  []dto.ScheduleRow{},
		Assets:    []map[string]string{},
		IssueLog:  []dto.IssueEntry{},
	}
	for _, slot := range entry.ScheduledSlots() {
		resp.Schedule = append(resp.Schedule, dto.ScheduleRow{Label: slot.Label, Value: slot.Value})
	}
	if entry.HasSIMExpiry() {
		resp.SIMExpiry = entry.SIMExpiry
	}
	if entry.HasNote() {
		resp.IssueLog = append(resp.IssueLog, dto.IssueEntry{
			Detail: entry.Note,
			Source: "pm_plan",
		})
	}

	assets, err := s.assetRepo.ListBySite(ctx, siteName)
	if err != nil {
		logger.Warn("site detail: assets unavailable", zap.String("site", siteName), zap.Error(err))
		resp.Warnings = append(resp.Warnings, "assets unavailable: "+err.Error())
	} else {
		resp.Assets = assets
	}

	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		logger.Warn("site detail: task history unavailable", zap.String("site", siteName), zap.Error(err))
		resp.Warnings = append(resp.Warnings, "task history unavailable: "+err.Error())
	} else {
		for _, task := range tasks {
			if task.SiteName != siteName {
				continue
			}
			resp.IssueLog = append(resp.IssueLog, dto.IssueEntry{
				Date:   task.Scheduled,
				Detail: task.Detail,
				Status: task.Status,
				Source: "task",
			})
		}
	}

	return resp, nil
}

// PMPlanBoard returns every PM_Plan row with its classification, the
// all-sites planning screen.
func (s *siteService) PMPlanBoard(ctx context.Context) (*dto.PMPlanBoardResponse, error) {
	entries, err := s.pmRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	month := int(s.now().Month())
	resp := &dto.PMPlanBoardResponse{Rows: make([]dto.PMPlanBoardRow, 0, len(entries))}
	for _, entry := range entries {
		result := s.classifier.Classify(entry.Completion, entry.SlotValues(), month)
		row := dto.PMPlanBoardRow{
			SiteName:  entry.SiteName,
			Slots:     []dto.ScheduleRow{},
			Completed: entry.Completion == constants.PMDoneMarker,
			Status:    result.Tier.String(),
			Color:     result.Color,
			DueDate:   result.DueDate,
		}
		for _, slot := range entry.Slots {
			row.Slots = append(row.Slots, dto.ScheduleRow{Label: slot.Label, Value: slot.Value})
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

// SetPMStatus flips the completion marker through the write endpoint
// and drops the cache so the next read sees it.
func (s *siteService) SetPMStatus(ctx context.Context, req *dto.PMStatusUpdateRequest) error {
	if _, err := s.pmRepo.GetEntry(ctx, req.SiteName); err != nil {
		return err
	}

	status := ""
	if req.Done {
		status = constants.PMDoneMarker
	}
	if err := s.writer.UpdatePMStatus(ctx, req.SiteName, status); err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeWriteError, "failed to update pm status", err)
	}
	return nil
}
