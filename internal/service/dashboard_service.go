package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"sensor-ops/internal/core/pmstatus"
	"sensor-ops/internal/dto"
	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/logger"
	"sensor-ops/internal/repository"
	"sensor-ops/pkg/constants"

	"go.uber.org/zap"
)

// pinColorUnknown is used for map pins of sites without a PM_Plan row.
const pinColorUnknown = "gray"

type DashboardService interface {
	Overview(ctx context.Context, filter string) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	siteRepo   repository.SiteRepository
	pmRepo     repository.PMRepository
	taskRepo   repository.TaskRepository
	classifier *pmstatus.Classifier
	now        func() time.Time
}

func NewDashboardService(
	siteRepo repository.SiteRepository,
	pmRepo repository.PMRepository,
	taskRepo repository.TaskRepository,
) DashboardService {
	return &dashboardService{
		siteRepo:   siteRepo,
		pmRepo:     pmRepo,
		taskRepo:   taskRepo,
		classifier: pmstatus.NewClassifier(constants.ThaiMonths, constants.PMDoneMarker),
		now:        sheetNow,
	}
}

// Overview assembles the landing view. Each section is fetched on its
// own; a failed fetch empties that section and records a warning so the
// rest of the dashboard still renders.
func (s *dashboardService) Overview(ctx context.Context, filter string) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{
		PMStatus: []dto.PMStatusRow{},
		Sites:    []string{},
		MapPins:  []dto.MapPin{},
	}
	resp.KPI.CurrentMonth = constants.ThaiMonthName(int(s.now().Month()))

	sites, err := s.siteRepo.ListSites(ctx)
	if err != nil {
		logger.Warn("dashboard: site list unavailable", zap.Error(err))
		resp.Warnings = append(resp.Warnings, "site list unavailable: "+err.Error())
	} else {
		resp.KPI.SiteCount = len(sites)
		resp.Sites = lo.Map(sites, func(site model.Site, _ int) string { return site.Name })
	}

	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		logger.Warn("dashboard: task list unavailable", zap.Error(err))
		resp.Warnings = append(resp.Warnings, "task list unavailable: "+err.Error())
	} else {
		resp.KPI.ActiveTaskCount = lo.CountBy(tasks, func(t model.Task) bool { return t.IsActive() })
	}

	statusBySite := map[string]pmstatus.Result{}
	entries, err := s.pmRepo.ListEntries(ctx)
	if err != nil {
		logger.Warn("dashboard: pm plan unavailable", zap.Error(err))
		resp.Warnings = append(resp.Warnings, "pm plan unavailable: "+err.Error())
	} else {
		month := int(s.now().Month())
		for _, entry := range entries {
			result := s.classifier.Classify(entry.Completion, entry.SlotValues(), month)
			statusBySite[entry.SiteName] = result
			if !matchesFilter(result.Tier, filter) {
				continue
			}
			resp.PMStatus = append(resp.PMStatus, dto.PMStatusRow{
				SiteName: entry.SiteName,
				Status:   result.Tier.String(),
				Color:    result.Color,
				DueDate:  result.DueDate,
			})
		}
	}

	for _, site := range sites {
		if !site.HasCoordinates() {
			continue
		}
		color := pinColorUnknown
		if result, ok := statusBySite[site.Name]; ok {
			color = result.Color
		}
		resp.MapPins = append(resp.MapPins, dto.MapPin{
			SiteName:  site.Name,
			Latitude:  *site.Latitude,
			Longitude: *site.Longitude,
			Color:     color,
		})
	}

	return resp, nil
}

func matchesFilter(tier pmstatus.Tier, filter string) bool {
	switch filter {
	case "", "all":
		return true
	case "overdue":
		return tier == pmstatus.TierOverdue
	case "due_this_month":
		return tier == pmstatus.TierDueThisMonth
	case "due_next_month":
		return tier == pmstatus.TierDueNextMonth
	case "ok":
		return tier == pmstatus.TierOkOrDone
	default:
		return true
	}
}

// sheetNow is the service clock pinned to the spreadsheet's timezone.
func sheetNow() time.Time {
	return time.Now().UTC().Add(constants.SheetUTCOffsetHours * time.Hour)
}
