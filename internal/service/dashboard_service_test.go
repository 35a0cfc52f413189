package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/sheets"
)

type fakeSiteRepo struct {
	sites []model.Site
	err   error
}

func (f *fakeSiteRepo) ListSites(context.Context) ([]model.Site, error) {
	return f.sites, f.err
}

func (f *fakeSiteRepo) ListSiteNames(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.sites))
	for _, s := range f.sites {
		names = append(names, s.Name)
	}
	return names, nil
}

type fakePMRepo struct {
	entries []model.PMPlanEntry
	err     error
}

func (f *fakePMRepo) ListEntries(context.Context) ([]model.PMPlanEntry, error) {
	return f.entries, f.err
}

func (f *fakePMRepo) GetEntry(_ context.Context, siteName string) (*model.PMPlanEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.entries {
		if f.entries[i].SiteName == siteName {
			return &f.entries[i], nil
		}
	}
	return nil, errors.New("site not found")
}

func (f *fakePMRepo) RawTable(context.Context) (*sheets.Table, error) {
	return nil, errors.New("not implemented")
}

func coord(v float64) *float64 { return &v }

func pmEntry(site, major, completion string) model.PMPlanEntry {
	e := model.PMPlanEntry{SiteName: site, Completion: completion}
	e.Slots[0] = model.ScheduleSlot{Label: "PM ใหญ่", Value: major}
	return e
}

func newDashboardFixture(siteRepo *fakeSiteRepo, pmRepo *fakePMRepo, taskRepo *fakeTaskRepo) *dashboardService {
	svc := NewDashboardService(siteRepo, pmRepo, taskRepo).(*dashboardService)
	// Pin the clock to March so month arithmetic is stable.
	svc.now = func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestOverviewAssemblesSections(t *testing.T) {
	svc := newDashboardFixture(
		&fakeSiteRepo{sites: []model.Site{
			{Name: "Site A", Latitude: coord(13.75), Longitude: coord(100.5)},
			{Name: "Site B", Latitude: coord(18.79), Longitude: coord(98.98)},
			{Name: "Site C"},
		}},
		&fakePMRepo{entries: []model.PMPlanEntry{
			pmEntry("Site A", "ม.ค.", ""),  // overdue in March
			pmEntry("Site B", "มี.ค.", ""), // due this month
		}},
		&fakeTaskRepo{tasks: []model.Task{
			{Status: "In progress", Assignee: "Heart"},
			{Status: "Complete", Assignee: "Suda"},
		}},
	)

	resp, err := svc.Overview(context.Background(), "all")
	require.NoError(t, err)

	assert.Equal(t, 3, resp.KPI.SiteCount)
	assert.Equal(t, 1, resp.KPI.ActiveTaskCount)
	assert.Equal(t, "มี.ค.", resp.KPI.CurrentMonth)
	assert.Empty(t, resp.Warnings)

	require.Len(t, resp.PMStatus, 2)
	assert.Equal(t, "red", resp.PMStatus[0].Color)
	assert.Equal(t, "orange", resp.PMStatus[1].Color)

	// Site C has no coordinates and gets no pin; pins of sites outside
	// PM_Plan fall back to gray.
	require.Len(t, resp.MapPins, 2)
	assert.Equal(t, "red", resp.MapPins[0].Color)
	assert.Equal(t, "orange", resp.MapPins[1].Color)
}

func TestOverviewPinGrayWithoutPlanEntry(t *testing.T) {
	svc := newDashboardFixture(
		&fakeSiteRepo{sites: []model.Site{
			{Name: "Site X", Latitude: coord(1), Longitude: coord(2)},
		}},
		&fakePMRepo{},
		&fakeTaskRepo{},
	)

	resp, err := svc.Overview(context.Background(), "all")
	require.NoError(t, err)
	require.Len(t, resp.MapPins, 1)
	assert.Equal(t, "gray", resp.MapPins[0].Color)
}

func TestOverviewTierFilter(t *testing.T) {
	svc := newDashboardFixture(
		&fakeSiteRepo{},
		&fakePMRepo{entries: []model.PMPlanEntry{
			pmEntry("Site A", "ม.ค.", ""),
			pmEntry("Site B", "มี.ค.", ""),
			pmEntry("Site C", "เม.ย.", ""),
			pmEntry("Site D", "", "PM แล้ว"),
		}},
		&fakeTaskRepo{},
	)

	for filter, want := range map[string]string{
		"overdue":        "Site A",
		"due_this_month": "Site B",
		"due_next_month": "Site C",
		"ok":             "Site D",
	} {
		resp, err := svc.Overview(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, resp.PMStatus, 1, "filter %q", filter)
		assert.Equal(t, want, resp.PMStatus[0].SiteName, "filter %q", filter)
	}
}

func TestOverviewDegradesPerSection(t *testing.T) {
	svc := newDashboardFixture(
		&fakeSiteRepo{err: errors.New("sheet gone")},
		&fakePMRepo{entries: []model.PMPlanEntry{pmEntry("Site A", "มี.ค.", "")}},
		&fakeTaskRepo{err: errors.New("sheet gone")},
	)

	resp, err := svc.Overview(context.Background(), "all")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.KPI.SiteCount)
	assert.Empty(t, resp.Sites)
	assert.Len(t, resp.Warnings, 2)
	// The PM board still renders from its own tab.
	require.Len(t, resp.PMStatus, 1)
}
