package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/config"
	"sensor-ops/internal/pkg/sheets"
)

type fakeAssetRepo struct {
	assets []map[string]string
	err    error
}

func (f *fakeAssetRepo) ListBySite(context.Context, string) ([]map[string]string, error) {
	return f.assets, f.err
}

func siteDetailFixture() model.PMPlanEntry {
	e := model.PMPlanEntry{
		SiteName:   "Site A",
		Completion: "",
		SIMExpiry:  "01/06/2025",
		Note:       "เสาสัญญาณหัก",
	}
	e.Slots[0] = model.ScheduleSlot{Label: "PM ใหญ่", Value: "ม.ค."}
	e.Slots[1] = model.ScheduleSlot{Label: "PM ย่อย ครั้งที่ 1", Value: "-"}
	e.Slots[2] = model.ScheduleSlot{Label: "PM ย่อย ครั้งที่ 2", Value: "พ.ค."}
	return e
}

func TestSiteDetailAssemblesTabs(t *testing.T) {
	svc := NewSiteService(
		&fakeSiteRepo{},
		&fakePMRepo{entries: []model.PMPlanEntry{siteDetailFixture()}},
		&fakeTaskRepo{tasks: []model.Task{
			{Scheduled: "01/02/2024", SiteName: "Site A", Detail: "เปลี่ยนแบต", Status: "Complete"},
			{Scheduled: "02/02/2024", SiteName: "Site B", Detail: "อื่น", Status: "Planning"},
		}},
		&fakeAssetRepo{assets: []map[string]string{{"Sensor": "Water level"}}},
		nil,
	)

	resp, err := svc.Detail(context.Background(), "Site A")
	require.NoError(t, err)

	assert.False(t, resp.Completed)
	require.Len(t, resp.Schedule, 2)
	assert.Equal(t, "ม.ค.", resp.Schedule[0].Value)
	assert.Equal(t, "01/06/2025", resp.SIMExpiry)

	require.Len(t, resp.Assets, 1)

	// The issue log is the PM note plus this site's task history only.
	require.Len(t, resp.IssueLog, 2)
	assert.Equal(t, "pm_plan", resp.IssueLog[0].Source)
	assert.Equal(t, "เสาสัญญาณหัก", resp.IssueLog[0].Detail)
	assert.Equal(t, "task", resp.IssueLog[1].Source)
	assert.Equal(t, "เปลี่ยนแบต", resp.IssueLog[1].Detail)
}

func TestSiteDetailDegradesSections(t *testing.T) {
	svc := NewSiteService(
		&fakeSiteRepo{},
		&fakePMRepo{entries: []model.PMPlanEntry{siteDetailFixture()}},
		&fakeTaskRepo{err: errors.New("sheet gone")},
		&fakeAssetRepo{err: errors.New("sheet gone")},
		nil,
	)

	resp, err := svc.Detail(context.Background(), "Site A")
	require.NoError(t, err)
	assert.Empty(t, resp.Assets)
	assert.Len(t, resp.Warnings, 2)
}

func TestSiteDetailUnknownSite(t *testing.T) {
	svc := NewSiteService(&fakeSiteRepo{}, &fakePMRepo{}, &fakeTaskRepo{}, &fakeAssetRepo{}, nil)

	_, err := svc.Detail(context.Background(), "Site Z")
	assert.Error(t, err)
}

func TestSetPMStatusWritesMarker(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	t.Cleanup(srv.Close)

	writer := sheets.NewWriter(&config.SheetsConfig{WriteEndpoint: srv.URL}, zap.NewNop(), nil)
	svc := NewSiteService(
		&fakeSiteRepo{},
		&fakePMRepo{entries: []model.PMPlanEntry{siteDetailFixture()}},
		&fakeTaskRepo{},
		&fakeAssetRepo{},
		writer,
	)

	err := svc.SetPMStatus(context.Background(), &dto.PMStatusUpdateRequest{SiteName: "Site A", Done: true})
	require.NoError(t, err)
	assert.Equal(t, "update_pm_status", got["action"])
	assert.Equal(t, "PM แล้ว", got["status"])

	err = svc.SetPMStatus(context.Background(), &dto.PMStatusUpdateRequest{SiteName: "Site A", Done: false})
	require.NoError(t, err)
	assert.Equal(t, "", got["status"])
}

func TestSetPMStatusUnknownSiteRejected(t *testing.T) {
	svc := NewSiteService(&fakeSiteRepo{}, &fakePMRepo{}, &fakeTaskRepo{}, &fakeAssetRepo{}, nil)

	err := svc.SetPMStatus(context.Background(), &dto.PMStatusUpdateRequest{SiteName: "Site Z", Done: true})
	assert.Error(t, err)
}
