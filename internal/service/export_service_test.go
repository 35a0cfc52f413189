package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sensor-ops/internal/model"
)

func TestPMStatusWorkbook(t *testing.T) {
	siteSvc := NewSiteService(
		&fakeSiteRepo{},
		&fakePMRepo{entries: []model.PMPlanEntry{
			pmEntry("Site A", "ม.ค.", ""),
			pmEntry("Site B", "", "PM แล้ว"),
		}},
		&fakeTaskRepo{},
		&fakeAssetRepo{},
		nil,
	)
	svc := NewExportService(siteSvc, nil)

	buf, err := svc.PMStatusWorkbook(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("PM Status")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Site", "Status", "Due", "Completed"}, rows[0])
	assert.Equal(t, "Site A", rows[1][0])
	assert.Equal(t, "yes", rows[2][3])
}

func TestStockWorkbook(t *testing.T) {
	toolsSvc := NewToolsService(&fakeEquipmentRepo{
		catalog: []model.EquipmentItem{{Name: "Multimeter", Total: 10}},
		txns:    []model.ToolTransaction{{Equipment: "Multimeter", Action: "Borrow", Quantity: 4, HasQuantity: true}},
	}, nil)
	svc := NewExportService(nil, toolsSvc)

	buf, err := svc.StockWorkbook(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Stock")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Multimeter", "10", "4", "6"}, rows[1])
}
