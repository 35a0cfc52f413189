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

type fakeEquipmentRepo struct {
	catalog []model.EquipmentItem
	txns    []model.ToolTransaction
	catErr  error
	txnErr  error
}

func (f *fakeEquipmentRepo) ListCatalog(context.Context) ([]model.EquipmentItem, error) {
	return f.catalog, f.catErr
}

func (f *fakeEquipmentRepo) ListTransactions(context.Context) ([]model.ToolTransaction, error) {
	return f.txns, f.txnErr
}

func TestStockReplaysLog(t *testing.T) {
	svc := NewToolsService(&fakeEquipmentRepo{
		catalog: []model.EquipmentItem{
			{Name: "Multimeter", Total: 10},
			{Name: "Drill", Total: 2},
		},
		txns: []model.ToolTransaction{
			{Equipment: "Multimeter", Action: "ยืม", Quantity: 3, HasQuantity: true},
			{Equipment: "Multimeter", Action: "คืน", Quantity: 1, HasQuantity: true},
			{Equipment: "Ghost", Action: "Borrow", Quantity: 5, HasQuantity: true},
		},
	}, nil)

	resp, err := svc.Stock(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.Equal(t, dto.StockItem{Name: "Multimeter", Total: 10, Borrowed: 2, Remaining: 8}, resp.Items[0])
	assert.Equal(t, dto.StockItem{Name: "Drill", Total: 2, Borrowed: 0, Remaining: 2}, resp.Items[1])
	assert.Empty(t, resp.Warnings)
}

func TestStockZeroQuantityRowIsNoOp(t *testing.T) {
	svc := NewToolsService(&fakeEquipmentRepo{
		catalog: []model.EquipmentItem{{Name: "Drill", Total: 10}},
		txns: []model.ToolTransaction{
			{Equipment: "Drill", Action: "ยืมอุปกรณ์ (Borrow)", Quantity: 0, HasQuantity: true},
		},
	}, nil)

	resp, err := svc.Stock(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 0.0, resp.Items[0].Borrowed)
	assert.Equal(t, 10, resp.Items[0].Remaining)
}

func TestStockDegradesWithoutLog(t *testing.T) {
	svc := NewToolsService(&fakeEquipmentRepo{
		catalog: []model.EquipmentItem{{Name: "Multimeter", Total: 10}},
		txnErr:  errors.New("sheet gone"),
	}, nil)

	resp, err := svc.Stock(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 10, resp.Items[0].Remaining)
	assert.Len(t, resp.Warnings, 1)
}

func TestHistoryNewestFirst(t *testing.T) {
	svc := NewToolsService(&fakeEquipmentRepo{
		txns: []model.ToolTransaction{
			{Timestamp: "2024-01-01 10:00:00", Equipment: "Multimeter"},
			{Timestamp: "2024-01-02 11:00:00", Equipment: "Drill"},
		},
	}, nil)

	resp, err := svc.History(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "Drill", resp.Entries[0].Equipment)
	assert.Equal(t, "Multimeter", resp.Entries[1].Equipment)
}

func TestRecordTransactionOneRowPerItem(t *testing.T) {
	var rows [][]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &got))
		rows = append(rows, got["data"].([]interface{}))
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	t.Cleanup(srv.Close)

	writer := sheets.NewWriter(&config.SheetsConfig{WriteEndpoint: srv.URL}, zap.NewNop(), nil)
	svc := NewToolsService(&fakeEquipmentRepo{}, writer)

	resp, err := svc.RecordTransaction(context.Background(), &dto.ToolTransactionRequest{
		Borrower: "Heart",
		SiteUsed: "Site A",
		Action:   "Borrow",
		Items: []dto.ToolTransactionItem{
			{Equipment: "Multimeter", Quantity: 2},
			{Equipment: "Drill", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Requested)
	assert.Equal(t, 2, resp.Accepted)
	require.Len(t, rows, 2)
	assert.Equal(t, "Multimeter", rows[0][2])
	assert.Equal(t, "2", rows[0][5])
	assert.Equal(t, "Drill", rows[1][2])
}

func TestRecordTransactionPartialFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	t.Cleanup(srv.Close)

	writer := sheets.NewWriter(&config.SheetsConfig{WriteEndpoint: srv.URL}, zap.NewNop(), nil)
	svc := NewToolsService(&fakeEquipmentRepo{}, writer)

	resp, err := svc.RecordTransaction(context.Background(), &dto.ToolTransactionRequest{
		Borrower: "Heart",
		Action:   "Return",
		Items: []dto.ToolTransactionItem{
			{Equipment: "Multimeter", Quantity: 1},
			{Equipment: "Drill", Quantity: 1},
			{Equipment: "Ladder", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Requested)
	assert.Equal(t, 1, resp.Accepted)
}

func TestRecordTransactionFirstWriteFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	writer := sheets.NewWriter(&config.SheetsConfig{WriteEndpoint: srv.URL}, zap.NewNop(), nil)
	svc := NewToolsService(&fakeEquipmentRepo{}, writer)

	_, err := svc.RecordTransaction(context.Background(), &dto.ToolTransactionRequest{
		Borrower: "Heart",
		Action:   "Borrow",
		Items:    []dto.ToolTransactionItem{{Equipment: "Multimeter", Quantity: 1}},
	})
	assert.Error(t, err)
}
