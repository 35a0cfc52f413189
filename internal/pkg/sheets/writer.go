package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"sensor-ops/internal/pkg/config"
	"sensor-ops/pkg/constants"
)

// Writer posts mutations to the external script endpoint that owns the
// spreadsheet. Appends and the PM status update are the only write
// shapes the endpoint supports.
type Writer struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
	invalidate func()
}

// appendPayload is the {sheet, data} append request.
type appendPayload struct {
	Sheet string   `json:"sheet"`
	Data  []string `json:"data"`
}

// pmStatusPayload is the single update-style write in the system.
type pmStatusPayload struct {
	Action   string `json:"action"`
	Sheet    string `json:"sheet"`
	SiteName string `json:"siteName"`
	Status   string `json:"status"`
}

type writeResult struct {
	Status string `json:"status"`
}

// NewWriter builds a writer. invalidate is called after every accepted
// write; wire it to Client.InvalidateAll.
func NewWriter(cfg *config.SheetsConfig, logger *zap.Logger, invalidate func()) *Writer {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Writer{
		endpoint:   cfg.WriteEndpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		invalidate: invalidate,
	}
}

// Append appends one row of field values to the named sheet.
func (w *Writer) Append(ctx context.Context, sheet string, values []string) error {
	return w.post(ctx, appendPayload{Sheet: sheet, Data: values})
}

// UpdatePMStatus sets or clears the PM completion marker for a site.
func (w *Writer) UpdatePMStatus(ctx context.Context, siteName, status string) error {
	return w.post(ctx, pmStatusPayload{
		Action:   "update_pm_status",
		Sheet:    constants.SheetPMPlan,
		SiteName: siteName,
		Status:   status,
	})
}

func (w *Writer) post(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode write payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build write request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post write: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("write endpoint returned %s", resp.Status)
	}

	// The endpoint is expected to answer {"status":"success"}, but an
	// unparseable body must not fail the caller.
	var result writeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		w.logger.Warn("write endpoint response not parseable, treating as accepted",
			zap.Error(err))
	} else if result.Status != "success" {
		w.logger.Warn("write endpoint reported non-success status",
			zap.String("status", result.Status))
	}

	if w.invalidate != nil {
		w.invalidate()
	}

	return nil
}
