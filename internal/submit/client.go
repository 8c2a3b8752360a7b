// Package submit delivers the extracted order records to the remote
// aggregation endpoint as one JSON envelope per batch.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/johnnybahia/marcasceara/internal/entity"
)

// Envelope is the aggregation endpoint's request body.
type Envelope struct {
	Pedidos []entity.OrderRecord `json:"pedidos"`
}

// Client posts order batches to the aggregation endpoint.
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Send validates and posts the records. The whole batch goes in one request;
// a non-2xx response is an error and the caller keeps the source files
// unarchived for the next run.
func (c *Client) Send(ctx context.Context, records []entity.OrderRecord) error {
	reqID := uuid.New().String()
	start := time.Now()

	body, err := json.Marshal(Envelope{Pedidos: records})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := ValidatePayload(body); err != nil {
		c.logger.Error("submit.payload_rejected", "req_id", reqID, "error", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("submit.request", "req_id", reqID, "records", len(records), "bytes", len(body))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("submit.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("post batch: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("submit.body_close_error", "req_id", reqID, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Info("submit.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("aggregation endpoint returned %d: %s", resp.StatusCode, raw)
	}
	return nil
}
