// Package notify implements the best-effort push-notification client.
// Delivery failures are logged and swallowed; a notification never blocks or
// fails a lifecycle transition.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"assistance/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

var _ ports.Notifier = (*Client)(nil)

// Client posts notifications to the push service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a push client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.With(slog.String("component", "push-notifier")),
	}
}

// pushRequest is the POST /notifications body.
type pushRequest struct {
	RecipientID string `json:"recipientId"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

// Notify delivers a push notification, fire and forget.
func (c *Client) Notify(ctx context.Context, recipientID string, title, body string) {
	payload, err := json.Marshal(pushRequest{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "notification dropped",
			slog.String("recipient_id", recipientID),
			slog.Any("error", err),
		)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notifications", bytes.NewReader(payload))
	if err != nil {
		c.logger.WarnContext(ctx, "notification dropped",
			slog.String("recipient_id", recipientID),
			slog.Any("error", err),
		)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "notification delivery failed",
			slog.String("recipient_id", recipientID),
			slog.Any("error", err),
		)
		return
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnContext(ctx, "notification delivery failed",
			slog.String("recipient_id", recipientID),
			slog.Int("status", resp.StatusCode),
		)
	}
}
