package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client pushes farm reports to an external endpoint.
type Client interface {
	SendReport(ctx context.Context, report Report) error
}

// Report is the payload delivered to the webhook.
type Report struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// WebhookClient is a resty-backed implementation of Client posting reports
// to a configured HTTP endpoint.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookClient builds a webhook notifier for the given URL.
func NewWebhookClient(url string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        url,
	}
}

type webhookError struct {
	Error string `json:"error"`
}

// SendReport posts the report and treats any non-2xx response as an error.
func (c *WebhookClient) SendReport(ctx context.Context, report Report) error {
	apiErr := new(webhookError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(report).
		SetError(apiErr).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send report webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error
		if message == "" {
			message = resp.Status()
		}
		return fmt.Errorf("report webhook error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}
