package publish

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
)

// HTTPDestination posts report artifacts to a results endpoint.
type HTTPDestination struct {
	httpc  *resty.Client
	url    string
	logger hclog.Logger
}

// NewHTTPDestination creates a client for the results endpoint. The
// token, when set, is sent as a Token authorization header.
func NewHTTPDestination(url, token string, logger hclog.Logger) *HTTPDestination {
	httpc := resty.New()
	httpc.SetBaseURL(url)
	if token != "" {
		httpc.SetHeader("Authorization", fmt.Sprintf("Token %s", token))
	}

	return &HTTPDestination{
		httpc:  httpc,
		url:    url,
		logger: logger,
	}
}

// Post sends the report file as a JSON body to the endpoint.
func (d *HTTPDestination) Post(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read report file %q: %w", path, err)
	}

	resp, err := d.httpc.R().
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post("")
	if err != nil {
		return fmt.Errorf("failed to post report to %q: %w", d.url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("results endpoint %q returned status %d", d.url, resp.StatusCode())
	}

	d.logger.Info("posted report", "url", d.url, "status", resp.StatusCode())
	return nil
}
