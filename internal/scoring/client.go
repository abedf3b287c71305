// Package scoring is the HTTP client for the FairPayCheck assessment
// service. The scoring algorithm itself is opaque to this program; the
// client just ships typed form values and parses the verdict.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CalculatePath is the scoring endpoint, relative to the service base URL.
const CalculatePath = "/api/calculate/"

// DefaultBaseURL points at the hosted service.
const DefaultBaseURL = "https://fairpaycheck.app"

const contentType = "application/json"

// ErrService is returned for any failure the user can only retry: transport
// errors, non-success statuses, and malformed bodies. The UI shows one
// generic notice for all of them and keeps the form state intact.
var ErrService = errors.New("scoring service unavailable")

// Client calls the scoring API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string

	logger *zap.Logger
}

// New creates a scoring client. An empty baseURL selects the hosted service.
func New(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		UserAgent:  "fairpay-cli",
		logger:     logger,
	}
}

// Calculate submits the profile and returns the parsed assessment. Any
// transport failure, non-2xx status, or error-bearing body comes back
// wrapped in ErrService.
func (c *Client) Calculate(ctx context.Context, request Request) (*Result, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := c.BaseURL + CalculatePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.UserAgent)

	c.logger.Debug("submitting assessment",
		zap.String("url", url),
		zap.String("country", request.Country),
		zap.Bool("has_salary", request.Salary != nil),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrService, err)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Debug("malformed response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("%w: bad status: %s", ErrService, resp.Status)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("bad status", zap.Int("status", resp.StatusCode), zap.String("error", result.Error))
		return nil, fmt.Errorf("%w: bad status: %s", ErrService, resp.Status)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrService, result.Error)
	}

	c.logger.Debug("got assessment",
		zap.Int("score", result.Score),
		zap.String("verdict", result.VerdictCode),
		zap.String("confidence", result.Confidence),
	)
	return &result, nil
}
