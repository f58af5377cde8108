package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/liftcycle/internal/models"
	"github.com/claude/liftcycle/internal/program"
	"github.com/claude/liftcycle/internal/progress"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the liftcycle REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// cycles live on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("httpclient: %s: %s: %w", path, apiError(data), models.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("httpclient: %s: %s: %w", path, apiError(data), models.ErrInvalidInput)
	default:
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

// apiError extracts the server's {"error": "..."} message, falling back to the raw body.
func apiError(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}

func (c *HTTPClient) ListTemplates(ctx context.Context) ([]program.Template, error) {
	var templates []program.Template
	if err := c.do(ctx, http.MethodGet, "/api/v1/templates", nil, nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *HTTPClient) PreviewProgram(ctx context.Context, templateID string, tm *models.TrainingMaxes) ([]models.TrainingDay, error) {
	body := map[string]any{}
	if tm != nil {
		body["training_maxes"] = tm
	}
	var days []models.TrainingDay
	path := "/api/v1/templates/" + url.PathEscape(templateID) + "/preview"
	if err := c.do(ctx, http.MethodPost, path, nil, body, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *HTTPClient) ListCycles(ctx context.Context) ([]CycleSummary, error) {
	var cycles []models.Cycle
	if err := c.do(ctx, http.MethodGet, "/api/v1/cycles", nil, nil, &cycles); err != nil {
		return nil, err
	}
	out := make([]CycleSummary, 0, len(cycles))
	for i := range cycles {
		out = append(out, summarize(&cycles[i]))
	}
	return out, nil
}

func (c *HTTPClient) GetCycle(ctx context.Context, id uuid.UUID) (*models.Cycle, error) {
	var cycle models.Cycle
	if err := c.do(ctx, http.MethodGet, "/api/v1/cycles/"+id.String(), nil, nil, &cycle); err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (c *HTTPClient) OneRepMaxHistory(ctx context.Context, lift string) (*progress.Summary, error) {
	params := url.Values{}
	params.Set("lift", lift)
	var summary progress.Summary
	if err := c.do(ctx, http.MethodGet, "/api/v1/progress/one-rep-max", params, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
