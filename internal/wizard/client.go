package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/frahmantamala/recruitment-service/internal/application"
	"github.com/frahmantamala/recruitment-service/internal/competence"
)

// requestTimeout bounds every outgoing call; past it the call is treated
// as a network failure.
const requestTimeout = 10 * time.Second

// Client is the wizard's API client. Idempotent reads retry with
// exponential backoff; submissions are sent exactly once and the user must
// explicitly resubmit after a failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type successBody struct {
	Success json.RawMessage `json:"success"`
}

type errorBody struct {
	Error json.RawMessage `json:"error"`
}

func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	// cookie jar carries the session cookie between login and submit
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
		},
		logger: logger,
	}, nil
}

// Login authenticates and lets the jar capture the session cookie.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	_, err := c.post(ctx, "/auth/login", payload)
	return err
}

// GetCompetences loads the lookup set for step one, retrying transient
// failures since the read is idempotent.
func (c *Client) GetCompetences(ctx context.Context) ([]*competence.Competence, error) {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))

	var raw json.RawMessage
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		body, err := c.get(ctx, "/competences")
		if err != nil {
			c.logger.Warn("competence fetch failed, will retry", "error", err)
			return retry.RetryableError(err)
		}
		raw = body
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp competence.ListResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode competences: %w", err)
	}
	return resp.Competences, nil
}

// SubmitApplication sends the whole draft as one submission. It is never
// auto-retried: a retry is a new, independent request the user must make.
func (c *Client) SubmitApplication(ctx context.Context, dto application.SubmitDTO) (*application.SubmitResponse, error) {
	body, err := c.post(ctx, "/application/submit", dto)
	if err != nil {
		return nil, err
	}

	var resp application.SubmitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode submit response: %w", err)
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		if err := json.Unmarshal(data, &eb); err == nil && len(eb.Error) > 0 {
			return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(eb.Error))
		}
		return nil, fmt.Errorf("api error (status %d)", resp.StatusCode)
	}

	var sb successBody
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}
	return sb.Success, nil
}
