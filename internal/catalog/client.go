package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tidwall/gjson"
)

// DefaultEndpoint is the public temples API.
const DefaultEndpoint = "https://angkor-api.onrender.com/temples"

const (
	defaultUserAgent = "angkor/0.1"
	maxPayloadBytes  = 8 << 20
)

// Fetcher retrieves the temple collection. Implemented by *Client; tests
// substitute their own.
type Fetcher interface {
	FetchTemples(ctx context.Context) ([]Temple, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the temples HTTP API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	policy    *bluemonday.Policy
}

// NewClient builds a Client for endpoint. A zero timeout leaves the request
// bounded only by the caller's context.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint:  u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		policy:    bluemonday.StrictPolicy(),
	}, nil
}

// Endpoint returns the URL the client fetches from.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchTemples performs one GET against the endpoint and decodes the body as
// an array of temples. Every record must carry an id and a title.
func (c *Client) FetchTemples(ctx context.Context) ([]Temple, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("api %s returned status %d", c.endpoint.String(), resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if err := validatePayload(body); err != nil {
		return nil, err
	}

	var items []Temple
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	for i := range items {
		items[i] = c.sanitize(items[i])
	}
	return items, nil
}

// validatePayload checks the shape of the body before decoding so a payload
// with a missing id or title is rejected as a whole.
func validatePayload(body []byte) error {
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("decode response: invalid json")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return fmt.Errorf("invalid payload: expected array, got %s", root.Type)
	}
	var problem error
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			problem = fmt.Errorf("invalid payload: record %d is not an object", key.Int())
			return false
		}
		for _, field := range []string{"id", "title"} {
			if strings.TrimSpace(value.Get(field).String()) == "" {
				problem = fmt.Errorf("invalid payload: record %d missing %s", key.Int(), field)
				return false
			}
		}
		return true
	})
	return problem
}

func (c *Client) sanitize(t Temple) Temple {
	t.ID = strings.TrimSpace(t.ID)
	t.Title = c.clean(t.Title)
	t.Summary = c.clean(t.Summary)
	for i := range t.Descriptions {
		t.Descriptions[i].Label = c.clean(t.Descriptions[i].Label)
		t.Descriptions[i].Text = c.clean(t.Descriptions[i].Text)
	}
	for i := range t.Tags {
		t.Tags[i] = c.clean(t.Tags[i])
	}
	for i := range t.Images {
		t.Images[i].Role = strings.TrimSpace(t.Images[i].Role)
		t.Images[i].URL = strings.TrimSpace(t.Images[i].URL)
	}
	t.Location.Province = c.clean(t.Location.Province)
	t.Location.Country = c.clean(t.Location.Country)
	return t
}

// clean strips markup and unescapes the entities the policy leaves behind,
// yielding plain text for the terminal.
func (c *Client) clean(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(c.policy.Sanitize(value)))
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
