package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/foodlink-la/foodlink"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Interface compliance check.
var _ foodlink.Backend = (*Client)(nil)

// Client implements [foodlink.Backend] over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the backend base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client. Timeouts are the HTTP client's
// concern; the zero http.Client never times out.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request and response logging.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new [Client] with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the backend address requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// SendChat posts one chat turn to the backend agent. An empty agent type is
// sent as "recipient".
func (c *Client) SendChat(ctx context.Context, req foodlink.ChatRequest) (foodlink.ChatReply, error) {
	agent := req.Agent
	if agent == "" {
		agent = foodlink.AgentRecipient
	}
	body := chatRequest{
		SessionID: req.SessionID,
		Message:   req.Message,
		AgentType: string(agent),
	}
	if req.Location != "" {
		body.Location = &req.Location
	}

	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, chatPath, nil, body, &resp); err != nil {
		return foodlink.ChatReply{}, err
	}
	return foodlink.ChatReply{
		Response:      resp.Response,
		Resources:     resp.Resources,
		Organizations: resp.Organizations,
	}, nil
}

// Resources lists food resources matching filter. Zero-valued filter fields
// take the contract defaults.
func (c *Client) Resources(ctx context.Context, filter foodlink.ResourceFilter) ([]foodlink.Resource, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	var resources []foodlink.Resource
	if err := c.do(ctx, http.MethodGet, resourcesPath, resourceQuery(filter), nil, &resources); err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []foodlink.Resource{}
	}
	return resources, nil
}

// Resource fetches a single resource. A missing id yields an error wrapping
// [foodlink.ErrNotFound].
func (c *Client) Resource(ctx context.Context, id string) (foodlink.Resource, error) {
	if strings.TrimSpace(id) == "" {
		return foodlink.Resource{}, fmt.Errorf("api: resource id is required: %w", foodlink.ErrValidation)
	}
	var r foodlink.Resource
	if err := c.do(ctx, http.MethodGet, resourcesPath+"/"+url.PathEscape(id), nil, nil, &r); err != nil {
		return foodlink.Resource{}, err
	}
	return r, nil
}

// Health returns the backend's diagnostic payload.
func (c *Client) Health(ctx context.Context) (foodlink.HealthStatus, error) {
	var status foodlink.HealthStatus
	if err := c.do(ctx, http.MethodGet, healthPath, nil, nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}

// resourceQuery encodes filter as query parameters. Absent fields are
// omitted rather than sent empty; coordinates win over location text.
func resourceQuery(filter foodlink.ResourceFilter) url.Values {
	f := filter.WithDefaults()
	q := url.Values{}
	q.Set("max_distance_miles", formatFloat(f.MaxDistanceMiles))
	q.Set("open_now", strconv.FormatBool(f.OpenNow))
	q.Set("limit", strconv.Itoa(f.Limit))
	switch {
	case f.Coordinates != nil:
		q.Set("lat", formatCoordinate(f.Coordinates.Lat))
		q.Set("lon", formatCoordinate(f.Coordinates.Lon))
	case f.LocationText != "":
		q.Set("location_text", f.LocationText)
	}
	if len(f.DietaryNeeds) > 0 {
		q.Set("dietary_needs", strings.Join(f.DietaryNeeds, ","))
	}
	return q
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCoordinate always keeps a decimal point so whole-degree values read
// as coordinates ("34.0", not "34").
func formatCoordinate(v float64) string {
	s := formatFloat(v)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)

	logger := c.logger.With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()
	logger.Debug().Msg("api request")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error().Err(err).Msg("api request failed")
		return fmt.Errorf("api: %s %s: %w: %w", method, path, foodlink.ErrNetwork, err)
	}
	defer resp.Body.Close()

	logger = logger.With().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Logger()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := parseHTTPError(method, path, resp)
		logger.Error().Err(err).Msg("api response error")
		return err
	}
	logger.Debug().Msg("api response")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error().Err(err).Msg("api response decode failed")
		return fmt.Errorf("api: decode %s response: %w", path, err)
	}
	return nil
}

func parseHTTPError(method, path string, resp *http.Response) error {
	sentinel := foodlink.ErrNetwork
	if resp.StatusCode == http.StatusNotFound {
		sentinel = fmt.Errorf("%w: %w", foodlink.ErrNotFound, foodlink.ErrNetwork)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("api: %s %s: HTTP %d (failed to read body: %v): %w", method, path, resp.StatusCode, err, sentinel)
	}
	msg := strings.TrimSpace(string(body))
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if m := apiErr.message(); m != "" {
			msg = m
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("api: %s %s: HTTP %d: %s: %w", method, path, resp.StatusCode, msg, sentinel)
}
