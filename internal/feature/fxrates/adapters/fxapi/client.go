package fxapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fx_dashboard/internal/feature/fxrates/adapters/fxapi/dto"
	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/usecase"
	"fx_dashboard/internal/shared/ratelimiter"
)

// ErrPairRequired is returned before any request when the pair is empty.
var ErrPairRequired = errors.New("pair is required")

// StatusError reports a non-2xx answer from the FX API.
type StatusError struct {
	Endpoint   string // "History" or "Predict"
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: %d", e.Endpoint, e.StatusCode)
}

// Limiter delays a request until the upstream quota allows it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Client fetches history and prediction series from the FX API.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
}

var _ usecase.RateSource = (*Client)(nil)

// NewClient returns a Client using the given HTTP client for transport.
func NewClient(cfg Config, client *http.Client) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{cfg: cfg, client: client}
	if cfg.RateLimit > 0 {
		c.limiter = ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute)
	}
	return c
}

// History calls GET /api/history for pair between start and end inclusive.
func (c *Client) History(ctx context.Context, pair entity.Pair, start, end string) ([]entity.RawPoint, error) {
	if pair == "" {
		return nil, ErrPairRequired
	}
	q := url.Values{}
	q.Set("pair", string(pair))
	q.Set("start", start)
	q.Set("end", end)

	var body dto.HistoryResponse
	if err := c.get(ctx, "History", "/api/history", q, &body); err != nil {
		return nil, err
	}

	out := make([]entity.RawPoint, 0, len(body.Data))
	for _, p := range body.Data {
		out = append(out, entity.RawPoint{Date: dateText(p.Date), Value: p.Rate})
	}
	return out, nil
}

// Predict calls GET /api/predict for pair and horizon.
func (c *Client) Predict(ctx context.Context, pair entity.Pair, horizon int) ([]entity.RawPoint, error) {
	if pair == "" {
		return nil, ErrPairRequired
	}
	q := url.Values{}
	q.Set("pair", string(pair))
	q.Set("horizon", strconv.Itoa(horizon))

	var body dto.PredictResponse
	if err := c.get(ctx, "Predict", "/api/predict", q, &body); err != nil {
		return nil, err
	}

	out := make([]entity.RawPoint, 0, len(body.Yhat))
	for _, p := range body.Yhat {
		out = append(out, entity.RawPoint{Date: dateText(p.Date), Value: p.Value})
	}
	return out, nil
}

// dateText turns a decoded date of any scalar kind into text. Null, objects
// and arrays yield nil, so the point gets no label.
func dateText(v any) *string {
	var s string
	switch d := v.(type) {
	case nil, map[string]any, []any:
		return nil
	case string:
		s = d
	case json.Number:
		s = d.String()
	default:
		s = fmt.Sprint(d)
	}
	return &s
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s request: %w", strings.ToLower(endpoint), err)
		}
	}

	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", strings.ToLower(endpoint), err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Endpoint: endpoint, StatusCode: res.StatusCode}
	}

	// Numbers stay json.Number so the normalizer sees the original text.
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", strings.ToLower(endpoint), err)
	}
	return nil
}
