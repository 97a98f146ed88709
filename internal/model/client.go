package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/logger"
)

// Client is the HTTP binding to the analytics service. Each method makes
// exactly one call and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// TrainRequest is the body of the upstream /train call
type TrainRequest struct {
	MinSupport    float64 `json:"min_support"`
	MinThreshold  float64 `json:"min_threshold"`
	UseSampleData bool    `json:"use_sample_data"`
	MaxLength     *int    `json:"max_length,omitempty"`
}

func (c *Client) Status(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/status", nil, nil)
}

func (c *Client) Train(ctx context.Context, req TrainRequest) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/train", nil, req)
}

func (c *Client) Recommend(ctx context.Context, q domain.RecommendationQuery) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/recommend", nil, q)
}

func (c *Client) Simulate(ctx context.Context, tx domain.Transaction) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/simulate", nil, tx)
}

func (c *Client) FrequentItemsets(ctx context.Context, q ItemsetQuery) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/frequent-itemsets", q.Params(), nil)
}

func (c *Client) Rules(ctx context.Context, q RuleQuery) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/rules", q.Params(), nil)
}

func (c *Client) do(ctx context.Context, method, path string, query Query, body any) (json.RawMessage, error) {
	url := c.baseURL + path
	if qs := query.Encode(); qs != "" {
		url += "?" + qs
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := correlation.FromContext(ctx); id != "" {
		req.Header.Set(correlation.Header, id)
	}

	log := logger.C(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("op", method+" "+path).Msg("ml service unreachable")
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("op", method+" "+path).Msg("ml service response read failed")
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ue := newUpstreamError(resp.StatusCode, raw)
		log.Error().
			Int("status", ue.Status).
			Bool("structured", ue.HasBody()).
			Str("op", method+" "+path).
			Msg(ue.Message())
		return nil, ue
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("ml service %s returned invalid JSON", path)
	}
	return json.RawMessage(raw), nil
}
