package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"indexprice/internal/domain/model"
)

const (
	DefaultBaseURL = "https://test.deribit.com/api/v2"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=source_test -destination=mock_http_client_test.go -source=deribit.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DeribitClient reads index prices from the Deribit public JSON-RPC over
// HTTP API. It never retries.
type DeribitClient struct {
	baseURL    string
	httpClient HTTPClient
	header     http.Header
	timeout    time.Duration
	log        *slog.Logger
	now        func() time.Time
}

type DeribitOption func(*DeribitClient)

func WithBaseURL(baseURL string) DeribitOption {
	return func(c *DeribitClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient HTTPClient) DeribitOption {
	return func(c *DeribitClient) {
		c.httpClient = httpClient
	}
}

// WithHeader adds headers sent with each request.
func WithHeader(header http.Header) DeribitOption {
	return func(c *DeribitClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithTimeout bounds every request. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) DeribitOption {
	return func(c *DeribitClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithLogger(log *slog.Logger) DeribitOption {
	return func(c *DeribitClient) {
		c.log = log
	}
}

func NewDeribitClient(opts ...DeribitOption) *DeribitClient {
	c := &DeribitClient{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		timeout:    defaultTimeout,
		log:        slog.Default(),
		now:        time.Now,
	}
	c.header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *DeribitClient) Name() string { return "deribit" }

type indexPriceResponse struct {
	Result *struct {
		IndexPrice json.Number `json:"index_price"`
		Timestamp  int64       `json:"timestamp"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	UsOut int64 `json:"usOut"`
}

func (c *DeribitClient) FetchIndexPrice(ctx context.Context, ticker string) (model.RawPriceObservation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("index_name", ticker)
	endpoint := fmt.Sprintf("%s/public/get_index_price?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return model.RawPriceObservation{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return model.RawPriceObservation{}, fmt.Errorf("%w: performing request: %w", model.ErrSourceUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return model.RawPriceObservation{}, fmt.Errorf("%w: reading response: %w", model.ErrSourceUnavailable, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.log.Warn("deribit returned non-2xx", "ticker", ticker, "status", res.StatusCode)
		return model.RawPriceObservation{}, fmt.Errorf("%w: unexpected status code: %d", model.ErrSourceUnavailable, res.StatusCode)
	}

	var payload indexPriceResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.RawPriceObservation{}, fmt.Errorf("%w: decoding response: %v", model.ErrMalformedObservation, err)
	}
	if payload.Error != nil {
		return model.RawPriceObservation{}, fmt.Errorf("%w: rpc error %d: %s", model.ErrSourceUnavailable, payload.Error.Code, payload.Error.Message)
	}

	raw := model.RawPriceObservation{}
	if payload.Result != nil {
		raw.Price = payload.Result.IndexPrice.String()
		raw.TimestampMs = payload.Result.Timestamp
	}
	if raw.TimestampMs == 0 && payload.UsOut > 0 {
		raw.TimestampMs = payload.UsOut / 1000
	}
	if raw.TimestampMs == 0 {
		raw.TimestampMs = c.now().UnixMilli()
	}

	c.log.Debug("fetched index price", "ticker", ticker, "price", raw.Price)
	return raw, nil
}
