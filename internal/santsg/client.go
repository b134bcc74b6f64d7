package santsg

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

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// API defines the remote operations the application depends on.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	CheckHealth(ctx context.Context) error
	FetchNationalities(ctx context.Context) ([]Nationality, error)
	FetchCurrencies(ctx context.Context) ([]Currency, error)
	AutocompleteLocations(ctx context.Context, query string) ([]LocationSuggestion, error)
	SearchByLocation(ctx context.Context, req PriceSearchRequest) ([]Hotel, error)
	SearchByHotel(ctx context.Context, req PriceSearchRequest) ([]Hotel, error)
	FetchProductInfo(ctx context.Context, productID string) (*Hotel, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the pricing/inventory HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string

	// Autocomplete fires on keystrokes; keep it polite even if the UI's
	// debounce is misconfigured.
	autocompleteLimit *rate.Limiter
}

const (
	defaultBaseURL   = "127.0.0.1:8080"
	defaultUserAgent = "voyago/0.1"
	requestTimeout   = 10 * time.Second
	v1Prefix         = "/api/v1"

	// minAutocompleteQuery is the shortest query worth a network call.
	minAutocompleteQuery = 2

	maxBodyBytes = 4 << 20
)

// NewClient builds a Client for the given base address (host:port or URL).
func NewClient(base string) (*Client, error) {
	parsed, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: parsed,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent:         defaultUserAgent,
		autocompleteLimit: rate.NewLimiter(rate.Every(300*time.Millisecond), 2),
	}, nil
}

// CheckHealth pings /health. A nil return means the API answered 200.
func (c *Client) CheckHealth(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, "/health", nil, nil, false)
}

// FetchNationalities retrieves the nationality lookup list.
func (c *Client) FetchNationalities(ctx context.Context) ([]Nationality, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Nationality
	if err := c.do(ctx, http.MethodGet, v1Prefix+"/lookups/nationalities", nil, &payload, true); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchCurrencies retrieves the currency lookup list.
func (c *Client) FetchCurrencies(ctx context.Context) ([]Currency, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Currency
	if err := c.do(ctx, http.MethodGet, v1Prefix+"/lookups/currencies", nil, &payload, true); err != nil {
		return nil, err
	}
	return payload, nil
}

// AutocompleteLocations suggests locations for a partial query. Queries
// shorter than two characters return an empty result without a call.
func (c *Client) AutocompleteLocations(ctx context.Context, query string) ([]LocationSuggestion, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < minAutocompleteQuery {
		return nil, nil
	}
	if err := c.autocompleteLimit.Wait(ctx); err != nil {
		return nil, classifyTransportError("locations/autocomplete", err)
	}
	var payload []LocationSuggestion
	body := map[string]string{"query": trimmed}
	if err := c.do(ctx, http.MethodPost, v1Prefix+"/locations/autocomplete", body, &payload, true); err != nil {
		return nil, err
	}
	return payload, nil
}

// SearchByLocation runs a price search scoped by arrival location.
func (c *Client) SearchByLocation(ctx context.Context, req PriceSearchRequest) ([]Hotel, error) {
	return c.priceSearch(ctx, "/api/price-search/by-location", req)
}

// SearchByHotel runs a price search scoped to specific products.
func (c *Client) SearchByHotel(ctx context.Context, req PriceSearchRequest) ([]Hotel, error) {
	return c.priceSearch(ctx, "/api/price-search/by-hotel", req)
}

func (c *Client) priceSearch(ctx context.Context, path string, req PriceSearchRequest) ([]Hotel, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload priceSearchResponse
	if err := c.do(ctx, http.MethodPost, path, req, &payload, true); err != nil {
		return nil, err
	}
	return payload.Body.Hotels, nil
}

// FetchProductInfo retrieves the detail projection for one hotel. An empty
// id is rejected locally without a network call.
func (c *Client) FetchProductInfo(ctx context.Context, productID string) (*Hotel, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product id required")
	}
	var payload Hotel
	body := map[string]string{"product": productID}
	if err := c.do(ctx, http.MethodPost, v1Prefix+"/products/info", body, &payload, false); err != nil {
		return nil, err
	}
	return &payload, nil
}

// do executes one request. When fallbackZero is true a syntactically valid
// but non-JSON body leaves dest at its zero value instead of failing, so
// callers never receive an unparseable value for list-shaped reads.
func (c *Client) do(ctx context.Context, method, path string, payload, dest any, fallbackZero bool) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	// The upstream can sit behind a tunneling proxy that serves an
	// interstitial page unless asked not to.
	req.Header.Set("ngrok-skip-browser-warning", "true")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Op: path, Status: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return classifyTransportError(path, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		if err := json.Unmarshal(raw, dest); err != nil {
			return &MalformedResponseError{Op: path, Detail: "invalid json", Err: err}
		}
		return nil
	}

	text := strings.TrimSpace(string(raw))
	switch {
	case strings.Contains(text, "<!DOCTYPE") || strings.Contains(text, "<html"):
		return &MalformedResponseError{Op: path, Detail: "html interstitial"}
	case text == "":
		return &MalformedResponseError{Op: path, Detail: "empty body"}
	case fallbackZero:
		return nil
	default:
		return &MalformedResponseError{Op: path, Detail: "unexpected content type " + contentType}
	}
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", base, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
