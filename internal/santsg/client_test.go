package santsg

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultBaseURL {
		t.Fatalf("host = %q, want %q", u.Host, defaultBaseURL)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndSendsHeaders(t *testing.T) {
	t.Parallel()

	var gotAutocompleteBody map[string]string
	var gotSearchBody PriceSearchRequest
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/api/v1/lookups/nationalities":
			_ = json.NewEncoder(w).Encode([]Nationality{{ID: "TR", Name: "Türkiye"}})
		case "/api/v1/lookups/currencies":
			_ = json.NewEncoder(w).Encode([]Currency{{Code: "EUR", Name: "Euro"}})
		case "/api/v1/locations/autocomplete":
			_ = json.NewDecoder(r.Body).Decode(&gotAutocompleteBody)
			_ = json.NewEncoder(w).Encode([]LocationSuggestion{{ID: "loc-1", Name: "Antalya", Type: LocationTypeCity}})
		case "/api/price-search/by-location":
			_ = json.NewDecoder(r.Body).Decode(&gotSearchBody)
			_, _ = w.Write([]byte(`{"body":{"hotels":[{"id":"h1","name":"Sea Breeze"}]}}`))
		case "/api/v1/products/info":
			_ = json.NewEncoder(w).Encode(Hotel{ID: "h1", Name: "Sea Breeze"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	if err := c.CheckHealth(ctx); err != nil {
		t.Fatalf("CheckHealth returned error: %v", err)
	}

	nats, err := c.FetchNationalities(ctx)
	if err != nil {
		t.Fatalf("FetchNationalities returned error: %v", err)
	}
	if len(nats) != 1 || nats[0].ID != "TR" {
		t.Fatalf("FetchNationalities = %#v, want 1 entry TR", nats)
	}

	curs, err := c.FetchCurrencies(ctx)
	if err != nil {
		t.Fatalf("FetchCurrencies returned error: %v", err)
	}
	if len(curs) != 1 || curs[0].Code != "EUR" {
		t.Fatalf("FetchCurrencies = %#v, want 1 entry EUR", curs)
	}

	suggestions, err := c.AutocompleteLocations(ctx, "  antalya ")
	if err != nil {
		t.Fatalf("AutocompleteLocations returned error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Name != "Antalya" {
		t.Fatalf("AutocompleteLocations = %#v, want Antalya", suggestions)
	}
	if gotAutocompleteBody["query"] != "antalya" {
		t.Fatalf("autocomplete query = %q, want trimmed %q", gotAutocompleteBody["query"], "antalya")
	}

	hotels, err := c.SearchByLocation(ctx, PriceSearchRequest{
		CheckAllotment:    true,
		CheckStopSale:     true,
		GetOnlyBestOffers: true,
		ProductType:       2,
		Night:             4,
		CheckIn:           "2025-06-01",
		ArrivalLocations:  []ArrivalLocation{{ID: "loc-1", Type: LocationTypeCity}},
	})
	if err != nil {
		t.Fatalf("SearchByLocation returned error: %v", err)
	}
	if len(hotels) != 1 || hotels[0].ID != "h1" {
		t.Fatalf("SearchByLocation = %#v, want hotel h1", hotels)
	}
	if gotSearchBody.Night != 4 || !gotSearchBody.CheckAllotment || gotSearchBody.ProductType != 2 {
		t.Fatalf("search payload = %#v, want night=4 with fixed flags", gotSearchBody)
	}

	hotel, err := c.FetchProductInfo(ctx, "h1")
	if err != nil {
		t.Fatalf("FetchProductInfo returned error: %v", err)
	}
	if hotel == nil || hotel.Name != "Sea Breeze" {
		t.Fatalf("FetchProductInfo = %#v, want Sea Breeze", hotel)
	}

	if ua := gotHeaders.Get("User-Agent"); !strings.HasPrefix(ua, "voyago/") {
		t.Fatalf("User-Agent = %q, want voyago/*", ua)
	}
	if gotHeaders.Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header missing")
	}
	if gotHeaders.Get("ngrok-skip-browser-warning") != "true" {
		t.Fatal("interstitial bypass header missing")
	}
}

func TestClient_AutocompleteShortQuerySkipsNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	for _, query := range []string{"", " ", "a", " a "} {
		got, err := c.AutocompleteLocations(context.Background(), query)
		if err != nil {
			t.Fatalf("AutocompleteLocations(%q) returned error: %v", query, err)
		}
		if len(got) != 0 {
			t.Fatalf("AutocompleteLocations(%q) = %#v, want empty", query, got)
		}
	}
	if n := calls.Load(); n != 0 {
		t.Fatalf("server saw %d calls, want 0", n)
	}
}

func TestClient_FetchProductInfoRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchProductInfo(context.Background(), "  "); err == nil {
		t.Fatal("FetchProductInfo returned nil error, want error")
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/products/info":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/v1/lookups/nationalities":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/api/v1/lookups/currencies":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<!DOCTYPE html><html><body>tunnel warning</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchProductInfo(context.Background(), "h1")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("FetchProductInfo error = %v, want MalformedResponseError", err)
	}

	_, err = c.FetchNationalities(context.Background())
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusInternalServerError {
		t.Fatalf("FetchNationalities error = %v, want HTTPError 500", err)
	}

	_, err = c.FetchCurrencies(context.Background())
	if !errors.As(err, &malformed) || malformed.Detail != "html interstitial" {
		t.Fatalf("FetchCurrencies error = %v, want html interstitial", err)
	}
}

func TestClient_NonJSONListBodyFallsBackToZeroValue(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("warming up"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	hotels, err := c.SearchByLocation(context.Background(), PriceSearchRequest{})
	if err != nil {
		t.Fatalf("SearchByLocation returned error: %v", err)
	}
	if len(hotels) != 0 {
		t.Fatalf("SearchByLocation = %#v, want empty fallback", hotels)
	}
}

func TestClient_TimeoutClassified(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	t.Cleanup(cancel)

	err = c.CheckHealth(ctx)
	var timeout *TimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("CheckHealth error = %v, want TimeoutError", err)
	}
}
