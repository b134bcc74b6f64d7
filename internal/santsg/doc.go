// Package santsg provides an HTTP client for the remote pricing and
// inventory API.
//
// # Overview
//
// The package wraps every remote capability the application consumes:
// lookup lists (nationalities, currencies), location autocomplete, the two
// price-search endpoints, the product detail endpoint, and the health
// check. It owns HTTP communication, JSON decoding, and the typed error
// taxonomy; callers above it never see a raw *http.Response.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client, request construction, response handling
//   - types.go: data structures mirroring the API schema, plus accessors
//     that tolerate the API's many optional nested fields
//   - errors.go: the error taxonomy (HTTPError, TimeoutError,
//     NetworkError, MalformedResponseError) and transport classification
//
// # Response handling
//
// Upstream sometimes answers with something other than JSON: an HTML
// interstitial from a tunneling proxy, an empty body, or a plain-text
// error. List-shaped reads (lookups, autocomplete, price search) decode
// such bodies into a safe zero value so the rest of the application never
// receives an unparseable result; the detail endpoint treats them as
// malformed. Non-2xx statuses and transport failures always surface as
// typed errors so callers can distinguish "failed" from "empty".
//
// # Client usage
//
//	client, err := santsg.NewClient("127.0.0.1:8080")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	suggestions, err := client.AutocompleteLocations(ctx, "anta")
//	if err != nil {
//		log.Printf("autocomplete failed: %v", err)
//	}
//
// Requests carry a fixed 10 second timeout. There are no retries; the
// caller decides whether a failure is worth repeating.
package santsg
