package santsg

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// HTTPError reports a non-2xx response from the API.
type HTTPError struct {
	Op     string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Op, e.Status)
}

// TimeoutError reports a request that exceeded the fixed deadline.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("api %s timed out", e.Op)
}

// NetworkError reports a transport-level failure before any response arrived.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api %s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError reports a body that could not be interpreted as the
// expected JSON payload. An HTML interstitial page counts as malformed.
type MalformedResponseError struct {
	Op     string
	Detail string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("api %s returned malformed response (%s): %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("api %s returned malformed response (%s)", e.Op, e.Detail)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// classifyTransportError maps low-level fetch failures onto the error
// taxonomy. Context deadlines and net timeouts become TimeoutError.
func classifyTransportError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Op: op}
	}
	return &NetworkError{Op: op, Err: err}
}
