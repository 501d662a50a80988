package vrpay

import (
	"fmt"
	"strings"

	"github.com/intpay/vrpay-go/model"
)

// ConfigurationError reports invalid client configuration. It is raised at
// construction time only; a client that was built successfully never returns
// it again.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "vrpay: invalid configuration: " + e.Reason
}

// ValidationError reports one or more field-level problems detected before
// transmission. The request was never sent to the gateway.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "vrpay: request validation failed: " + strings.Join(e.Problems, "; ")
}

// CommunicationError reports a failed exchange with the gateway: a non-2xx
// HTTP status, a transport-level failure, a timeout or cancellation, or a
// response body that could not be decoded. StatusCode is zero when no HTTP
// status was received.
type CommunicationError struct {
	StatusCode int
	Err        error
}

func (e *CommunicationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("vrpay: gateway request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("vrpay: gateway request failed: %v", e.Err)
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// DeclinedError reports that the gateway accepted and processed the request
// but the classified outcome is not a success. Declines are an expected,
// first-class result path, not a bug; Response carries the full gateway
// response for inspection.
type DeclinedError struct {
	ResultCode  string
	Description string
	Response    *model.PaymentResponse
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("vrpay: payment declined (%s): %s", e.ResultCode, e.Description)
}

// CanRetry reports whether retrying the same request is sound for this
// decline. The client never retries on its own.
func (e *DeclinedError) CanRetry() bool {
	return e.Response != nil && e.Response.CanRetry()
}
