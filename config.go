package vrpay

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/intpay/vrpay-go/model"
)

const (
	// DefaultTimeout bounds each gateway exchange when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	// TestBaseURL is the gateway's test environment.
	TestBaseURL = "https://test.vr-pay-ecommerce.de/"

	// LiveBaseURL is the gateway's production environment.
	LiveBaseURL = "https://vr-pay-ecommerce.de/"
)

// Config holds the immutable client configuration. It is validated once at
// construction; an invalid configuration is a fatal construction-time error,
// never a per-call one.
type Config struct {
	// BaseURL is the gateway endpoint, e.g. TestBaseURL.
	BaseURL string

	// EntityID identifies the payment channel and is injected into every
	// request before transmission.
	EntityID string

	// AccessToken is sent verbatim in the Authorization header, including
	// any "Bearer " prefix the caller configured.
	AccessToken string

	// Timeout bounds each HTTP exchange. Zero means DefaultTimeout;
	// negative values are rejected.
	Timeout time.Duration

	// UseTestMode injects TestModeValue into every request.
	UseTestMode bool

	// TestModeValue is the test mode sent when UseTestMode is set.
	TestModeValue model.TestMode

	// HTTPClient optionally overrides the transport. When set, its own
	// timeout configuration applies.
	HTTPClient *http.Client

	// Logger receives operation start/end and error events. Nil disables
	// logging without affecting correctness.
	Logger *slog.Logger
}

// Validate checks the configuration and returns a *ConfigurationError
// describing the first problem found.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return &ConfigurationError{Reason: "base URL is required"}
	}
	if u, err := url.Parse(c.BaseURL); err != nil || !u.IsAbs() {
		return &ConfigurationError{Reason: "base URL must be a valid absolute URL"}
	}
	if strings.TrimSpace(c.EntityID) == "" {
		return &ConfigurationError{Reason: "entity ID is required"}
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		return &ConfigurationError{Reason: "access token is required"}
	}
	if c.Timeout < 0 {
		return &ConfigurationError{Reason: "timeout must be greater than 0"}
	}
	if c.UseTestMode && !c.TestModeValue.Valid() {
		return &ConfigurationError{Reason: "test mode value must be EXTERNAL or INTERNAL"}
	}
	return nil
}
