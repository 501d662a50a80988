// Package vrpay is a client for the VR-Pay card payment gateway. It executes
// pre-authorizations, debits, captures, refunds and reversals and classifies
// the gateway's result codes into actionable transaction outcomes.
//
// Declines are a first-class result path: operations return a *DeclinedError
// carrying the raw result code and the full gateway response whenever the
// classified status is not a success. The client performs no internal
// retries; resultcode.CanRetry tells callers whether retrying is sound.
package vrpay

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/intpay/vrpay-go/model"
	"github.com/intpay/vrpay-go/resultcode"
)

// Client executes payment operations against the gateway. It holds no
// mutable state beyond the configuration loaded at construction and is safe
// for concurrent use.
type Client struct {
	baseURL       string
	entityID      string
	accessToken   string
	useTestMode   bool
	testModeValue model.TestMode
	httpClient    *http.Client
	logger        *slog.Logger
}

// New builds a client from the given configuration. Invalid configuration
// returns a *ConfigurationError.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:       cfg.BaseURL,
		entityID:      cfg.EntityID,
		accessToken:   cfg.AccessToken,
		useTestMode:   cfg.UseTestMode,
		testModeValue: cfg.TestModeValue,
		httpClient:    httpClient,
		logger:        cfg.Logger,
	}, nil
}

// PreAuthorize reserves the amount on the card without capturing it. The
// request must carry card data and a payment brand.
func (c *Client) PreAuthorize(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResponse, error) {
	req.PaymentType = model.PreAuthorization
	return c.executePayment(ctx, req)
}

// Debit charges the card directly. The request must carry card data and a
// payment brand.
func (c *Client) Debit(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResponse, error) {
	req.PaymentType = model.Debit
	return c.executePayment(ctx, req)
}

// Capture captures a previously pre-authorized payment. The operation is
// addressed by the pre-authorization's transaction id; no card data is
// needed.
func (c *Client) Capture(ctx context.Context, preAuthID string, amount decimal.Decimal, currency model.Currency) (*model.PaymentResponse, error) {
	if strings.TrimSpace(preAuthID) == "" {
		return nil, &ValidationError{Problems: []string{"pre-authorization ID is required"}}
	}
	req := model.NewRequest(amount, currency, model.Capture)
	return c.executeBackoffice(ctx, preAuthID, req)
}

// Refund refunds a captured payment, addressed by the capture's transaction
// id.
func (c *Client) Refund(ctx context.Context, captureID string, amount decimal.Decimal, currency model.Currency) (*model.PaymentResponse, error) {
	if strings.TrimSpace(captureID) == "" {
		return nil, &ValidationError{Problems: []string{"capture ID is required"}}
	}
	req := model.NewRequest(amount, currency, model.Refund)
	return c.executeBackoffice(ctx, captureID, req)
}

// Reverse cancels a pre-authorization, addressed by its transaction id.
func (c *Client) Reverse(ctx context.Context, preAuthID string, amount decimal.Decimal, currency model.Currency) (*model.PaymentResponse, error) {
	if strings.TrimSpace(preAuthID) == "" {
		return nil, &ValidationError{Problems: []string{"pre-authorization ID is required"}}
	}
	req := model.NewRequest(amount, currency, model.Reversal)
	return c.executeBackoffice(ctx, preAuthID, req)
}

// executePayment runs the full path for new transactions: validate, inject
// configuration, POST to the payments collection, classify the outcome.
func (c *Client) executePayment(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResponse, error) {
	if problems := model.ValidateRequest(req); len(problems) > 0 {
		c.logWarn("payment_validation_failed",
			"payment_type", string(req.PaymentType),
			"problems", strings.Join(problems, "; "),
		)
		return nil, &ValidationError{Problems: problems}
	}

	c.injectConfig(req)

	c.logInfo("payment_operation_start",
		"payment_type", string(req.PaymentType),
		"amount", req.Amount,
		"currency", string(req.Currency),
	)

	resp, err := c.send(ctx, "/v1/payments", req)
	if err != nil {
		return nil, err
	}

	c.logInfo("payment_operation_complete",
		"result_code", resp.Result.Code,
		"description", resp.Result.Description,
	)

	return c.checkOutcome(resp)
}

// executeBackoffice runs operations against an existing transaction id. The
// reference goes into the path, not the body, and card validation is skipped
// because the referenced transaction already carries card context.
func (c *Client) executeBackoffice(ctx context.Context, referenceID string, req *model.PaymentRequest) (*model.PaymentResponse, error) {
	if problems := model.ValidateRequest(req); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	c.injectConfig(req)

	c.logInfo("backoffice_operation_start",
		"payment_type", string(req.PaymentType),
		"reference_id", referenceID,
		"amount", req.Amount,
		"currency", string(req.Currency),
	)

	resp, err := c.send(ctx, "/v1/payments/"+referenceID, req)
	if err != nil {
		return nil, err
	}

	c.logInfo("backoffice_operation_complete",
		"result_code", resp.Result.Code,
		"description", resp.Result.Description,
	)

	return c.checkOutcome(resp)
}

func (c *Client) injectConfig(req *model.PaymentRequest) {
	req.EntityID = c.entityID
	if c.useTestMode {
		req.TestMode = c.testModeValue
	}
}

func (c *Client) checkOutcome(resp *model.PaymentResponse) (*model.PaymentResponse, error) {
	if !resp.IsSuccess() {
		c.logWarn("payment_declined",
			"status", string(resultcode.Classify(resp.Result.Code)),
			"result_code", resp.Result.Code,
		)
		return nil, &DeclinedError{
			ResultCode:  resp.Result.Code,
			Description: resp.Result.Description,
			Response:    resp,
		}
	}
	return resp, nil
}

func (c *Client) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *Client) logWarn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Client) logError(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}
