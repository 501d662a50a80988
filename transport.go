package vrpay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/intpay/vrpay-go/model"
)

// send performs the single HTTP POST for a payment operation: form-encodes
// the request, attaches the credential header, and decodes the JSON body.
// Every failure mode surfaces as a *CommunicationError so callers can apply
// their own retry policy; the client itself never retries.
func (c *Client) send(ctx context.Context, path string, req *model.PaymentRequest) (*model.PaymentResponse, error) {
	endpoint := strings.TrimRight(c.baseURL, "/") + path

	body := strings.NewReader(req.FormValues().Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, &CommunicationError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// The configured token goes out verbatim; callers include any
	// "Bearer " prefix themselves.
	httpReq.Header.Set("Authorization", c.accessToken)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Covers transport failures, timeouts and context cancellation.
		c.logError("gateway_request_failed", "error", err)
		return nil, &CommunicationError{Err: err}
	}
	defer httpResp.Body.Close()

	content, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logError("gateway_response_read_failed", "error", err)
		return nil, &CommunicationError{Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		c.logError("gateway_http_error",
			"status_code", httpResp.StatusCode,
			"body", string(content),
		)
		return nil, &CommunicationError{
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("unexpected HTTP status %d", httpResp.StatusCode),
		}
	}

	var resp model.PaymentResponse
	if err := json.Unmarshal(content, &resp); err != nil {
		c.logError("gateway_response_decode_failed", "error", err)
		return nil, &CommunicationError{Err: fmt.Errorf("decoding gateway response: %w", err)}
	}

	return &resp, nil
}
