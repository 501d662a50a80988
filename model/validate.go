package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateRequest checks a request for completeness before transmission and
// returns the full ordered list of problems, or nil when the request is
// valid. All checks run; nothing is fail-fast, so a caller sees the complete
// problem set in one pass. Malformed-but-checkable input (empty or
// non-numeric amounts, missing card fields) is reported, never panicked on.
//
// Card and brand rules apply only to pre-authorization and debit. Capture,
// refund and reversal reference a prior transaction id, which carries the
// card context server-side.
func ValidateRequest(r *PaymentRequest) []string {
	var problems []string

	if strings.TrimSpace(r.Amount) == "" {
		problems = append(problems, "amount is required")
	} else if amount, err := decimal.NewFromString(r.Amount); err != nil || !amount.IsPositive() {
		problems = append(problems, "amount must be a positive number")
	}

	if r.PaymentType == PreAuthorization || r.PaymentType == Debit {
		if r.Card == nil {
			problems = append(problems, "card data is required for payment transactions")
		} else {
			if strings.TrimSpace(r.Card.Number) == "" {
				problems = append(problems, "card number is required")
			}
			if strings.TrimSpace(r.Card.ExpiryMonth) == "" {
				problems = append(problems, "card expiry month is required")
			}
			if strings.TrimSpace(r.Card.ExpiryYear) == "" {
				problems = append(problems, "card expiry year is required")
			}
		}
		if r.PaymentBrand == "" {
			problems = append(problems, "payment brand is required for payment transactions")
		}
	}

	return problems
}
