// Package resultcode classifies gateway result codes into transaction statuses.
//
// VR-Pay result codes are dot-delimited numeric strings (pattern ddd.ddd.ddd)
// whose prefix families determine the outcome of a transaction. Families
// overlap: manual-review codes are a carve-out of success-adjacent ranges, so
// the matchers are evaluated in a fixed order and the first match wins.
package resultcode

import (
	"regexp"
	"strings"
)

// Status represents the classified outcome of a gateway result code.
type Status string

const (
	StatusSuccess             Status = "success"
	StatusSuccessManualReview Status = "success_manual_review"
	StatusPending             Status = "pending"
	StatusSoftDecline         Status = "soft_decline"
	StatusHardDecline         Status = "hard_decline"
	StatusValidationError     Status = "validation_error"
	StatusCommunicationError  Status = "communication_error"
	StatusSystemError         Status = "system_error"
	StatusUnknown             Status = "unknown"
)

// IsRetriable returns true if the status indicates a caller-driven retry of
// the same request is sound.
func (s Status) IsRetriable() bool {
	switch s {
	case StatusSoftDecline, StatusCommunicationError, StatusSystemError:
		return true
	default:
		return false
	}
}

var (
	successPattern       = regexp.MustCompile(`^(000\.000\.|000\.100\.1|000\.[36]|000\.400\.[1][12]0)`)
	manualReviewPattern  = regexp.MustCompile(`^(000\.400\.0[^3]|000\.400\.100)`)
	pendingPattern       = regexp.MustCompile(`^000\.200`)
	softDeclinePattern   = regexp.MustCompile(`^300\.100\.100`)
	hardDeclinePattern   = regexp.MustCompile(`^(800\.[17]00|800\.800\.[123])`)
	validationPattern    = regexp.MustCompile(`^(100\.|200\.[123])`)
	communicationPattern = regexp.MustCompile(`^(000\.400\.3|900\.[1234]|800\.900|100\.39[56])`)
	systemErrorPattern   = regexp.MustCompile(`^(800\.800\.8|999\.)`)
)

// matchers is the ordered family list. Order is a correctness requirement,
// not a style choice: reordering changes classification for overlapping
// prefixes (e.g. 000.400.100 is both success-adjacent and manual review).
var matchers = []struct {
	pattern *regexp.Regexp
	status  Status
}{
	{successPattern, StatusSuccess},
	{manualReviewPattern, StatusSuccessManualReview},
	{pendingPattern, StatusPending},
	{softDeclinePattern, StatusSoftDecline},
	{hardDeclinePattern, StatusHardDecline},
	{validationPattern, StatusValidationError},
	{communicationPattern, StatusCommunicationError},
	{systemErrorPattern, StatusSystemError},
}

// Classify returns the transaction status for a result code. Blank input
// yields StatusUnknown without attempting any matcher.
func Classify(code string) Status {
	if isBlank(code) {
		return StatusUnknown
	}
	for _, m := range matchers {
		if m.pattern.MatchString(code) {
			return m.status
		}
	}
	return StatusUnknown
}

// IsSuccess returns true if the code indicates a successful transaction.
// Manual-review codes count as successful: the gateway processed the payment
// but flagged it for review.
func IsSuccess(code string) bool {
	if isBlank(code) {
		return false
	}
	return successPattern.MatchString(code) || manualReviewPattern.MatchString(code)
}

// RequiresManualReview returns true if the code indicates the transaction
// succeeded but requires manual review.
func RequiresManualReview(code string) bool {
	if isBlank(code) {
		return false
	}
	return manualReviewPattern.MatchString(code)
}

// CanRetry returns true if the code classifies as a retriable failure.
func CanRetry(code string) bool {
	return Classify(code).IsRetriable()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
