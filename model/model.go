// Package model defines the request and response shapes exchanged with the
// VR-Pay gateway, their wire encoding, and pre-transmission validation.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/intpay/vrpay-go/resultcode"
)

// PaymentRequest represents a payment operation to be sent to the gateway.
// Requests are built per call, mutated only to inject the entity id and test
// mode from configuration immediately before transmission, then discarded.
type PaymentRequest struct {
	EntityID              string        `json:"entityId"`
	Amount                string        `json:"amount"`
	Currency              Currency      `json:"currency"`
	PaymentType           PaymentType   `json:"paymentType"`
	PaymentBrand          PaymentBrand  `json:"paymentBrand,omitempty"`
	MerchantTransactionID string        `json:"merchantTransactionId,omitempty"`
	Card                  *CardData     `json:"card,omitempty"`
	Customer              *CustomerData `json:"customer,omitempty"`
	Billing               *AddressData  `json:"billing,omitempty"`
	ShopperResultURL      string        `json:"shopperResultUrl,omitempty"`
	TestMode              TestMode      `json:"testMode,omitempty"`
}

// NewRequest builds a request for the given amount, currency and operation
// type. The amount is serialized as a fixed two-decimal string regardless of
// locale: 92 becomes "92.00".
func NewRequest(amount decimal.Decimal, currency Currency, paymentType PaymentType) *PaymentRequest {
	return &PaymentRequest{
		Amount:      amount.StringFixed(2),
		Currency:    currency,
		PaymentType: paymentType,
	}
}

// CardData carries the card details for pre-authorization and debit
// operations. It lives only inside the request that embeds it and is never
// persisted beyond the single call.
type CardData struct {
	Number      string `json:"number"`
	Holder      string `json:"holder,omitempty"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv,omitempty"`
}

// CustomerData carries optional customer details.
type CustomerData struct {
	GivenName          string `json:"givenName,omitempty"`
	Surname            string `json:"surname,omitempty"`
	Email              string `json:"email,omitempty"`
	IP                 string `json:"ip,omitempty"`
	MerchantCustomerID string `json:"merchantCustomerId,omitempty"`
}

// AddressData carries an optional billing address.
type AddressData struct {
	Street1  string `json:"street1,omitempty"`
	Street2  string `json:"street2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country,omitempty"`
}

// PaymentResponse is the deserialized result of a gateway call. Responses
// are immutable after construction and owned solely by the caller.
type PaymentResponse struct {
	ID                    string       `json:"id"`
	PaymentType           PaymentType  `json:"paymentType"`
	Amount                string       `json:"amount"`
	Currency              Currency     `json:"currency"`
	PaymentBrand          PaymentBrand `json:"paymentBrand,omitempty"`
	Result                ResultData   `json:"result"`
	MerchantTransactionID string       `json:"merchantTransactionId,omitempty"`
	Card                  *CardInfo    `json:"card,omitempty"`
	Timestamp             string       `json:"timestamp,omitempty"`
	RedirectURL           string       `json:"redirectUrl,omitempty"`
}

// ResultData holds the gateway's result code and description.
type ResultData struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CardInfo is the masked card information echoed back by the gateway.
type CardInfo struct {
	Bin         string `json:"bin,omitempty"`
	Last4Digits string `json:"last4Digits,omitempty"`
	Holder      string `json:"holder,omitempty"`
	ExpiryMonth string `json:"expiryMonth,omitempty"`
	ExpiryYear  string `json:"expiryYear,omitempty"`
}

// IsSuccess reports whether the response's result code classifies as a
// successful transaction (manual review included).
func (r *PaymentResponse) IsSuccess() bool {
	return resultcode.IsSuccess(r.Result.Code)
}

// RequiresManualReview reports whether the transaction succeeded but needs
// manual review.
func (r *PaymentResponse) RequiresManualReview() bool {
	return resultcode.RequiresManualReview(r.Result.Code)
}

// Status returns the classified transaction status of the response.
func (r *PaymentResponse) Status() resultcode.Status {
	return resultcode.Classify(r.Result.Code)
}

// CanRetry reports whether retrying the same request is sound. The client
// never retries on its own; this only informs caller-driven retries.
func (r *PaymentResponse) CanRetry() bool {
	return resultcode.CanRetry(r.Result.Code)
}
