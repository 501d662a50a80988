// Package vrpaytest provides the gateway's documented test cards and canned
// payment requests for integration exercises. Nothing here is part of the
// production contract.
package vrpaytest

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/intpay/vrpay-go/model"
)

// VisaSuccess results in a successful transaction.
func VisaSuccess() *model.CardData {
	return &model.CardData{
		Number:      "4200000000000000",
		Holder:      "John Doe",
		ExpiryMonth: "12",
		ExpiryYear:  "2034",
		CVV:         "123",
	}
}

// VisaDeclined results in a declined transaction.
func VisaDeclined() *model.CardData {
	return &model.CardData{
		Number:      "4000000000000002",
		Holder:      "Jane Smith",
		ExpiryMonth: "12",
		ExpiryYear:  "2034",
		CVV:         "123",
	}
}

// MastercardSuccess results in a successful transaction.
func MastercardSuccess() *model.CardData {
	return &model.CardData{
		Number:      "5200000000000007",
		Holder:      "John Doe",
		ExpiryMonth: "12",
		ExpiryYear:  "2034",
		CVV:         "123",
	}
}

// MastercardDeclined results in a declined transaction.
func MastercardDeclined() *model.CardData {
	return &model.CardData{
		Number:      "5100000000000016",
		Holder:      "Jane Smith",
		ExpiryMonth: "12",
		ExpiryYear:  "2034",
		CVV:         "123",
	}
}

// AmexSuccess results in a successful transaction.
func AmexSuccess() *model.CardData {
	return &model.CardData{
		Number:      "340000000000009",
		Holder:      "John Doe",
		ExpiryMonth: "12",
		ExpiryYear:  "2034",
		CVV:         "1234",
	}
}

// ExpiredCard triggers a validation error on the gateway side.
func ExpiredCard() *model.CardData {
	return &model.CardData{
		Number:      "4200000000000000",
		Holder:      "Test User",
		ExpiryMonth: "01",
		ExpiryYear:  "2020",
		CVV:         "123",
	}
}

// DefaultCustomer is a complete customer payload for test requests.
func DefaultCustomer() *model.CustomerData {
	return &model.CustomerData{
		GivenName:          "John",
		Surname:            "Doe",
		Email:              "john.doe@example.com",
		IP:                 "127.0.0.1",
		MerchantCustomerID: "CUST-12345",
	}
}

// DefaultBillingAddress is a complete billing payload for test requests.
func DefaultBillingAddress() *model.AddressData {
	return &model.AddressData{
		Street1:  "123 Test Street",
		City:     "Test City",
		State:    "TC",
		Postcode: "12345",
		Country:  "DE",
	}
}

// SuccessfulRequest builds a complete request that the test gateway accepts,
// with a unique merchant transaction id for gateway-side idempotency.
func SuccessfulRequest(amount decimal.Decimal, currency model.Currency, brand model.PaymentBrand) *model.PaymentRequest {
	req := model.NewRequest(amount, currency, model.PreAuthorization)
	req.PaymentBrand = brand
	req.MerchantTransactionID = "TEST-" + uuid.NewString()
	req.Customer = DefaultCustomer()
	req.Billing = DefaultBillingAddress()

	switch brand {
	case model.Mastercard:
		req.Card = MastercardSuccess()
	case model.Amex:
		req.Card = AmexSuccess()
	default:
		req.Card = VisaSuccess()
	}
	return req
}

// DeclinedRequest builds a complete request that the test gateway declines.
func DeclinedRequest(amount decimal.Decimal, currency model.Currency, brand model.PaymentBrand) *model.PaymentRequest {
	req := model.NewRequest(amount, currency, model.PreAuthorization)
	req.PaymentBrand = brand
	req.MerchantTransactionID = "TEST-" + uuid.NewString()
	req.Customer = DefaultCustomer()
	req.Billing = DefaultBillingAddress()
	req.ShopperResultURL = "https://example.com/payment/result"

	if brand == model.Mastercard {
		req.Card = MastercardDeclined()
	} else {
		req.Card = VisaDeclined()
	}
	return req
}
