package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intpay/vrpay-go/resultcode"
)

func TestNewRequest_AmountFormatting(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"two decimals kept", decimal.RequireFromString("92.00"), "92.00"},
		{"whole number padded", decimal.NewFromInt(92), "92.00"},
		{"one decimal padded", decimal.RequireFromString("10.5"), "10.50"},
		{"extra precision rounded", decimal.RequireFromString("10.005"), "10.01"},
		{"small amount", decimal.RequireFromString("0.01"), "0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest(tt.amount, EUR, PreAuthorization)
			assert.Equal(t, tt.expected, req.Amount)
			assert.Equal(t, EUR, req.Currency)
			assert.Equal(t, PreAuthorization, req.PaymentType)
		})
	}
}

func TestEnum_WireCodes(t *testing.T) {
	assert.Equal(t, "PA", string(PreAuthorization))
	assert.Equal(t, "DB", string(Debit))
	assert.Equal(t, "CP", string(Capture))
	assert.Equal(t, "RF", string(Refund))
	assert.Equal(t, "RV", string(Reversal))
	assert.Equal(t, "MASTER", string(Mastercard))
	assert.Equal(t, "EXTERNAL", string(TestModeExternal))
}

func TestEnum_Valid(t *testing.T) {
	assert.True(t, EUR.Valid())
	assert.True(t, Reversal.Valid())
	assert.True(t, Maestro.Valid())
	assert.True(t, TestModeInternal.Valid())
	assert.False(t, Currency("XXX").Valid())
	assert.False(t, PaymentType("XY").Valid())
	assert.False(t, PaymentBrand("BITCOIN").Valid())
	assert.False(t, TestMode("SANDBOX").Valid())
}

func TestEnum_UnmarshalRejectsUnknownCodes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		target  any
	}{
		{"unknown currency", `"XXX"`, new(Currency)},
		{"lowercase currency", `"eur"`, new(Currency)},
		{"unknown payment type", `"ZZ"`, new(PaymentType)},
		{"unknown brand", `"VISACARD"`, new(PaymentBrand)},
		{"unknown test mode", `"LIVE"`, new(TestMode)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.payload), tt.target)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unrecognized")
		})
	}
}

func TestEnum_UnmarshalAcceptsWireCodes(t *testing.T) {
	var c Currency
	require.NoError(t, json.Unmarshal([]byte(`"EUR"`), &c))
	assert.Equal(t, EUR, c)

	var pt PaymentType
	require.NoError(t, json.Unmarshal([]byte(`"PA"`), &pt))
	assert.Equal(t, PreAuthorization, pt)

	var b PaymentBrand
	require.NoError(t, json.Unmarshal([]byte(`"MASTER"`), &b))
	assert.Equal(t, Mastercard, b)
}

func TestPaymentResponse_Unmarshal(t *testing.T) {
	body := `{
		"id": "8ac7a49f8e5b2c3d",
		"paymentType": "PA",
		"amount": "92.00",
		"currency": "EUR",
		"paymentBrand": "VISA",
		"result": {"code": "000.000.000", "description": "Transaction succeeded"},
		"merchantTransactionId": "ORDER-1",
		"card": {"bin": "420000", "last4Digits": "0000", "holder": "John Doe", "expiryMonth": "12", "expiryYear": "2034"},
		"timestamp": "2026-09-01 10:00:00+0000"
	}`

	var resp PaymentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "8ac7a49f8e5b2c3d", resp.ID)
	assert.Equal(t, PreAuthorization, resp.PaymentType)
	assert.Equal(t, "92.00", resp.Amount)
	assert.Equal(t, Visa, resp.PaymentBrand)
	assert.Equal(t, "000.000.000", resp.Result.Code)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "0000", resp.Card.Last4Digits)
}

func TestPaymentResponse_UnmarshalRejectsBadEnum(t *testing.T) {
	body := `{"id": "x", "paymentType": "XX", "amount": "1.00", "currency": "EUR", "result": {"code": "000.000.000"}}`
	var resp PaymentResponse
	assert.Error(t, json.Unmarshal([]byte(body), &resp))
}

func TestPaymentResponse_ClassificationHelpers(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		success      bool
		manualReview bool
		status       resultcode.Status
		canRetry     bool
	}{
		{"clean success", "000.000.000", true, false, resultcode.StatusSuccess, false},
		{"manual review", "000.400.000", true, true, resultcode.StatusSuccessManualReview, false},
		{"hard decline", "800.100.153", false, false, resultcode.StatusHardDecline, false},
		{"soft decline", "300.100.100", false, false, resultcode.StatusSoftDecline, true},
		{"blank code", "", false, false, resultcode.StatusUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &PaymentResponse{Result: ResultData{Code: tt.code}}
			assert.Equal(t, tt.success, resp.IsSuccess())
			assert.Equal(t, tt.manualReview, resp.RequiresManualReview())
			assert.Equal(t, tt.status, resp.Status())
			assert.Equal(t, tt.canRetry, resp.CanRetry())
		})
	}
}
