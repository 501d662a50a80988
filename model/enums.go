package model

import (
	"encoding/json"
	"fmt"
)

// Currency is an ISO 4217 currency code accepted by the gateway.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	PLN Currency = "PLN"
	CZK Currency = "CZK"
	DKK Currency = "DKK"
	SEK Currency = "SEK"
	NOK Currency = "NOK"
)

// PaymentType identifies the kind of payment operation. The values are the
// gateway's two-letter wire codes.
type PaymentType string

const (
	PreAuthorization PaymentType = "PA"
	Debit            PaymentType = "DB"
	Capture          PaymentType = "CP"
	Refund           PaymentType = "RF"
	Reversal         PaymentType = "RV"
)

// PaymentBrand identifies the card scheme.
type PaymentBrand string

const (
	Visa       PaymentBrand = "VISA"
	Mastercard PaymentBrand = "MASTER"
	Amex       PaymentBrand = "AMEX"
	Diners     PaymentBrand = "DINERS"
	Discover   PaymentBrand = "DISCOVER"
	JCB        PaymentBrand = "JCB"
	Maestro    PaymentBrand = "MAESTRO"
)

// TestMode selects how the gateway processes test transactions.
type TestMode string

const (
	TestModeExternal TestMode = "EXTERNAL"
	TestModeInternal TestMode = "INTERNAL"
)

// Per-enum wire-code tables, built once and never mutated. Deserialization
// rejects codes outside these tables instead of silently defaulting.
var (
	currencies    = codeSet(EUR, USD, GBP, CHF, JPY, CAD, AUD, PLN, CZK, DKK, SEK, NOK)
	paymentTypes  = codeSet(PreAuthorization, Debit, Capture, Refund, Reversal)
	paymentBrands = codeSet(Visa, Mastercard, Amex, Diners, Discover, JCB, Maestro)
	testModes     = codeSet(TestModeExternal, TestModeInternal)
)

func codeSet[T ~string](values ...T) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[string(v)] = struct{}{}
	}
	return set
}

// Valid reports whether the currency is a known wire code.
func (c Currency) Valid() bool {
	_, ok := currencies[string(c)]
	return ok
}

// Valid reports whether the payment type is a known wire code.
func (t PaymentType) Valid() bool {
	_, ok := paymentTypes[string(t)]
	return ok
}

// Valid reports whether the payment brand is a known wire code.
func (b PaymentBrand) Valid() bool {
	_, ok := paymentBrands[string(b)]
	return ok
}

// Valid reports whether the test mode is a known wire code.
func (m TestMode) Valid() bool {
	_, ok := testModes[string(m)]
	return ok
}

// UnmarshalJSON rejects unrecognized currency codes.
func (c *Currency) UnmarshalJSON(data []byte) error {
	code, err := decodeCode(data, currencies, "currency")
	if err != nil {
		return err
	}
	*c = Currency(code)
	return nil
}

// UnmarshalJSON rejects unrecognized payment type codes.
func (t *PaymentType) UnmarshalJSON(data []byte) error {
	code, err := decodeCode(data, paymentTypes, "payment type")
	if err != nil {
		return err
	}
	*t = PaymentType(code)
	return nil
}

// UnmarshalJSON rejects unrecognized payment brand codes.
func (b *PaymentBrand) UnmarshalJSON(data []byte) error {
	code, err := decodeCode(data, paymentBrands, "payment brand")
	if err != nil {
		return err
	}
	*b = PaymentBrand(code)
	return nil
}

// UnmarshalJSON rejects unrecognized test mode codes.
func (m *TestMode) UnmarshalJSON(data []byte) error {
	code, err := decodeCode(data, testModes, "test mode")
	if err != nil {
		return err
	}
	*m = TestMode(code)
	return nil
}

func decodeCode(data []byte, table map[string]struct{}, kind string) (string, error) {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return "", err
	}
	if _, ok := table[code]; !ok {
		return "", fmt.Errorf("unrecognized %s code %q", kind, code)
	}
	return code, nil
}
