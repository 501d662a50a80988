package model

import "net/url"

// FormValues flattens the request into the gateway's form encoding. Nested
// objects use dotted key paths (card.number, billing.city). Optional fields
// that are empty are omitted entirely rather than sent blank.
func (r *PaymentRequest) FormValues() url.Values {
	form := url.Values{}

	setIfPresent(form, "entityId", r.EntityID)
	setIfPresent(form, "amount", r.Amount)
	form.Set("currency", string(r.Currency))
	form.Set("paymentType", string(r.PaymentType))
	setIfPresent(form, "paymentBrand", string(r.PaymentBrand))
	setIfPresent(form, "merchantTransactionId", r.MerchantTransactionID)
	setIfPresent(form, "shopperResultUrl", r.ShopperResultURL)
	setIfPresent(form, "testMode", string(r.TestMode))

	if r.Card != nil {
		setIfPresent(form, "card.number", r.Card.Number)
		setIfPresent(form, "card.holder", r.Card.Holder)
		setIfPresent(form, "card.expiryMonth", r.Card.ExpiryMonth)
		setIfPresent(form, "card.expiryYear", r.Card.ExpiryYear)
		setIfPresent(form, "card.cvv", r.Card.CVV)
	}

	if r.Customer != nil {
		setIfPresent(form, "customer.givenName", r.Customer.GivenName)
		setIfPresent(form, "customer.surname", r.Customer.Surname)
		setIfPresent(form, "customer.email", r.Customer.Email)
		setIfPresent(form, "customer.ip", r.Customer.IP)
		setIfPresent(form, "customer.merchantCustomerId", r.Customer.MerchantCustomerID)
	}

	if r.Billing != nil {
		setIfPresent(form, "billing.street1", r.Billing.Street1)
		setIfPresent(form, "billing.street2", r.Billing.Street2)
		setIfPresent(form, "billing.city", r.Billing.City)
		setIfPresent(form, "billing.state", r.Billing.State)
		setIfPresent(form, "billing.postcode", r.Billing.Postcode)
		setIfPresent(form, "billing.country", r.Billing.Country)
	}

	return form
}

func setIfPresent(form url.Values, key, value string) {
	if value != "" {
		form.Set(key, value)
	}
}
