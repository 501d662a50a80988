// Package gatewaysim implements the gateway's wire protocol from the server
// side for tests and the demo binary. Outcomes are deterministic: the card
// number selects the result code, so every classifier family is reachable
// without talking to the real test environment.
package gatewaysim

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/intpay/vrpay-go/model"
)

var (
	successResult = model.ResultData{Code: "000.000.000", Description: "Transaction succeeded"}
	declinedVisa  = model.ResultData{Code: "800.100.153", Description: "transaction declined (invalid CVV)"}
	declinedMC    = model.ResultData{Code: "800.100.152", Description: "transaction declined by authorization system"}
	unknownRef    = model.ResultData{Code: "700.400.580", Description: "cannot find transaction"}
	missingParam  = model.ResultData{Code: "200.300.404", Description: "invalid or missing parameter"}
)

// defaultOutcomes maps the gateway's documented test cards to their results.
var defaultOutcomes = map[string]model.ResultData{
	"4200000000000000": successResult,
	"5200000000000007": successResult,
	"340000000000009":  successResult,
	"4000000000000002": declinedVisa,
	"5100000000000016": declinedMC,
}

// Gateway simulates the payment gateway. The zero value is not usable; use
// New.
type Gateway struct {
	mu           sync.Mutex
	cardOutcomes map[string]model.ResultData
	transactions map[string]model.PaymentType
}

// New creates a gateway preloaded with the documented test-card outcomes.
func New() *Gateway {
	outcomes := make(map[string]model.ResultData, len(defaultOutcomes))
	for pan, result := range defaultOutcomes {
		outcomes[pan] = result
	}
	return &Gateway{
		cardOutcomes: outcomes,
		transactions: make(map[string]model.PaymentType),
	}
}

// SetCardOutcome overrides the result returned for a card number, letting
// tests reach any result-code family (pending, manual review, system error).
func (g *Gateway) SetCardOutcome(pan string, result model.ResultData) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cardOutcomes[pan] = result
}

// Handler returns the HTTP surface: the payments collection endpoint and the
// path-addressed endpoint for operations against an existing transaction.
func (g *Gateway) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/v1/payments", func(r chi.Router) {
		r.Post("/", g.createPayment)
		r.Post("/{referenceID}", g.referencePayment)
	})
	return r
}

func (g *Gateway) createPayment(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		http.Error(w, "access denied", http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.PostFormValue("entityId") == "" {
		g.writeResponse(w, r, "", missingParam)
		return
	}

	result := g.outcomeFor(r.PostFormValue("card.number"))

	id := uuid.NewString()
	if result == successResult {
		g.registerTransaction(id, model.PaymentType(r.PostFormValue("paymentType")))
	}

	g.writeResponse(w, r, id, result)
}

func (g *Gateway) referencePayment(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		http.Error(w, "access denied", http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	referenceID := chi.URLParam(r, "referenceID")

	g.mu.Lock()
	_, known := g.transactions[referenceID]
	g.mu.Unlock()

	if !known {
		g.writeResponse(w, r, "", unknownRef)
		return
	}

	id := uuid.NewString()
	g.registerTransaction(id, model.PaymentType(r.PostFormValue("paymentType")))
	g.writeResponse(w, r, id, successResult)
}

func (g *Gateway) outcomeFor(pan string) model.ResultData {
	g.mu.Lock()
	defer g.mu.Unlock()
	if result, ok := g.cardOutcomes[pan]; ok {
		return result
	}
	// Unknown cards succeed, matching the test environment's behavior for
	// arbitrary well-formed PANs.
	return successResult
}

func (g *Gateway) registerTransaction(id string, paymentType model.PaymentType) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transactions[id] = paymentType
}

func (g *Gateway) writeResponse(w http.ResponseWriter, r *http.Request, id string, result model.ResultData) {
	resp := model.PaymentResponse{
		ID:                    id,
		PaymentType:           model.PaymentType(r.PostFormValue("paymentType")),
		Amount:                r.PostFormValue("amount"),
		Currency:              model.Currency(r.PostFormValue("currency")),
		PaymentBrand:          model.PaymentBrand(r.PostFormValue("paymentBrand")),
		Result:                result,
		MerchantTransactionID: r.PostFormValue("merchantTransactionId"),
		Timestamp:             time.Now().UTC().Format("2006-01-02 15:04:05+0000"),
	}

	if pan := r.PostFormValue("card.number"); len(pan) >= 10 {
		resp.Card = &model.CardInfo{
			Bin:         pan[:6],
			Last4Digits: pan[len(pan)-4:],
			Holder:      r.PostFormValue("card.holder"),
			ExpiryMonth: r.PostFormValue("card.expiryMonth"),
			ExpiryYear:  r.PostFormValue("card.expiryYear"),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
