// Command vrpay-demo walks the payment operation lifecycle against the
// gateway: a successful pre-authorization with capture, a declined card, and
// a reversal.
//
// Configuration comes from VRPAY_BASE_URL, VRPAY_ENTITY_ID and
// VRPAY_ACCESS_TOKEN (a .env file is honored). When no base URL is
// configured, a simulated gateway is started in-process so the demo runs
// offline.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"

	vrpay "github.com/intpay/vrpay-go"
	"github.com/intpay/vrpay-go/internal/gatewaysim"
	"github.com/intpay/vrpay-go/model"
	"github.com/intpay/vrpay-go/vrpaytest"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := vrpay.Config{
		BaseURL:       os.Getenv("VRPAY_BASE_URL"),
		EntityID:      os.Getenv("VRPAY_ENTITY_ID"),
		AccessToken:   os.Getenv("VRPAY_ACCESS_TOKEN"),
		UseTestMode:   true,
		TestModeValue: model.TestModeExternal,
		Logger:        logger,
	}

	if cfg.BaseURL == "" {
		srv := httptest.NewServer(gatewaysim.New().Handler())
		defer srv.Close()
		cfg.BaseURL = srv.URL
		cfg.EntityID = "8a8294174e735d0c014e78beb6b9154b"
		cfg.AccessToken = "Bearer demo-token"
		slog.Info("using_simulated_gateway", "base_url", cfg.BaseURL)
	}

	client, err := vrpay.New(cfg)
	if err != nil {
		slog.Error("client_configuration_invalid", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fmt.Println("=== VR-Pay client demo ===")
	runSuccessfulLifecycle(ctx, client)
	runDeclinedCard(ctx, client)
	runReversal(ctx, client)
	fmt.Println("=== demo complete ===")
}

func runSuccessfulLifecycle(ctx context.Context, client *vrpay.Client) {
	fmt.Println("\n1. Pre-authorization with a valid card, then capture")

	req := vrpaytest.SuccessfulRequest(decimal.RequireFromString("92.00"), model.EUR, model.Visa)
	preAuth, err := client.PreAuthorize(ctx, req)
	if err != nil {
		fmt.Printf("   pre-authorization failed: %v\n", err)
		return
	}
	fmt.Printf("   pre-authorized: id=%s code=%s status=%s\n",
		preAuth.ID, preAuth.Result.Code, preAuth.Status())

	capture, err := client.Capture(ctx, preAuth.ID, decimal.RequireFromString("92.00"), model.EUR)
	if err != nil {
		fmt.Printf("   capture failed: %v\n", err)
		return
	}
	fmt.Printf("   captured: id=%s code=%s amount=%s %s\n",
		capture.ID, capture.Result.Code, capture.Amount, capture.Currency)
}

func runDeclinedCard(ctx context.Context, client *vrpay.Client) {
	fmt.Println("\n2. Pre-authorization with a declined card")

	req := vrpaytest.DeclinedRequest(decimal.RequireFromString("50.00"), model.EUR, model.Visa)
	_, err := client.PreAuthorize(ctx, req)

	var declined *vrpay.DeclinedError
	switch {
	case errors.As(err, &declined):
		fmt.Printf("   declined as expected: code=%s retriable=%t\n",
			declined.ResultCode, declined.CanRetry())
	case err != nil:
		fmt.Printf("   unexpected error: %v\n", err)
	default:
		fmt.Println("   unexpectedly approved")
	}
}

func runReversal(ctx context.Context, client *vrpay.Client) {
	fmt.Println("\n3. Pre-authorization followed by reversal")

	req := vrpaytest.SuccessfulRequest(decimal.RequireFromString("15.00"), model.EUR, model.Mastercard)
	preAuth, err := client.PreAuthorize(ctx, req)
	if err != nil {
		fmt.Printf("   pre-authorization failed: %v\n", err)
		return
	}

	reversal, err := client.Reverse(ctx, preAuth.ID, decimal.RequireFromString("15.00"), model.EUR)
	if err != nil {
		fmt.Printf("   reversal failed: %v\n", err)
		return
	}
	fmt.Printf("   reversed: id=%s code=%s\n", reversal.ID, reversal.Result.Code)
}
