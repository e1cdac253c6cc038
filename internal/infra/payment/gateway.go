// Package payment integrates the external billing gateway.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"academy/config"
	"academy/internal/domain/service"
)

// gateway implements service.PaymentGateway over the provider's HTTP API.
type gateway struct {
	baseURL    string
	apiKey     string
	successURL string
	failURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGateway is the constructor for gateway.
func NewGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.BaseURL == "" {
		return nil, errors.New("payment config must be provided")
	}

	return &gateway{
		baseURL:    cfg.Payment.BaseURL,
		apiKey:     cfg.Payment.APIKey,
		successURL: cfg.Payment.SuccessURL,
		failURL:    cfg.Payment.FailURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}, nil
}

type createBillRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	OrderID     string `json:"order_id"`
	SuccessURL  string `json:"success_url"`
	FailURL     string `json:"fail_url"`
}

type billResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	PaymentURL string `json:"payment_url"`
}

// CreateBill opens a bill for the given amount in minor units.
func (g *gateway) CreateBill(ctx context.Context, purchaseID uuid.UUID, amount int64, description string) (*service.Bill, error) {
	reqBody := createBillRequest{
		Amount:      amount,
		Currency:    "USD",
		Description: description,
		OrderID:     purchaseID.String(),
		SuccessURL:  g.successURL,
		FailURL:     g.failURL,
	}

	var resp billResponse
	if err := g.do(ctx, http.MethodPost, "/bills", reqBody, &resp); err != nil {
		return nil, errors.Wrap(err, "create bill")
	}

	g.logger.Info("payment bill created",
		slog.String("purchaseID", purchaseID.String()),
		slog.String("billID", resp.ID))

	return &service.Bill{
		ID:         resp.ID,
		PaymentURL: resp.PaymentURL,
	}, nil
}

// GetBillStatus re-verifies a bill directly with the gateway.
func (g *gateway) GetBillStatus(ctx context.Context, billID string) (*service.BillStatus, error) {
	var resp billResponse
	if err := g.do(ctx, http.MethodGet, "/bills/"+billID, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "get bill status")
	}

	return &service.BillStatus{
		ID:     resp.ID,
		Status: resp.Status,
		Paid:   resp.Status == "PAID",
	}, nil
}

func (g *gateway) do(ctx context.Context, method, path string, reqBody, out any) error {
	var body io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return errors.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call gateway")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)

		return errors.Errorf("gateway error: status=%d body=%s", resp.StatusCode, respBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
