package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/delivery/http/response"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderWebhookSignature carries the HMAC signature over the raw body.
const HeaderWebhookSignature = "X-Webhook-Signature"

// WebhookHandler receives callbacks from the payment gateway and the video
// processing pipeline. Both are signed; unsigned payloads are dropped.
type WebhookHandler struct {
	purchaseUC usecase.PurchaseUsecase
	chapterUC  usecase.ChapterUsecase
	verifier   service.WebhookVerifier
	logger     *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(
	purchaseUC usecase.PurchaseUsecase,
	chapterUC usecase.ChapterUsecase,
	verifier service.WebhookVerifier,
	logger *slog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		purchaseUC: purchaseUC,
		chapterUC:  chapterUC,
		verifier:   verifier,
		logger:     logger,
	}
}

type paymentWebhookPayload struct {
	BillID string `json:"bill_id"`
	Status string `json:"status"`
}

// HandlePayment settles a purchase from a gateway notification.
func (h *WebhookHandler) HandlePayment(c echo.Context) error {
	body, err := h.verifiedBody(c)
	if err != nil {
		return err
	}

	var payload paymentWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed webhook payload")
	}
	if payload.BillID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing bill ID")
	}

	if err := h.purchaseUC.HandleWebhook(c.Request().Context(), usecase.WebhookInput{
		BillID: payload.BillID,
		Status: payload.Status,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Webhook processed")
}

type videoWebhookPayload struct {
	VideoKey string `json:"video_key"`
	AssetID  string `json:"asset_id"`
}

// HandleVideoAsset records the processed asset ID for a chapter's upload.
func (h *WebhookHandler) HandleVideoAsset(c echo.Context) error {
	body, err := h.verifiedBody(c)
	if err != nil {
		return err
	}

	var payload videoWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Malformed webhook payload")
	}

	if err := h.chapterUC.ConfirmVideoAsset(c.Request().Context(), payload.VideoKey, payload.AssetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Webhook processed")
}

// verifiedBody reads the raw body and checks its signature header.
func (h *WebhookHandler) verifiedBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Failed to read body")
	}

	signature := c.Request().Header.Get(HeaderWebhookSignature)
	if err := h.verifier.Verify(body, signature); err != nil {
		log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
		log.Warn("Webhook signature rejected", slog.String("remote_ip", c.RealIP()))

		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid signature")
	}

	return body, nil
}
