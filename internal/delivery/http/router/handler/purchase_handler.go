package handler

import (
	"net/http"

	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/response"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for purchase handlers.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(purchaseUC usecase.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC}
}

// Checkout opens a gateway bill for a course and returns the hosted payment page.
func (h *PurchaseHandler) Checkout(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	output, err := h.purchaseUC.Checkout(c.Request().Context(), userID, courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"purchase":    output.Purchase,
		"payment_url": output.PaymentURL,
	}, "Checkout created")
}

// ListMyPurchases lists the caller's purchases.
func (h *PurchaseHandler) ListMyPurchases(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	purchases, err := h.purchaseUC.ListMyPurchases(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "Purchases retrieved")
}
