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

// DeviceHandler holds dependencies for push device registration handlers.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(deviceUC usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{deviceUC: deviceUC}
}

type registerDeviceRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice upserts a push device token for the caller.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	var input registerDeviceRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.deviceUC.RegisterDevice(c.Request().Context(), usecase.RegisterDeviceInput{
		UserID:   userID,
		Token:    input.Token,
		Platform: input.Platform,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device registered")
}

type unregisterDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

// UnregisterDevice removes a push device token.
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	if _, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	var input unregisterDeviceRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device unregistered")
}
