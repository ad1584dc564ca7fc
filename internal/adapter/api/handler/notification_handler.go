package handler

import (
	"github.com/labstack/echo/v4"

	"vialidades/internal/usecase"
	"vialidades/pkg/errors"
	"vialidades/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID := c.Get("uid").(string)

	notifications, err := h.notificationUseCase.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notifications)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notificationID := c.Param("id")
	if notificationID == "" {
		return response.Error(c, errors.BadRequest("Notification ID is required", nil))
	}

	userID := c.Get("uid").(string)

	notification, err := h.notificationUseCase.MarkRead(c.Request().Context(), userID, notificationID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notification)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	notificationID := c.Param("id")
	if notificationID == "" {
		return response.Error(c, errors.BadRequest("Notification ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.notificationUseCase.Delete(c.Request().Context(), userID, notificationID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Notification deleted"})
}
