package router

import (
	"vialidades/internal/adapter/api/handler"
	"vialidades/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)

	notifications.GET("", notificationHandler.ListNotifications)
	notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.DeleteNotification)
}
