package router

import (
	"vialidades/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, moderatorMiddleware *middleware.ModeratorMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupReportRouter(e, authMiddleware, moderatorMiddleware, rateLimitMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
