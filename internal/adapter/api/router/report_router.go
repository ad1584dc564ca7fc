package router

import (
	"vialidades/internal/adapter/api/handler"
	"vialidades/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, moderatorMiddleware *middleware.ModeratorMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	reportHandler := handler.GetReportHandler()

	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)

	reports.POST("", reportHandler.CreateReport, rateLimitMiddleware.Limit("create_report"))
	reports.GET("", reportHandler.ListReports)
	reports.GET("/:id", reportHandler.GetReport)

	// Moderation: moderators and admins only
	reports.PATCH("/:id/moderate", reportHandler.ModerateReport,
		moderatorMiddleware.ModeratorOnly,
		rateLimitMiddleware.Limit("moderate_report"),
	)
}
