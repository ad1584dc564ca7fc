package router

import (
	"vialidades/internal/adapter/api/handler"
	"vialidades/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")

	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	auth.GET("/me", authHandler.GetCurrentUser, authMiddleware.Authenticate)
	auth.PATCH("/profile", authHandler.UpdateProfile, authMiddleware.Authenticate)
}
