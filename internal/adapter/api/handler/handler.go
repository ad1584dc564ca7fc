package handler

import (
	"vialidades/internal/usecase"
)

var (
	authHandler         *AuthHandler
	reportHandler       *ReportHandler
	notificationHandler *NotificationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	reportUseCase *usecase.ReportUseCase,
	moderationUseCase *usecase.ModerationUseCase,
	notificationUseCase *usecase.NotificationUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	reportHandler = NewReportHandler(reportUseCase, moderationUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
