package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vialidades/internal/domain/entity"
)

func TestBuildModerationNotificationApproval(t *testing.T) {
	user := &entity.User{ID: "u1"}
	report := &entity.Report{ID: "r1", Type: "Accidente"}

	notification := BuildModerationNotification(user, report, Decision{Status: entity.ReportStatusApproved})

	assert.Equal(t, "u1", notification.UserID)
	assert.Equal(t, entity.NotificationTypeSuccess, notification.Type)
	assert.Equal(t, "r1", notification.RelatedReportID)
	assert.Contains(t, notification.Message, "Accidente")
	assert.Contains(t, notification.Message, "APROBADO")
}

func TestBuildModerationNotificationRejection(t *testing.T) {
	user := &entity.User{ID: "u1"}
	report := &entity.Report{ID: "r1", Type: "Tráfico"}

	notification := BuildModerationNotification(user, report, Decision{
		Status: entity.ReportStatusRejected,
		Reason: "duplicado",
	})

	assert.Equal(t, entity.NotificationTypeError, notification.Type)
	assert.Contains(t, notification.Message, "RECHAZADO")
	assert.Contains(t, notification.Message, "duplicado")
}

func TestBuildModerationNotificationRejectionWithoutReason(t *testing.T) {
	user := &entity.User{ID: "u1"}
	report := &entity.Report{ID: "r1", Type: "Tráfico"}

	notification := BuildModerationNotification(user, report, Decision{Status: entity.ReportStatusRejected})

	assert.Equal(t, entity.NotificationTypeError, notification.Type)
	assert.NotContains(t, notification.Message, "Razón")
}

func TestBuildModerationNotificationSanction(t *testing.T) {
	user := &entity.User{ID: "u1", Sanctions: 1}
	report := &entity.Report{ID: "r1", Type: "Accidente"}

	notification := BuildModerationNotification(user, report, Decision{
		Status:   entity.ReportStatusRejected,
		Sanction: true,
		Reason:   "fake report",
	})

	assert.Equal(t, entity.NotificationTypeWarning, notification.Type)
	assert.Contains(t, notification.Message, "SANCIONADO")
	assert.Contains(t, notification.Message, "fake report")
	assert.Contains(t, notification.Message, "1/3")
}

func TestBuildModerationNotificationSanctionDefaultReason(t *testing.T) {
	user := &entity.User{ID: "u1", Sanctions: 3}
	report := &entity.Report{ID: "r1", Type: "Accidente"}

	notification := BuildModerationNotification(user, report, Decision{
		Status:   entity.ReportStatusRejected,
		Sanction: true,
	})

	assert.Contains(t, notification.Message, defaultSanctionReason)
	assert.Contains(t, notification.Message, "3/3")
}
