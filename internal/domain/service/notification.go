package service

import (
	"fmt"

	"vialidades/internal/domain/entity"
)

const defaultSanctionReason = "Violación de normas"

// BuildModerationNotification menyusun pesan hasil moderasi untuk
// penulis laporan. Call after ApplyReputation so the sanction count in
// the message reflects the new total.
func BuildModerationNotification(user *entity.User, report *entity.Report, decision Decision) *entity.Notification {
	notifType := entity.NotificationTypeError
	verdict := "RECHAZADO ❌"
	if decision.IsApproval() {
		notifType = entity.NotificationTypeSuccess
		verdict = "APROBADO ✅"
	}
	message := fmt.Sprintf("Tu reporte de %s ha sido %s.", report.Type, verdict)

	if decision.IsSanction() {
		reason := decision.Reason
		if reason == "" {
			reason = defaultSanctionReason
		}
		notifType = entity.NotificationTypeWarning
		message = fmt.Sprintf(
			"⚠️ HAS SIDO SANCIONADO. Tu reporte de %s fue rechazado. Razón: %s. Se te han restado puntos y tienes una falta (Total: %d/%d).",
			report.Type, reason, user.Sanctions, entity.SanctionLimit,
		)
	} else if !decision.IsApproval() && decision.Reason != "" {
		message += " Razón: " + decision.Reason
	}

	return &entity.Notification{
		UserID:          user.ID,
		Type:            notifType,
		Message:         message,
		RelatedReportID: report.ID,
	}
}
