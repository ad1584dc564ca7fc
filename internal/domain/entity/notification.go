package entity

import (
	"time"
)

const (
	NotificationTypeInfo    = "info"
	NotificationTypeSuccess = "success"
	NotificationTypeWarning = "warning"
	NotificationTypeError   = "error"
)

// Notification dibuat oleh workflow moderasi dan setelah itu hanya
// diubah oleh penerimanya (tandai dibaca, soft delete)
type Notification struct {
	ID              string    `json:"id" firestore:"id"`
	UserID          string    `json:"user_id" firestore:"userId"`
	Type            string    `json:"type" firestore:"type"`
	Message         string    `json:"message" firestore:"message"`
	Read            bool      `json:"read" firestore:"read"`
	Deleted         bool      `json:"deleted" firestore:"deleted"`
	RelatedReportID string    `json:"related_report_id,omitempty" firestore:"relatedReportId,omitempty"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
}
