package repository

import (
	"context"

	"vialidades/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	// ListByUser returns the recipient's notifications, newest first,
	// excluding soft-deleted ones
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
	MarkAllRead(ctx context.Context, userID string) error
}
