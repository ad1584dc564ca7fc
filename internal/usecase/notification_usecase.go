package usecase

import (
	"context"

	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/pkg/errors"
)

// listNotificationLimit caps the inbox to the most recent entries
const listNotificationLimit = 20

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) ListNotifications(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByUser(ctx, userID, listNotificationLimit)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) (*entity.Notification, error) {
	notification, err := uc.getOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	notification.Read = true
	if err := uc.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete soft-deletes a notification; the document stays around but
// disappears from listings
func (uc *NotificationUseCase) Delete(ctx context.Context, userID, notificationID string) error {
	notification, err := uc.getOwned(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	notification.Deleted = true
	return uc.notificationRepo.Update(ctx, notification)
}

func (uc *NotificationUseCase) getOwned(ctx context.Context, userID, notificationID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.UserID != userID {
		return nil, errors.Unauthorized("Not authorized", nil)
	}

	return notification, nil
}
