package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/pkg/errors"

	"github.com/google/uuid"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()

	_, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := r.client.Collection("notifications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Notification", err)
		}
		return nil, errors.Internal("Failed to get notification", err)
	}

	var notification entity.Notification
	if err := doc.DataTo(&notification); err != nil {
		return nil, errors.Internal("Failed to parse notification data", err)
	}

	return &notification, nil
}

func (r *firestoreNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	query := r.client.Collection("notifications").
		Where("userId", "==", userID).
		Where("deleted", "==", false).
		OrderBy("createdAt", firestore.Desc)

	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var notifications []*entity.Notification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, errors.Internal("Failed to parse notification data", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

func (r *firestoreNotificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	_, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to update notification", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	iter := r.client.Collection("notifications").
		Where("userId", "==", userID).
		Where("read", "==", false).
		Documents(ctx)

	batch := r.client.Batch()
	count := 0

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to query unread notifications", err)
		}

		batch.Update(doc.Ref, []firestore.Update{{Path: "read", Value: true}})
		count++
	}

	if count == 0 {
		return nil
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to mark notifications as read", err)
	}

	return nil
}
