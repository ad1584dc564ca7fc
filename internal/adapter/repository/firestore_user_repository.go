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
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("User", nil)
		}
		return nil, errors.Internal("Failed to query user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}
