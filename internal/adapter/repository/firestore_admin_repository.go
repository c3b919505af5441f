package repository

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloud.google.com/go/firestore"

	"gyomutime/internal/domain/repository"
	"gyomutime/pkg/errors"
)

const (
	adminConfigDoc  = "config/admin"
	adminCollection = "admins"
)

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) GetAdminCode(ctx context.Context) (string, error) {
	doc, err := r.client.Doc(adminConfigDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", errors.NotFound("Admin code", err)
		}
		return "", errors.Internal("Failed to read admin code", err)
	}

	code, err := doc.DataAt("code")
	if err != nil {
		return "", errors.NotFound("Admin code", err)
	}
	str, ok := code.(string)
	if !ok || str == "" {
		return "", errors.NotFound("Admin code", nil)
	}
	return str, nil
}

func (r *firestoreAdminRepository) SetAdminCode(ctx context.Context, code, updatedBy string) error {
	_, err := r.client.Doc(adminConfigDoc).Set(ctx, map[string]interface{}{
		"code":      code,
		"updatedBy": updatedBy,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to store admin code", err)
	}
	return nil
}

func (r *firestoreAdminRepository) RecordAdmin(ctx context.Context, email, addedBy string) error {
	_, err := r.client.Collection(adminCollection).Doc(email).Set(ctx, map[string]interface{}{
		"email":   email,
		"addedBy": addedBy,
		"addedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to record admin", err)
	}
	return nil
}

func (r *firestoreAdminRepository) RemoveAdmin(ctx context.Context, email string) error {
	_, err := r.client.Collection(adminCollection).Doc(email).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove admin", err)
	}
	return nil
}
