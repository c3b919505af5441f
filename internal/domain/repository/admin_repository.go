package repository

import (
	"context"
)

// AdminRepository stores the admin verification code and the audit roster of
// granted admin emails.
type AdminRepository interface {
	GetAdminCode(ctx context.Context) (string, error)
	SetAdminCode(ctx context.Context, code, updatedBy string) error
	RecordAdmin(ctx context.Context, email, addedBy string) error
	RemoveAdmin(ctx context.Context, email string) error
}
