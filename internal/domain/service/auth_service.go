package service

import (
	"context"

	"gyomutime/internal/domain/entity"
)

// TokenVerifier establishes the caller's identity from a bearer token.
// Failure modes are reported as distinct AppError codes (token_expired,
// token_revoked, invalid_token, authentication_failed).
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*entity.AuthUser, error)
}

// UserAdminService wraps identity-provider administration: role claims and
// directory lookups. Role grants take effect on the next token refresh.
type UserAdminService interface {
	SetAdminRole(ctx context.Context, uid string, admin bool) error
	GetUserUIDByEmail(ctx context.Context, email string) (string, error)
	SearchUsers(ctx context.Context, query, pageToken string, limit int) ([]entity.UserRecord, string, error)
}
