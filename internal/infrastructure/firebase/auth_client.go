package firebase

import (
	"context"
	"strings"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"gyomutime/internal/domain/entity"
	"gyomutime/pkg/errors"
)

type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyIDToken verifies the bearer token and checks revocation. Expired,
// revoked and structurally malformed tokens each map to their own error
// code so clients can pick refresh-and-retry versus forced re-login.
func (f *AuthClient) VerifyIDToken(ctx context.Context, idToken string) (*entity.AuthUser, error) {
	if strings.Count(idToken, ".") != 2 {
		return nil, errors.InvalidToken(nil)
	}

	token, err := f.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		switch {
		case auth.IsIDTokenExpired(err):
			return nil, errors.TokenExpired(err)
		case auth.IsIDTokenRevoked(err):
			return nil, errors.TokenRevoked(err)
		case auth.IsIDTokenInvalid(err):
			return nil, errors.InvalidToken(err)
		default:
			return nil, errors.AuthenticationFailed(err)
		}
	}

	user := &entity.AuthUser{
		UID:    token.UID,
		Claims: token.Claims,
	}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}
	if role, ok := token.Claims["role"].(string); ok {
		user.Role = role
	}
	return user, nil
}

// SetAdminRole grants or clears the admin custom claim. Clearing writes an
// empty claim set, matching how the role was granted.
func (f *AuthClient) SetAdminRole(ctx context.Context, uid string, admin bool) error {
	claims := map[string]interface{}{}
	if admin {
		claims["role"] = "admin"
	}
	if err := f.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return errors.Internal("Failed to set role claim", err)
	}
	return nil
}

func (f *AuthClient) GetUserUIDByEmail(ctx context.Context, email string) (string, error) {
	user, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", errors.NotFound("User", err)
		}
		return "", errors.Internal("Failed to look up user", err)
	}
	return user.UID, nil
}

const (
	maxSearchLimit = 50
	maxScanPages   = 10
	scanPageSize   = 1000
)

// SearchUsers pages through the identity provider's directory. Without a
// query it returns one page straight; with a query it scans a bounded
// number of pages and filters by email/display-name substring.
func (f *AuthClient) SearchUsers(ctx context.Context, query, pageToken string, limit int) ([]entity.UserRecord, string, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if query == "" {
		pager := iterator.NewPager(f.client.Users(ctx, ""), limit, pageToken)
		var page []*auth.ExportedUserRecord
		nextToken, err := pager.NextPage(&page)
		if err != nil {
			return nil, "", errors.Internal("Failed to list users", err)
		}
		return toUserRecords(page), nextToken, nil
	}

	needle := strings.ToLower(query)
	token := pageToken
	var out []entity.UserRecord
	for pages := 0; pages < maxScanPages; pages++ {
		pager := iterator.NewPager(f.client.Users(ctx, ""), scanPageSize, token)
		var page []*auth.ExportedUserRecord
		nextToken, err := pager.NextPage(&page)
		if err != nil {
			return nil, "", errors.Internal("Failed to list users", err)
		}
		for _, u := range page {
			email := strings.ToLower(u.Email)
			name := strings.ToLower(u.DisplayName)
			if strings.Contains(email, needle) || strings.Contains(name, needle) {
				out = append(out, toUserRecord(u))
				if len(out) >= limit {
					return out, nextToken, nil
				}
			}
		}
		if nextToken == "" {
			return out, "", nil
		}
		token = nextToken
	}
	return out, "", nil
}

func toUserRecords(users []*auth.ExportedUserRecord) []entity.UserRecord {
	out := make([]entity.UserRecord, 0, len(users))
	for _, u := range users {
		out = append(out, toUserRecord(u))
	}
	return out
}

func toUserRecord(u *auth.ExportedUserRecord) entity.UserRecord {
	rec := entity.UserRecord{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Disabled:    u.Disabled,
	}
	if role, ok := u.CustomClaims["role"].(string); ok {
		rec.Role = role
	}
	return rec
}
