package usecase

import (
	"context"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/repository"
	"gyomutime/internal/domain/service"
	"gyomutime/pkg/errors"
)

type AdminUseCase struct {
	userAdmin       service.UserAdminService
	adminRepo       repository.AdminRepository
	superAdminEmail string
}

func NewAdminUseCase(
	userAdmin service.UserAdminService,
	adminRepo repository.AdminRepository,
	superAdminEmail string,
) *AdminUseCase {
	return &AdminUseCase{
		userAdmin:       userAdmin,
		adminRepo:       adminRepo,
		superAdminEmail: superAdminEmail,
	}
}

// IsSuperAdmin gates the single most destructive operation: granting or
// revoking the admin role itself.
func (uc *AdminUseCase) IsSuperAdmin(actor *entity.AuthUser) bool {
	return actor != nil && actor.Email != "" && actor.Email == uc.superAdminEmail
}

// BootstrapAdmin grants the first admin role to the configured address.
// Requires a verified email; no code is involved since none exists yet.
func (uc *AdminUseCase) BootstrapAdmin(ctx context.Context, actor *entity.AuthUser) error {
	if !uc.IsSuperAdmin(actor) {
		return errors.Forbidden("not allowed", nil)
	}
	if !actor.EmailVerified {
		return errors.Forbidden("email not verified", nil)
	}
	if err := uc.userAdmin.SetAdminRole(ctx, actor.UID, true); err != nil {
		return err
	}
	return uc.adminRepo.RecordAdmin(ctx, actor.Email, actor.Email)
}

// VerifyAdmin grants the admin claim to the configured admin address when
// the presented code matches the stored one.
func (uc *AdminUseCase) VerifyAdmin(ctx context.Context, actor *entity.AuthUser, code string) error {
	if code == "" {
		return errors.BadRequest("code required", nil)
	}
	if !uc.IsSuperAdmin(actor) {
		return errors.Forbidden("admin email required", nil)
	}

	stored, err := uc.adminRepo.GetAdminCode(ctx)
	if err != nil {
		if errors.Is(err, "not_found") {
			return errors.Forbidden("admin code not set", nil)
		}
		return err
	}
	if code != stored {
		return errors.Unauthorized("invalid code", nil)
	}
	if !actor.EmailVerified {
		return errors.Forbidden("email not verified", nil)
	}

	if err := uc.userAdmin.SetAdminRole(ctx, actor.UID, true); err != nil {
		return err
	}
	return uc.adminRepo.RecordAdmin(ctx, actor.Email, actor.Email)
}

// SetAdmin grants or revokes the admin claim for an arbitrary user.
// Super-admin only.
func (uc *AdminUseCase) SetAdmin(ctx context.Context, actor *entity.AuthUser, email string, make bool) error {
	if !uc.IsSuperAdmin(actor) {
		return errors.Forbidden("Only superadmin can call this", nil)
	}
	if email == "" {
		return errors.BadRequest("email required", nil)
	}

	uid, err := uc.userAdmin.GetUserUIDByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := uc.userAdmin.SetAdminRole(ctx, uid, make); err != nil {
		return err
	}

	if make {
		return uc.adminRepo.RecordAdmin(ctx, email, actor.Email)
	}
	return uc.adminRepo.RemoveAdmin(ctx, email)
}

// SetAdminCode rotates the stored verification code. Super-admin only.
func (uc *AdminUseCase) SetAdminCode(ctx context.Context, actor *entity.AuthUser, code string) error {
	if !uc.IsSuperAdmin(actor) {
		return errors.Forbidden("Only superadmin can call this", nil)
	}
	if len(code) < 4 {
		return errors.BadRequest("valid code required", nil)
	}
	return uc.adminRepo.SetAdminCode(ctx, code, actor.Email)
}

type UserSearchResult struct {
	Users         []entity.UserRecord `json:"users"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

func (uc *AdminUseCase) SearchUsers(ctx context.Context, query, pageToken string, limit int) (*UserSearchResult, error) {
	users, nextToken, err := uc.userAdmin.SearchUsers(ctx, query, pageToken, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.UserRecord{}
	}
	return &UserSearchResult{Users: users, NextPageToken: nextToken}, nil
}
