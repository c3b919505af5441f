package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyomutime/internal/domain/entity"
	"gyomutime/pkg/errors"
)

const superEmail = "principal@school.example.com"

func newAdminUseCase() (*AdminUseCase, *fakeUserAdmin, *fakeAdminRepo) {
	userAdmin := newFakeUserAdmin()
	adminRepo := newFakeAdminRepo()
	return NewAdminUseCase(userAdmin, adminRepo, superEmail), userAdmin, adminRepo
}

func superAdmin() *entity.AuthUser {
	return &entity.AuthUser{UID: "super", Email: superEmail, EmailVerified: true, Role: "user"}
}

func TestIsSuperAdmin(t *testing.T) {
	uc, _, _ := newAdminUseCase()

	assert.True(t, uc.IsSuperAdmin(superAdmin()))
	assert.False(t, uc.IsSuperAdmin(user("someone")))
	assert.False(t, uc.IsSuperAdmin(nil))
	assert.False(t, uc.IsSuperAdmin(&entity.AuthUser{UID: "x"}))
}

func TestBootstrapAdmin(t *testing.T) {
	uc, userAdmin, adminRepo := newAdminUseCase()
	ctx := context.Background()

	err := uc.BootstrapAdmin(ctx, user("someone"))
	assert.True(t, errors.Is(err, "forbidden"))

	unverified := superAdmin()
	unverified.EmailVerified = false
	err = uc.BootstrapAdmin(ctx, unverified)
	assert.True(t, errors.Is(err, "forbidden"))

	require.NoError(t, uc.BootstrapAdmin(ctx, superAdmin()))
	assert.True(t, userAdmin.roles["super"])
	assert.Contains(t, adminRepo.admins, superEmail)
}

func TestVerifyAdmin(t *testing.T) {
	uc, userAdmin, adminRepo := newAdminUseCase()
	ctx := context.Background()

	err := uc.VerifyAdmin(ctx, superAdmin(), "")
	assert.True(t, errors.Is(err, "bad_request"))

	err = uc.VerifyAdmin(ctx, user("someone"), "1234")
	assert.True(t, errors.Is(err, "forbidden"))

	// No code stored yet.
	err = uc.VerifyAdmin(ctx, superAdmin(), "1234")
	assert.True(t, errors.Is(err, "forbidden"))

	adminRepo.code = "9999"
	err = uc.VerifyAdmin(ctx, superAdmin(), "1234")
	assert.True(t, errors.Is(err, "unauthorized"))

	require.NoError(t, uc.VerifyAdmin(ctx, superAdmin(), "9999"))
	assert.True(t, userAdmin.roles["super"])
}

func TestSetAdmin(t *testing.T) {
	uc, userAdmin, adminRepo := newAdminUseCase()
	ctx := context.Background()
	userAdmin.uidsByEmail["teacher@school.example.com"] = "uid-teacher"

	err := uc.SetAdmin(ctx, user("someone"), "teacher@school.example.com", true)
	assert.True(t, errors.Is(err, "forbidden"))

	err = uc.SetAdmin(ctx, superAdmin(), "unknown@school.example.com", true)
	assert.True(t, errors.Is(err, "not_found"))

	require.NoError(t, uc.SetAdmin(ctx, superAdmin(), "teacher@school.example.com", true))
	assert.True(t, userAdmin.roles["uid-teacher"])
	assert.Contains(t, adminRepo.admins, "teacher@school.example.com")

	require.NoError(t, uc.SetAdmin(ctx, superAdmin(), "teacher@school.example.com", false))
	assert.False(t, userAdmin.roles["uid-teacher"])
	assert.NotContains(t, adminRepo.admins, "teacher@school.example.com")
}

func TestSetAdminCode(t *testing.T) {
	uc, _, adminRepo := newAdminUseCase()
	ctx := context.Background()

	err := uc.SetAdminCode(ctx, user("someone"), "9999")
	assert.True(t, errors.Is(err, "forbidden"))

	err = uc.SetAdminCode(ctx, superAdmin(), "12")
	assert.True(t, errors.Is(err, "bad_request"))

	require.NoError(t, uc.SetAdminCode(ctx, superAdmin(), "959595"))
	assert.Equal(t, "959595", adminRepo.code)
}

func TestSearchUsersNeverReturnsNil(t *testing.T) {
	uc, _, _ := newAdminUseCase()

	result, err := uc.SearchUsers(context.Background(), "", "", 20)
	require.NoError(t, err)
	assert.NotNil(t, result.Users)
}
