package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T, gdb *gorm.DB) *UserService {
	t.Helper()
	rbac := NewRBACService(gdb, nil, 0, nil)
	require.NoError(t, rbac.SeedDefaults(context.Background()))
	tokens := auth.NewTokenService("test-secret-test-secret-test-secret", time.Hour)
	return NewUserService(gdb, tokens, rbac, nil)
}

func TestLogin_Flow(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := newUserService(t, gdb)
	ctx := context.Background()

	user, err := svc.Create(ctx, &requests.CreateUserRequest{
		Username: "grace",
		Password: "correct-horse",
		FullName: "Grace Ninsiima",
		Role:     constants.RoleManager,
		District: constants.DistrictKabarole,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	_, err = svc.Login(ctx, &requests.LoginRequest{Username: "grace", Password: "wrong-password"})
	var authErr *apperr.AuthError
	require.True(t, errors.As(err, &authErr))
	wrongPassword := authErr.Message

	_, err = svc.Login(ctx, &requests.LoginRequest{Username: "nobody", Password: "correct-horse"})
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, wrongPassword, authErr.Message, "unknown user and bad password look the same")

	resp, err := svc.Login(ctx, &requests.LoginRequest{Username: " grace ", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	require.NotNil(t, resp.User.LastLoginAt)

	claims, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, constants.RoleManager, claims.Role)

	me, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Contains(t, me.Permissions, "businesses:create")
	assert.NotContains(t, me.Permissions, "roles:update")
}

func TestAuthenticate_UsesCurrentRoleAndStatus(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := newUserService(t, gdb)
	ctx := context.Background()

	user, err := svc.Create(ctx, &requests.CreateUserRequest{Username: "henry", Password: "password123", Role: constants.RoleManager})
	require.NoError(t, err)
	resp, err := svc.Login(ctx, &requests.LoginRequest{Username: "henry", Password: "password123"})
	require.NoError(t, err)

	demoted := constants.RoleUser
	_, err = svc.Update(ctx, user.ID, &requests.UpdateUserRequest{Role: &demoted})
	require.NoError(t, err)

	claims, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleUser, claims.Role)

	require.NoError(t, svc.Deactivate(ctx, user.ID))
	require.NoError(t, svc.Deactivate(ctx, user.ID))

	_, err = svc.Authenticate(ctx, resp.Token)
	var authErr *apperr.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, constants.MsgInactiveAccount, authErr.Message)

	_, err = svc.Login(ctx, &requests.LoginRequest{Username: "henry", Password: "password123"})
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, constants.MsgInactiveAccount, authErr.Message)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.True(t, errors.As(err, &authErr))
}

func TestUser_UpdatePasswordAndDuplicates(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := newUserService(t, gdb)
	ctx := context.Background()

	user, err := svc.Create(ctx, &requests.CreateUserRequest{Username: "irene", Password: "first-password", Role: constants.RoleMentor})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &requests.CreateUserRequest{Username: "irene", Password: "another-pass", Role: constants.RoleMentor})
	var conflict *apperr.ConflictError
	assert.True(t, errors.As(err, &conflict))

	_, err = svc.Create(ctx, &requests.CreateUserRequest{Username: "jo", Password: "short", Role: "superuser"})
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "role")

	newPassword := "second-password"
	_, err = svc.Update(ctx, user.ID, &requests.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &requests.LoginRequest{Username: "irene", Password: "first-password"})
	assert.Error(t, err)
	_, err = svc.Login(ctx, &requests.LoginRequest{Username: "irene", Password: newPassword})
	assert.NoError(t, err)
}

func TestUser_ListHidesInactive(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := newUserService(t, gdb)
	ctx := context.Background()

	testutil.CreateUser(t, gdb, "active", constants.RoleUser)
	gone := testutil.CreateUser(t, gdb, "gone", constants.RoleUser)
	require.NoError(t, gdb.Model(&gormModels.User{}).Where("id = ?", gone.ID).Update("is_active", false).Error)

	page, err := svc.List(ctx, false, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = svc.List(ctx, true, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}
