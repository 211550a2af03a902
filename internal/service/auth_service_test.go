package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/config"
	"github.com/spec-kit/realestate-service/internal/domain"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
		BcryptCost:      10,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users, newFakeRevocationList(), zap.NewNop())
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, "Alice Agent", "  Alice@Example.COM ", "supersafe123", "+1555000")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.Active)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	loggedIn, token, _, err := svc.Login(ctx, "alice@example.com", "supersafe123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotNil(t, loggedIn.LastLogin)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), nil, zap.NewNop())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "", "a@b.com", "supersafe123", "")
	requireStatus(t, err, 400)

	_, _, _, err = svc.Register(ctx, "Alice", "a@b.com", "short", "")
	requireStatus(t, err, 400)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), nil, zap.NewNop())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "supersafe123", "")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "Other Alice", "ALICE@example.com", "differentpass", "")
	requireStatus(t, err, 409)
}

// unknown email and wrong password must be indistinguishable so responses
// cannot be used to enumerate accounts.
func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users, nil, zap.NewNop())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Real User", "real@x.com", "supersafe123", "")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "unknown@x.com", "anything")
	_, _, _, wrongErr := svc.Login(ctx, "real@x.com", "wrongpassword")

	unknownDomain := apperrors.ToDomainError(unknownErr)
	wrongDomain := apperrors.ToDomainError(wrongErr)
	require.NotNil(t, unknownDomain)
	require.NotNil(t, wrongDomain)
	assert.Equal(t, 401, unknownDomain.HTTPStatus)
	assert.Equal(t, wrongDomain.HTTPStatus, unknownDomain.HTTPStatus)
	assert.Equal(t, wrongDomain.Message, unknownDomain.Message)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users, nil, zap.NewNop())
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Gone User", "gone@x.com", "supersafe123", "")
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	stored.Active = false
	require.NoError(t, users.Update(ctx, stored))

	_, _, _, err = svc.Login(ctx, "gone@x.com", "supersafe123")
	requireStatus(t, err, 401)
}

func TestLogoutRevokesToken(t *testing.T) {
	users := newFakeUserRepo()
	revoked := newFakeRevocationList()
	svc := NewAuthService(testAuthConfig(), users, revoked, zap.NewNop())
	ctx := context.Background()

	_, token, exp, err := svc.Register(ctx, "Alice", "alice@example.com", "supersafe123", "")
	require.NoError(t, err)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.ID, exp))

	isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, isRevoked)
}

func TestChangePassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users, nil, zap.NewNop())
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "supersafe123", "")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrongcurrent", "newpassword1")
	requireStatus(t, err, 401)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "supersafe123", "newpassword1"))

	_, _, _, err = svc.Login(ctx, "alice@example.com", "supersafe123")
	requireStatus(t, err, 401)
	_, _, _, err = svc.Login(ctx, "alice@example.com", "newpassword1")
	assert.NoError(t, err)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, status, domainErr.HTTPStatus)
}
