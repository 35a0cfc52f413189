package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/config"
	"sensor-ops/internal/pkg/jwt"
	"sensor-ops/pkg/constants"
	"sensor-ops/pkg/responses"
)

type fakeUserRepo struct {
	accounts []model.UserAccount
	err      error
}

func (f *fakeUserRepo) ListAccounts(context.Context) ([]model.UserAccount, error) {
	return f.accounts, f.err
}

func testAuthConfig(t *testing.T) *config.AuthConfig {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.JWT.Secret = "test-secret"
	cfg.Auth.JWT.AccessTokenExpire = 3600
	cfg.Auth.JWT.RefreshTokenExpire = 7200
	config.GlobalConfig = cfg
	return &cfg.Auth
}

func testAccounts() []model.UserAccount {
	return []model.UserAccount{
		{Username: "somchai", Password: "1234", Status: "approved", Role: "admin"},
		{Username: "suda", Password: "abcd", Status: "Approved", Role: "member"},
		{Username: "anan", Password: "efgh", Status: "pending", Role: "member"},
		{Username: "wichai", Password: "ijkl", Status: "approved", Role: ""},
	}
}

func TestLoginApprovedAdmin(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "somchai", Password: "1234"})
	require.NoError(t, err)

	assert.Equal(t, "somchai", resp.User.Username)
	assert.Equal(t, constants.RoleAdmin, resp.User.Role)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := jwt.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, constants.JWTTypeAccess, claims.Type)
	assert.Equal(t, constants.RoleAdmin, claims.Role)
}

func TestLoginApprovalIsCaseInsensitive(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "suda", Password: "abcd"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleMember, resp.User.Role)
}

func TestLoginTrimsCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "  somchai ", Password: " 1234 "})
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "somchai", Password: "wrong"})
	assert.ErrorIs(t, err, responses.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "1234"})
	assert.ErrorIs(t, err, responses.ErrInvalidCredentials)
}

func TestLoginPendingAccountDistinctError(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "anan", Password: "efgh"})
	assert.ErrorIs(t, err, responses.ErrAccountPending)
	assert.NotErrorIs(t, err, responses.ErrInvalidCredentials)
}

func TestLoginBlankRoleDefaultsToUser(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "wichai", Password: "ijkl"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleUser, resp.User.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "somchai", Password: "1234"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "somchai", refreshed.User.Username)
	assert.Equal(t, constants.RoleAdmin, refreshed.User.Role)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{accounts: testAccounts()})

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "somchai", Password: "1234"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(login.AccessToken)
	assert.ErrorIs(t, err, responses.ErrInvalidToken)
}

func TestViewsForRoles(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t), &fakeUserRepo{})

	assert.Len(t, svc.ViewsFor(constants.RoleAdmin), 8)
	assert.Len(t, svc.ViewsFor(constants.RoleMember), 8)
	assert.Equal(t, []string{"dashboard", "site_detail", "manuals"}, svc.ViewsFor(constants.RoleUser))
	assert.Equal(t, []string{"dashboard", "site_detail", "manuals"}, svc.ViewsFor("unknown"))
}
