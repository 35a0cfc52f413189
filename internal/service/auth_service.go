package service

import (
	"context"
	"strings"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/model"
	"sensor-ops/internal/pkg/config"
	"sensor-ops/internal/pkg/crypto"
	"sensor-ops/internal/pkg/jwt"
	"sensor-ops/internal/repository"
	"sensor-ops/pkg/constants"
	pkgErrors "sensor-ops/pkg/responses"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	ViewsFor(role string) []string
}

type authService struct {
	cfg      *config.AuthConfig
	userRepo repository.UserRepository
}

func NewAuthService(cfg *config.AuthConfig, userRepo repository.UserRepository) AuthService {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	accounts, err := s.userRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	var account *model.UserAccount
	for i := range accounts {
		if accounts[i].Username != username {
			continue
		}
		if !crypto.CheckPassword(password, accounts[i].Password) {
			continue
		}
		account = &accounts[i]
		break
	}
	if account == nil {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	if !strings.EqualFold(account.Status, constants.UserStatusApproved) {
		return nil, pkgErrors.ErrAccountPending
	}

	role := strings.ToLower(strings.TrimSpace(account.Role))
	switch role {
	case constants.RoleAdmin, constants.RoleMember, constants.RoleUser:
	default:
		role = constants.RoleUser
	}

	return s.issueTokens(username, role)
}

func (s *authService) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != constants.JWTTypeRefresh {
		return nil, pkgErrors.ErrInvalidToken
	}
	return s.issueTokens(claims.Username, claims.Role)
}

// ViewsFor returns the menu entries the role may open. Admins and
// members see every view; plain users get the read-only trio.
func (s *authService) ViewsFor(role string) []string {
	switch role {
	case constants.RoleAdmin, constants.RoleMember:
		return []string{
			"dashboard", "site_detail", "my_workload", "team_workload",
			"tools", "team_profile", "learning", "manuals",
		}
	default:
		return []string{"dashboard", "site_detail", "manuals"}
	}
}

func (s *authService) issueTokens(username, role string) (*dto.LoginResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(username, role)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to generate access token", err)
	}
	refreshToken, err := jwt.GenerateRefreshToken(username, role)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to generate refresh token", err)
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.cfg.JWT.AccessTokenExpire,
		User: &dto.UserInfo{
			Username: username,
			Role:     role,
		},
	}, nil
}
