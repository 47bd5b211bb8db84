package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/workshophq/workforce-backend-go/internal/domain/account"
	"github.com/workshophq/workforce-backend-go/internal/domain/auth"
	"github.com/workshophq/workforce-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	accountRepo account.AccountRepository
	jwtService  jwt.Service
}

func NewAuthService(accountRepo account.AccountRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	if _, err := s.accountRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.RegisterResponse{}, account.ErrEmailExists
	} else if !errors.Is(err, account.ErrAccountNotFound) {
		return auth.RegisterResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.accountRepo.Create(ctx, account.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create account: %w", err)
	}

	return auth.RegisterResponse{
		AccountID: created.ID,
		Name:      created.Name,
		Email:     created.Email,
	}, nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	acc, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(acc)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	if typ, _ := claims["type"].(string); typ != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	accountID, _ := claims["account_id"].(string)
	if accountID == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(acc)
}

func (s *AuthServiceImpl) issueTokens(acc account.Account) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(acc.ID, acc.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(acc.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccountID:             acc.ID,
		Name:                  acc.Name,
		Email:                 acc.Email,
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
