package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
	"tecnico-hr/pkg/jwt"
	"tecnico-hr/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrAccountDisabled    = errors.New("账号已停用")
	ErrPasswordResetNeed  = errors.New("凭证不可用，请联系管理员重置密码")
	ErrOldPasswordWrong   = errors.New("原密码错误")
	ErrInvalidRefresh     = errors.New("Refresh Token 无效")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Refresh 用 Refresh Token 换取新的 Token 对
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout 将当前 Access Token 加入黑名单直至过期
	Logout(ctx context.Context, token string, claims *jwt.Claims) error
	Me(ctx context.Context, accountID string) (*dto.AccountResponse, error)
	ChangePassword(ctx context.Context, accountID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例；rdb 可为 nil（降级：登出不生效）
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	account, err := s.repo.Account.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询账号失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	if !account.IsActive {
		return nil, ErrAccountDisabled
	}
	// 空哈希表示凭证不可用（开通后尚未设置密码）
	if !account.HasUsableCredential() {
		return nil, ErrPasswordResetNeed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("登录失败：密码错误", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

// ────────────────────── Refresh ──────────────────────

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefresh
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, refreshToken)
		if err != nil {
			s.logger.Warn("查询 Token 黑名单失败", zap.Error(err))
		} else if blacklisted {
			return nil, ErrInvalidRefresh
		}
	}

	account, err := s.repo.Account.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.issueTokens(account)
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, token string, claims *jwt.Claims) error {
	if s.rdb == nil {
		s.logger.Warn("Redis 不可用，登出未写入黑名单")
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, token, ttl); err != nil {
		s.logger.Error("写入 Token 黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Me ──────────────────────

func (s *authService) Me(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return toAccountResponse(account), nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, accountID string, req *dto.ChangePasswordRequest) error {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	// 凭证可用时必须校验原密码；不可用（首次设置）时跳过
	if account.HasUsableCredential() {
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.OldPassword)); err != nil {
			return ErrOldPasswordWrong
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account.PasswordHash = string(hash)
	account.MustChangePassword = false
	if err := s.repo.Account.Update(ctx, account); err != nil {
		s.logger.Error("更新密码失败", zap.String("account_id", accountID), zap.Error(err))
		return err
	}

	s.logger.Info("密码已更新", zap.String("username", account.Username))
	return nil
}

// ── 内部辅助方法 ──

func (s *authService) issueTokens(account *model.Account) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(account.AccountID, account.Username, account.Role)
	if err != nil {
		s.logger.Error("生成 Access Token 失败", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(account.AccountID, account.Username, account.Role)
	if err != nil {
		s.logger.Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtMgr.AccessTokenTTL().Seconds()),
		Account:      *toAccountResponse(account),
	}, nil
}

func toAccountResponse(a *model.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:                 a.AccountID,
		Username:           a.Username,
		Email:              a.Email,
		FirstName:          a.FirstName,
		LastName:           a.LastName,
		Role:               a.Role,
		MustChangePassword: a.MustChangePassword,
	}
}
