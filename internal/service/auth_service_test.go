package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tecnico-hr/config"
	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
	"tecnico-hr/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *testRepos) {
	repos := newTestRepos()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	svc := NewAuthService(repos.toRepository(), jwtMgr, nil, zap.NewNop())
	return svc, repos
}

func seedAccount(repos *testRepos, username, password string) *model.Account {
	account := &model.Account{
		Username:  username,
		Email:     username + "@example.cl",
		FirstName: "Test",
		LastName:  "User",
		Role:      "hr",
		IsActive:  true,
	}
	if password != "" {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		account.PasswordHash = string(hash)
	}
	_ = repos.account.Create(context.Background(), account)
	return account
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, repos := setupTestAuthService()
	seedAccount(repos, "mgonzalez", "password123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mgonzalez",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功，但返回错误: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken 不应为空")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken 不应为空")
	}
	if result.ExpiresIn != 900 {
		t.Errorf("期望 ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
	if result.Account.Username != "mgonzalez" {
		t.Errorf("期望 username=mgonzalez，实际=%s", result.Account.Username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repos := setupTestAuthService()
	seedAccount(repos, "mgonzalez", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mgonzalez",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("期望 ErrInvalidCredentials，实际 %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nadie",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("期望 ErrInvalidCredentials，实际 %v", err)
	}
}

func TestAuthService_Login_UnusableCredential(t *testing.T) {
	svc, repos := setupTestAuthService()
	// 新开通的账号：空哈希，凭证不可用
	seedAccount(repos, "nuevo", "")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nuevo",
		Password: "cualquiera",
	})
	if !errors.Is(err, ErrPasswordResetNeed) {
		t.Fatalf("期望 ErrPasswordResetNeed，实际 %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc, repos := setupTestAuthService()
	account := seedAccount(repos, "mgonzalez", "password123")
	account.IsActive = false
	_ = repos.account.Update(context.Background(), account)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mgonzalez",
		Password: "password123",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("期望 ErrAccountDisabled，实际 %v", err)
	}
}

// ── Refresh ──

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, repos := setupTestAuthService()
	seedAccount(repos, "mgonzalez", "password123")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mgonzalez",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	result, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh 应成功，但返回错误: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("刷新后 AccessToken 不应为空")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, repos := setupTestAuthService()
	seedAccount(repos, "mgonzalez", "password123")

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mgonzalez",
		Password: "password123",
	})

	// Access Token 不能用于刷新
	_, err := svc.Refresh(context.Background(), login.AccessToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Fatalf("期望 ErrInvalidRefresh，实际 %v", err)
	}
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Fatalf("期望 ErrInvalidRefresh，实际 %v", err)
	}
}

// ── ChangePassword ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, repos := setupTestAuthService()
	account := seedAccount(repos, "mgonzalez", "password123")

	err := svc.ChangePassword(context.Background(), account.AccountID, &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newpassword456",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mgonzalez",
		Password: "newpassword456",
	})
	if err != nil {
		t.Errorf("新密码应可登录: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	svc, repos := setupTestAuthService()
	account := seedAccount(repos, "mgonzalez", "password123")

	err := svc.ChangePassword(context.Background(), account.AccountID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpassword456",
	})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Fatalf("期望 ErrOldPasswordWrong，实际 %v", err)
	}
}

func TestAuthService_ChangePassword_FirstTimeSkipsOldCheck(t *testing.T) {
	svc, repos := setupTestAuthService()
	// 凭证不可用的账号：首次设置密码无需原密码
	account := seedAccount(repos, "nuevo", "")
	account.MustChangePassword = true
	_ = repos.account.Update(context.Background(), account)

	err := svc.ChangePassword(context.Background(), account.AccountID, &dto.ChangePasswordRequest{
		NewPassword: "primeraclave1",
	})
	if err != nil {
		t.Fatalf("首次设置密码应成功: %v", err)
	}

	stored, _ := repos.account.GetByID(context.Background(), account.AccountID)
	if stored.MustChangePassword {
		t.Error("设置密码后应清除重置标记")
	}
	if !stored.HasUsableCredential() {
		t.Error("设置密码后凭证应可用")
	}
}

// ── Me ──

func TestAuthService_Me(t *testing.T) {
	svc, repos := setupTestAuthService()
	account := seedAccount(repos, "mgonzalez", "password123")

	result, err := svc.Me(context.Background(), account.AccountID)
	if err != nil {
		t.Fatalf("Me 应成功: %v", err)
	}
	if result.Username != "mgonzalez" {
		t.Errorf("期望 mgonzalez，实际 %s", result.Username)
	}
}

func TestAuthService_Me_NotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Me(context.Background(), "no-such-id")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("期望 ErrAccountNotFound，实际 %v", err)
	}
}
