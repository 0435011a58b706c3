package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
)

// ErrAccountNotFound 员工引用的账号不存在
var ErrAccountNotFound = errors.New("系统账号不存在")

// IdentityService 账号开通与同步
//
// 档案与账号的联动不走持久化钩子，由调用方（员工服务）显式调用并自行
// 处理失败。方法接收仓库参数，便于调用方传入事务内的仓库。
type IdentityService interface {
	// ProvisionAccount 为档案开通账号：用户名取邮箱本地部分（冲突时追加 _N），
	// 凭证置为不可用状态，强制首次登录前重置密码
	ProvisionAccount(ctx context.Context, repo *repository.Repository, employee *model.Employee) (*model.Account, error)
	// SyncAccount 将档案信息同步到已关联账号：仅回填账号侧的空白字段，
	// 并强制 must_change_password 标记
	SyncAccount(ctx context.Context, repo *repository.Repository, employee *model.Employee) (*model.Account, error)
}

type identityService struct {
	logger *zap.Logger
}

// NewIdentityService 创建 IdentityService 实例
func NewIdentityService(logger *zap.Logger) IdentityService {
	return &identityService{logger: logger}
}

// ────────────────────── ProvisionAccount ──────────────────────

func (s *identityService) ProvisionAccount(ctx context.Context, repo *repository.Repository, employee *model.Employee) (*model.Account, error) {
	username, err := s.deriveUsername(ctx, repo, employee)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:           username,
		Email:              employee.Email,
		FirstName:          employee.FirstName,
		LastName:           employee.LastName,
		PasswordHash:       "", // 凭证不可用，须由管理员重置
		Role:               "employee",
		MustChangePassword: true,
		IsActive:           true,
	}

	if err := repo.Account.Create(ctx, account); err != nil {
		s.logger.Error("开通账号失败",
			zap.String("username", username),
			zap.String("employee_code", employee.EmployeeCode),
			zap.Error(err),
		)
		return nil, err
	}

	employee.AccountID = &account.AccountID

	s.logger.Info("已为员工开通账号",
		zap.String("username", username),
		zap.String("employee_code", employee.EmployeeCode),
	)
	return account, nil
}

// ────────────────────── SyncAccount ──────────────────────

func (s *identityService) SyncAccount(ctx context.Context, repo *repository.Repository, employee *model.Employee) (*model.Account, error) {
	if employee.AccountID == nil {
		return nil, ErrAccountNotFound
	}

	account, err := repo.Account.GetByID(ctx, *employee.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	// 只回填空白字段，不覆盖账号侧已有数据
	if account.Email == "" {
		account.Email = employee.Email
	}
	if account.FirstName == "" {
		account.FirstName = employee.FirstName
	}
	if account.LastName == "" {
		account.LastName = employee.LastName
	}
	account.MustChangePassword = true

	if err := repo.Account.Update(ctx, account); err != nil {
		s.logger.Error("同步账号失败", zap.String("account_id", account.AccountID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// ── 内部辅助方法 ──

// deriveUsername 由邮箱本地部分推导用户名；占用时依次尝试 base_1、base_2…
func (s *identityService) deriveUsername(ctx context.Context, repo *repository.Repository, employee *model.Employee) (string, error) {
	base := employee.Email
	if at := strings.Index(base, "@"); at >= 0 {
		base = base[:at]
	}
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		base = "user_" + strings.ToLower(employee.EmployeeCode)
	}

	username := base
	for i := 1; ; i++ {
		exists, err := repo.Account.UsernameExists(ctx, username)
		if err != nil {
			return "", err
		}
		if !exists {
			return username, nil
		}
		username = fmt.Sprintf("%s_%d", base, i)
	}
}
