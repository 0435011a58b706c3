package repository

import (
	"context"

	"gorm.io/gorm"

	"tecnico-hr/internal/model"
)

// AccountRepository 系统账号数据访问接口
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, id string) error
}

// accountRepo AccountRepository 的 GORM 实现
type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepo 创建 AccountRepository 实例
func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("account_id = ?", id).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (r *accountRepo) Update(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("account_id = ?", id).
		Delete(&model.Account{}).Error
}
