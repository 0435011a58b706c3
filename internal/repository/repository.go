package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Account   AccountRepository
	Employee  EmployeeRepository
	Specialty SpecialtyRepository
	Vacation  VacationRepository
	Document  DocumentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:        db,
		Account:   NewAccountRepo(db),
		Employee:  NewEmployeeRepo(db),
		Specialty: NewSpecialtyRepo(db),
		Vacation:  NewVacationRepo(db),
		Document:  NewDocumentRepo(db),
	}
}

// Transaction 在单个数据库事务中执行 fn，fn 内通过事务版聚合访问数据。
// 测试场景下聚合可能由 mock 构成（db 为 nil），此时直接原地执行。
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
