package repository

import (
	"context"

	"gorm.io/gorm"

	"tecnico-hr/internal/model"
)

// SpecialtyRepository 专长标签数据访问接口
type SpecialtyRepository interface {
	Create(ctx context.Context, specialty *model.Specialty) error
	GetByID(ctx context.Context, id string) (*model.Specialty, error)
	GetByName(ctx context.Context, name string) (*model.Specialty, error)
	List(ctx context.Context) ([]model.Specialty, error)
	ListAll(ctx context.Context) ([]model.Specialty, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Specialty, error)
	Update(ctx context.Context, specialty *model.Specialty) error
	Delete(ctx context.Context, id string) error
}

// specialtyRepo SpecialtyRepository 的 GORM 实现
type specialtyRepo struct {
	db *gorm.DB
}

// NewSpecialtyRepo 创建 SpecialtyRepository 实例
func NewSpecialtyRepo(db *gorm.DB) SpecialtyRepository {
	return &specialtyRepo{db: db}
}

func (r *specialtyRepo) Create(ctx context.Context, specialty *model.Specialty) error {
	return r.db.WithContext(ctx).Create(specialty).Error
}

func (r *specialtyRepo) GetByID(ctx context.Context, id string) (*model.Specialty, error) {
	var specialty model.Specialty
	err := r.db.WithContext(ctx).
		Where("specialty_id = ?", id).
		First(&specialty).Error
	if err != nil {
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepo) GetByName(ctx context.Context, name string) (*model.Specialty, error) {
	var specialty model.Specialty
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&specialty).Error
	if err != nil {
		return nil, err
	}
	return &specialty, nil
}

// List 仅返回启用中的专长
func (r *specialtyRepo) List(ctx context.Context) ([]model.Specialty, error) {
	var specialties []model.Specialty
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&specialties).Error
	return specialties, err
}

func (r *specialtyRepo) ListAll(ctx context.Context) ([]model.Specialty, error) {
	var specialties []model.Specialty
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&specialties).Error
	return specialties, err
}

func (r *specialtyRepo) ListByIDs(ctx context.Context, ids []string) ([]model.Specialty, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var specialties []model.Specialty
	err := r.db.WithContext(ctx).
		Where("specialty_id IN ?", ids).
		Find(&specialties).Error
	return specialties, err
}

func (r *specialtyRepo) Update(ctx context.Context, specialty *model.Specialty) error {
	return r.db.WithContext(ctx).Save(specialty).Error
}

func (r *specialtyRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("specialty_id = ?", id).
		Delete(&model.Specialty{}).Error
}
