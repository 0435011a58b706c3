package repository

import (
	"context"

	"gorm.io/gorm"

	"tecnico-hr/internal/model"
)

// EmployeeListFilters 员工列表过滤条件
type EmployeeListFilters struct {
	// Search 对姓名与员工编号做不区分大小写的模糊匹配
	Search      string
	Status      model.EmployeeStatus
	Department  model.Department
	SpecialtyID string
}

// EmployeeRepository 员工档案数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetLatest(ctx context.Context) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters *EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error)
	ReplaceSpecialties(ctx context.Context, employee *model.Employee, specialties []model.Specialty) error
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Specialties").
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetLatest 返回最近创建的员工档案（用于生成下一个员工编号）
func (r *employeeRepo) GetLatest(ctx context.Context) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		Delete(&model.Employee{}).Error
}

func (r *employeeRepo) List(ctx context.Context, filters *EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Employee{})

	if filters != nil {
		if filters.Search != "" {
			like := "%" + filters.Search + "%"
			db = db.Where(
				"first_name ILIKE ? OR last_name ILIKE ? OR employee_code ILIKE ?",
				like, like, like,
			)
		}
		if filters.Status != "" {
			db = db.Where("status = ?", filters.Status)
		}
		if filters.Department != "" {
			db = db.Where("department = ?", filters.Department)
		}
		if filters.SpecialtyID != "" {
			db = db.Where(
				"employee_id IN (SELECT employee_id FROM employee_specialties WHERE specialty_id = ?)",
				filters.SpecialtyID,
			)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Account").Preload("Specialties").
		Offset(offset).Limit(limit).
		Order("employee_code ASC").
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ReplaceSpecialties 全量替换员工的专长关联
func (r *employeeRepo) ReplaceSpecialties(ctx context.Context, employee *model.Employee, specialties []model.Specialty) error {
	return r.db.WithContext(ctx).
		Model(employee).
		Association("Specialties").
		Replace(specialties)
}
