package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tecnico-hr/internal/model"
)

// VacationRepository 休假申请数据访问接口
//
// 两个天数聚合查询的状态集合不同，这是沿用已有业务规则的刻意保留：
//   - SumDaysTaken 统计 {approved, in_progress}，供员工级"可用余额"展示
//   - SumDaysCommitted 统计 {approved, in_progress, completed} 并排除指定申请，
//     供重新评估已计入申请时使用
//
// 两套口径是否应统一，待产品侧确认（见 DESIGN.md）。
type VacationRepository interface {
	Create(ctx context.Context, request *model.VacationRequest) error
	GetByID(ctx context.Context, id string) (*model.VacationRequest, error)
	Update(ctx context.Context, request *model.VacationRequest) error
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]model.VacationRequest, error)
	ListByEmployeeAndYear(ctx context.Context, employeeID string, year int, statuses []model.VacationStatus) ([]model.VacationRequest, error)
	SumDaysTaken(ctx context.Context, employeeID string, year int) (int, error)
	SumDaysCommitted(ctx context.Context, employeeID string, year int, excludeID string) (int, error)
}

// vacationRepo VacationRepository 的 GORM 实现
type vacationRepo struct {
	db *gorm.DB
}

// NewVacationRepo 创建 VacationRepository 实例
func NewVacationRepo(db *gorm.DB) VacationRepository {
	return &vacationRepo{db: db}
}

func (r *vacationRepo) Create(ctx context.Context, request *model.VacationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *vacationRepo) GetByID(ctx context.Context, id string) (*model.VacationRequest, error) {
	var request model.VacationRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Approver").
		Where("vacation_request_id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *vacationRepo) Update(ctx context.Context, request *model.VacationRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// ListByEmployee 按开始日期倒序返回员工的休假申请，limit<=0 时不限制条数
func (r *vacationRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]model.VacationRequest, error) {
	var requests []model.VacationRequest
	db := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&requests).Error
	return requests, err
}

func (r *vacationRepo) ListByEmployeeAndYear(ctx context.Context, employeeID string, year int, statuses []model.VacationStatus) ([]model.VacationRequest, error) {
	var requests []model.VacationRequest
	from, to := yearBounds(year)
	db := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("start_date >= ? AND start_date < ?", from, to).
		Order("start_date ASC")
	if len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}
	err := db.Find(&requests).Error
	return requests, err
}

// SumDaysTaken 员工级余额口径：统计 approved|in_progress 的申请天数
func (r *vacationRepo) SumDaysTaken(ctx context.Context, employeeID string, year int) (int, error) {
	return r.sumDays(ctx, employeeID, year, "",
		[]model.VacationStatus{model.VacationApproved, model.VacationInProgress})
}

// SumDaysCommitted 申请级口径：统计 approved|in_progress|completed，排除申请自身
func (r *vacationRepo) SumDaysCommitted(ctx context.Context, employeeID string, year int, excludeID string) (int, error) {
	return r.sumDays(ctx, employeeID, year, excludeID,
		[]model.VacationStatus{model.VacationApproved, model.VacationInProgress, model.VacationCompleted})
}

func (r *vacationRepo) sumDays(ctx context.Context, employeeID string, year int, excludeID string, statuses []model.VacationStatus) (int, error) {
	from, to := yearBounds(year)

	db := r.db.WithContext(ctx).
		Model(&model.VacationRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", statuses).
		Where("start_date >= ? AND start_date < ?", from, to)
	if excludeID != "" {
		db = db.Where("vacation_request_id <> ?", excludeID)
	}

	// COALESCE 保证无记录时聚合为 0
	var total int64
	err := db.Select("COALESCE(SUM(requested_days), 0)").Scan(&total).Error
	return int(total), err
}

// yearBounds 返回 [year-01-01, year+1-01-01) 的左闭右开区间
func yearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}
