package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
)

// ── 休假模块业务错误 ──

var (
	ErrVacationNotFound  = errors.New("休假申请不存在")
	ErrVacationDateOrder = errors.New("结束日期必须晚于开始日期")
	ErrInvalidDate       = errors.New("日期格式无效，应为 YYYY-MM-DD")
)

// dateLayout 接口层日期格式
const dateLayout = "2006-01-02"

// warnAlreadyDecided 重复审批时返回的用户级警告（非错误）
const warnAlreadyDecided = "Esta solicitud ya ha sido procesada anteriormente."

// RequestedDays 计算闭区间请求天数 (end − start).days + 1。
// end 不晚于 start 时返回 ErrVacationDateOrder。
func RequestedDays(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, ErrVacationDateOrder
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// VacationService 休假业务接口
//
// 年度余额存在两套统计口径（见 repository.VacationRepository 注释）：
// RemainingDays 面向员工余额展示，RemainingDaysExcluding 面向申请重估。
type VacationService interface {
	Create(ctx context.Context, employeeID string, req *dto.CreateVacationRequest) (*dto.VacationRequestResponse, error)
	GetByID(ctx context.Context, id string) (*dto.VacationRequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]dto.VacationRequestResponse, error)
	// Decide 审批申请；对已审批的申请重复操作不报错，仅在响应中携带警告
	Decide(ctx context.Context, id string, req *dto.DecideVacationRequest, approverID string) (*dto.DecideVacationResponse, error)
	// Balance 员工某年度的可用假期余额（口径：approved|in_progress）
	Balance(ctx context.Context, employeeID string, year int) (*dto.VacationBalanceResponse, error)
	// RemainingDaysExcluding 排除申请自身后的年度余额（口径：approved|in_progress|completed）
	RemainingDaysExcluding(ctx context.Context, id string, year int) (*dto.VacationBalanceResponse, error)
}

type vacationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVacationService 创建 VacationService 实例
func NewVacationService(repo *repository.Repository, logger *zap.Logger) VacationService {
	return &vacationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *vacationService) Create(ctx context.Context, employeeID string, req *dto.CreateVacationRequest) (*dto.VacationRequestResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", employeeID), zap.Error(err))
		return nil, err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// 请求天数由服务端推导，忽略客户端提交的任何值
	days, err := RequestedDays(start, end)
	if err != nil {
		return nil, err
	}

	request := &model.VacationRequest{
		EmployeeID:    employee.EmployeeID,
		StartDate:     start,
		EndDate:       end,
		RequestedDays: days,
		Reason:        req.Reason,
		Status:        model.VacationPending,
	}

	if err := s.repo.Vacation.Create(ctx, request); err != nil {
		s.logger.Error("创建休假申请失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return toVacationResponse(request), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *vacationService) GetByID(ctx context.Context, id string) (*dto.VacationRequestResponse, error) {
	request, err := s.repo.Vacation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacationNotFound
		}
		s.logger.Error("查询休假申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toVacationResponse(request), nil
}

// ────────────────────── ListByEmployee ──────────────────────

func (s *vacationService) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]dto.VacationRequestResponse, error) {
	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	requests, err := s.repo.Vacation.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		s.logger.Error("查询休假申请列表失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.VacationRequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toVacationResponse(&requests[i]))
	}
	return result, nil
}

// ────────────────────── Decide ──────────────────────

func (s *vacationService) Decide(ctx context.Context, id string, req *dto.DecideVacationRequest, approverID string) (*dto.DecideVacationResponse, error) {
	request, err := s.repo.Vacation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacationNotFound
		}
		s.logger.Error("查询休假申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 已审批的申请不可再次流转：返回原状态与警告，不视为错误
	if request.Decided() {
		s.logger.Info("忽略对已审批申请的重复操作",
			zap.String("id", id),
			zap.String("status", string(request.Status)),
		)
		return &dto.DecideVacationResponse{
			Request: *toVacationResponse(request),
			Warning: warnAlreadyDecided,
		}, nil
	}

	switch req.Action {
	case "approve":
		request.Status = model.VacationApproved
	case "reject":
		request.Status = model.VacationRejected
	}

	now := time.Now()
	request.ApproverID = &approverID
	request.DecidedAt = &now
	request.DecisionComment = req.Comment

	if err := s.repo.Vacation.Update(ctx, request); err != nil {
		s.logger.Error("审批休假申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.DecideVacationResponse{Request: *toVacationResponse(request)}, nil
}

// ────────────────────── Balance ──────────────────────

func (s *vacationService) Balance(ctx context.Context, employeeID string, year int) (*dto.VacationBalanceResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	used, err := s.repo.Vacation.SumDaysTaken(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("统计已用假期失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return &dto.VacationBalanceResponse{
		EmployeeID:    employeeID,
		Year:          year,
		AnnualDays:    employee.AnnualVacationDays,
		RemainingDays: clampDays(employee.AnnualVacationDays - used),
	}, nil
}

// ────────────────────── RemainingDaysExcluding ──────────────────────

func (s *vacationService) RemainingDaysExcluding(ctx context.Context, id string, year int) (*dto.VacationBalanceResponse, error) {
	request, err := s.repo.Vacation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacationNotFound
		}
		return nil, err
	}

	employee, err := s.repo.Employee.GetByID(ctx, request.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	used, err := s.repo.Vacation.SumDaysCommitted(ctx, request.EmployeeID, year, request.VacationRequestID)
	if err != nil {
		s.logger.Error("统计已占用假期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.VacationBalanceResponse{
		EmployeeID:    request.EmployeeID,
		Year:          year,
		AnnualDays:    employee.AnnualVacationDays,
		RemainingDays: clampDays(employee.AnnualVacationDays - used),
	}, nil
}

// ── 内部辅助方法 ──

// clampDays 余额不允许为负
func clampDays(days int) int {
	if days < 0 {
		return 0
	}
	return days
}

func toVacationResponse(v *model.VacationRequest) *dto.VacationRequestResponse {
	resp := &dto.VacationRequestResponse{
		ID:              v.VacationRequestID,
		EmployeeID:      v.EmployeeID,
		StartDate:       v.StartDate.Format(dateLayout),
		EndDate:         v.EndDate.Format(dateLayout),
		RequestedDays:   v.RequestedDays,
		Reason:          v.Reason,
		Status:          string(v.Status),
		StatusLabel:     v.Status.Label(),
		DecisionComment: v.DecisionComment,
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
	}
	if v.Employee != nil {
		resp.EmployeeName = v.Employee.FullName()
	}
	if v.ApproverID != nil {
		resp.ApproverID = *v.ApproverID
	}
	if v.Approver != nil {
		resp.ApproverName = v.Approver.FirstName + " " + v.Approver.LastName
	}
	if v.DecidedAt != nil {
		resp.DecidedAt = v.DecidedAt.Format(time.RFC3339)
	}
	return resp
}
