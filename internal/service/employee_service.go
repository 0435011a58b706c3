package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
	"tecnico-hr/pkg/storage"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound = errors.New("员工档案不存在")
	ErrEmployeeConflict = errors.New("员工编号、RUT 或用户名已被占用")
	ErrInvalidChoice    = errors.New("枚举字段取值无效")
	ErrSpecialtyMissing = errors.New("指定的专长不存在或已停用")
)

// 员工编号规则：SE 前缀 + 序号，首个编号 SE1000
const (
	employeeCodePrefix = "SE"
	firstEmployeeSeq   = 1000
)

// NextEmployeeCode 根据最近一次分配的编号推导下一个编号。
// 前缀不符或序号不可解析时回退到首个编号。
func NextEmployeeCode(lastCode string) string {
	seq := firstEmployeeSeq
	if strings.HasPrefix(lastCode, employeeCodePrefix) {
		if n, err := strconv.Atoi(lastCode[len(employeeCodePrefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", employeeCodePrefix, seq)
}

// EmployeeService 员工档案业务接口
type EmployeeService interface {
	// Create 创建档案并在同一事务内开通系统账号
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeDetailResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeDetailResponse, error)
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
	// Update 更新档案并同步关联账号
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeDetailResponse, error)
	// Delete 删除档案及其账号、文档与存储对象
	Delete(ctx context.Context, id string) error
	// UploadPhoto 上传员工照片，返回可访问的 URL
	UploadPhoto(ctx context.Context, id, filename string, r io.Reader) (string, error)
}

type employeeService struct {
	repo     *repository.Repository
	identity IdentityService
	store    storage.Store
	logger   *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, identity IdentityService, store storage.Store, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, identity: identity, store: store, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeDetailResponse, error) {
	employee := &model.Employee{
		EmployeeCode:  strings.TrimSpace(req.EmployeeCode),
		NationalID:    strings.TrimSpace(req.NationalID),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PositionTitle: req.PositionTitle,

		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		PersonalEmail:    req.PersonalEmail,
		LinkedinURL:      req.LinkedinURL,
		Notes:            req.Notes,
		IsActive:         true,
	}

	// 未显式指定的枚举字段取业务默认值
	employee.Location = model.LocationSantiago
	employee.Department = model.DeptOperations
	employee.Status = model.StatusActive
	employee.HealthPlan = model.HealthFonasa
	employee.PensionFund = model.AFPCapital
	if err := applyChoices(employee, req.Location, req.Department, req.Status, req.HealthPlan, req.PensionFund); err != nil {
		return nil, err
	}
	if req.AnnualVacationDays != nil {
		employee.AnnualVacationDays = *req.AnnualVacationDays
	} else {
		employee.AnnualVacationDays = 15
	}

	if req.BirthDate != "" {
		birth, err := time.Parse(dateLayout, req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		employee.BirthDate = &birth
	}
	employee.HireDate = time.Now().Truncate(24 * time.Hour)
	if req.HireDate != "" {
		hire, err := time.Parse(dateLayout, req.HireDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		employee.HireDate = hire
	}

	// 编号留空时基于最近分配的编号自动生成
	if employee.EmployeeCode == "" {
		last, err := s.repo.Employee.GetLatest(ctx)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询最近员工编号失败", zap.Error(err))
			return nil, err
		}
		lastCode := ""
		if last != nil {
			lastCode = last.EmployeeCode
		}
		employee.EmployeeCode = NextEmployeeCode(lastCode)
	}

	specialties, err := s.resolveSpecialties(ctx, req.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	// 档案与账号在同一事务内落库，避免出现无档案的孤儿账号
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if _, err := s.identity.ProvisionAccount(ctx, txRepo, employee); err != nil {
			return err
		}
		if err := txRepo.Employee.Create(ctx, employee); err != nil {
			return err
		}
		if len(specialties) > 0 {
			return txRepo.Employee.ReplaceSpecialties(ctx, employee, specialties)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmployeeConflict
		}
		s.logger.Error("创建员工档案失败", zap.String("employee_code", employee.EmployeeCode), zap.Error(err))
		return nil, err
	}

	s.logger.Info("员工档案已创建",
		zap.String("employee_code", employee.EmployeeCode),
		zap.String("id", employee.EmployeeID),
	)
	return s.GetByID(ctx, employee.EmployeeID)
}

// ────────────────────── GetByID ──────────────────────

func (s *employeeService) GetByID(ctx context.Context, id string) (*dto.EmployeeDetailResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工档案失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	detail := s.toDetailResponse(employee)

	// 详情页聚合：文档列表、最近 5 条休假记录、当年剩余假期
	documents, err := s.repo.Document.ListByEmployee(ctx, id, nil)
	if err != nil {
		s.logger.Warn("查询员工文档失败", zap.String("id", id), zap.Error(err))
	}
	detail.Documents = make([]dto.DocumentResponse, 0, len(documents))
	for i := range documents {
		detail.Documents = append(detail.Documents, *s.toDocumentResponse(&documents[i]))
	}

	vacations, err := s.repo.Vacation.ListByEmployee(ctx, id, 5)
	if err != nil {
		s.logger.Warn("查询员工休假记录失败", zap.String("id", id), zap.Error(err))
	}
	detail.RecentVacations = make([]dto.VacationRequestResponse, 0, len(vacations))
	for i := range vacations {
		detail.RecentVacations = append(detail.RecentVacations, *toVacationResponse(&vacations[i]))
	}

	year := time.Now().Year()
	used, err := s.repo.Vacation.SumDaysTaken(ctx, id, year)
	if err != nil {
		s.logger.Warn("统计已用假期失败", zap.String("id", id), zap.Error(err))
	}
	detail.RemainingVacationDays = clampDays(employee.AnnualVacationDays - used)

	return detail, nil
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	filters := &repository.EmployeeListFilters{
		Search:      req.Search,
		Status:      model.EmployeeStatus(req.Status),
		Department:  model.Department(req.Department),
		SpecialtyID: req.SpecialtyID,
	}

	employees, total, err := s.repo.Employee.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, *toEmployeeResponse(&employees[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeDetailResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if err := s.applyUpdate(employee, req); err != nil {
		return nil, err
	}

	var specialties []model.Specialty
	if req.SpecialtyIDs != nil {
		specialties, err = s.resolveSpecialties(ctx, *req.SpecialtyIDs)
		if err != nil {
			return nil, err
		}
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Employee.Update(ctx, employee); err != nil {
			return err
		}
		if req.SpecialtyIDs != nil {
			if err := txRepo.Employee.ReplaceSpecialties(ctx, employee, specialties); err != nil {
				return err
			}
		}
		// 档案有账号则同步，无账号但已有邮箱则补开
		if employee.AccountID != nil {
			_, err := s.identity.SyncAccount(ctx, txRepo, employee)
			return err
		}
		if employee.Email != "" {
			if _, err := s.identity.ProvisionAccount(ctx, txRepo, employee); err != nil {
				return err
			}
			return txRepo.Employee.Update(ctx, employee)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmployeeConflict
		}
		s.logger.Error("更新员工档案失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id string) error {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	// 提前取出文档路径，提交后再清理存储对象
	documents, err := s.repo.Document.ListByEmployee(ctx, id, nil)
	if err != nil {
		s.logger.Warn("查询员工文档失败", zap.String("id", id), zap.Error(err))
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Employee.Delete(ctx, id); err != nil {
			return err
		}
		if employee.AccountID != nil {
			return txRepo.Account.Delete(ctx, *employee.AccountID)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("删除员工档案失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 存储对象清理为尽力而为，失败只记日志
	for i := range documents {
		if err := s.store.Delete(documents[i].FilePath); err != nil {
			s.logger.Warn("删除文档文件失败",
				zap.String("path", documents[i].FilePath),
				zap.Error(err),
			)
		}
	}
	if employee.PhotoPath != "" {
		if err := s.store.Delete(employee.PhotoPath); err != nil {
			s.logger.Warn("删除照片文件失败", zap.String("path", employee.PhotoPath), zap.Error(err))
		}
	}

	s.logger.Info("员工档案已删除", zap.String("employee_code", employee.EmployeeCode))
	return nil
}

// ────────────────────── UploadPhoto ──────────────────────

func (s *employeeService) UploadPhoto(ctx context.Context, id, filename string, r io.Reader) (string, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}

	path, err := s.store.Save("photos", filename, r)
	if err != nil {
		s.logger.Error("保存照片失败", zap.String("id", id), zap.Error(err))
		return "", err
	}

	oldPath := employee.PhotoPath
	employee.PhotoPath = path
	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		// 落库失败时回收刚写入的文件
		if derr := s.store.Delete(path); derr != nil {
			s.logger.Warn("回收照片文件失败", zap.String("path", path), zap.Error(derr))
		}
		return "", err
	}

	if oldPath != "" {
		if err := s.store.Delete(oldPath); err != nil {
			s.logger.Warn("删除旧照片失败", zap.String("path", oldPath), zap.Error(err))
		}
	}
	return s.store.URL(path), nil
}

// ── 内部辅助方法 ──

// applyChoices 校验并写入枚举字段，空串保留模型默认值
func applyChoices(e *model.Employee, location, department, status, healthPlan, pensionFund string) error {
	if location != "" {
		if !model.Location(location).Valid() {
			return ErrInvalidChoice
		}
		e.Location = model.Location(location)
	}
	if department != "" {
		if !model.Department(department).Valid() {
			return ErrInvalidChoice
		}
		e.Department = model.Department(department)
	}
	if status != "" {
		if !model.EmployeeStatus(status).Valid() {
			return ErrInvalidChoice
		}
		e.Status = model.EmployeeStatus(status)
	}
	if healthPlan != "" {
		if !model.HealthPlan(healthPlan).Valid() {
			return ErrInvalidChoice
		}
		e.HealthPlan = model.HealthPlan(healthPlan)
	}
	if pensionFund != "" {
		if !model.PensionFund(pensionFund).Valid() {
			return ErrInvalidChoice
		}
		e.PensionFund = model.PensionFund(pensionFund)
	}
	return nil
}

func (s *employeeService) applyUpdate(e *model.Employee, req *dto.UpdateEmployeeRequest) error {
	if req.NationalID != nil {
		e.NationalID = strings.TrimSpace(*req.NationalID)
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			e.BirthDate = nil
		} else {
			birth, err := time.Parse(dateLayout, *req.BirthDate)
			if err != nil {
				return ErrInvalidDate
			}
			e.BirthDate = &birth
		}
	}
	if req.HireDate != nil && *req.HireDate != "" {
		hire, err := time.Parse(dateLayout, *req.HireDate)
		if err != nil {
			return ErrInvalidDate
		}
		e.HireDate = hire
	}

	var location, department, status, healthPlan, pensionFund string
	if req.Location != nil {
		location = *req.Location
	}
	if req.Department != nil {
		department = *req.Department
	}
	if req.Status != nil {
		status = *req.Status
	}
	if req.HealthPlan != nil {
		healthPlan = *req.HealthPlan
	}
	if req.PensionFund != nil {
		pensionFund = *req.PensionFund
	}
	if err := applyChoices(e, location, department, status, healthPlan, pensionFund); err != nil {
		return err
	}

	if req.PositionTitle != nil {
		e.PositionTitle = *req.PositionTitle
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		e.EmergencyContact = *req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		e.EmergencyPhone = *req.EmergencyPhone
	}
	if req.PersonalEmail != nil {
		e.PersonalEmail = *req.PersonalEmail
	}
	if req.LinkedinURL != nil {
		e.LinkedinURL = *req.LinkedinURL
	}
	if req.AnnualVacationDays != nil {
		e.AnnualVacationDays = *req.AnnualVacationDays
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
	return nil
}

// resolveSpecialties 按 ID 批量加载专长，存在缺失即整体拒绝
func (s *employeeService) resolveSpecialties(ctx context.Context, ids []string) ([]model.Specialty, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	specialties, err := s.repo.Specialty.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(specialties) != len(ids) {
		return nil, ErrSpecialtyMissing
	}
	return specialties, nil
}

func toEmployeeResponse(e *model.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:              e.EmployeeID,
		EmployeeCode:    e.EmployeeCode,
		NationalID:      e.NationalID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		FullName:        e.FullName(),
		Email:           e.Email,
		Location:        string(e.Location),
		LocationLabel:   e.Location.Label(),
		Department:      string(e.Department),
		DepartmentLabel: e.Department.Label(),
		PositionTitle:   e.PositionTitle,
		Status:          string(e.Status),
		StatusLabel:     e.Status.Label(),
		HireDate:        e.HireDate.Format(dateLayout),
	}
	for i := range e.Specialties {
		sp := &e.Specialties[i]
		resp.Specialties = append(resp.Specialties, dto.SpecialtyResponse{
			ID:          sp.SpecialtyID,
			Name:        sp.Name,
			Description: sp.Description,
			IsActive:    sp.IsActive,
		})
	}
	return resp
}

func (s *employeeService) toDetailResponse(e *model.Employee) *dto.EmployeeDetailResponse {
	now := time.Now()
	detail := &dto.EmployeeDetailResponse{
		EmployeeResponse: *toEmployeeResponse(e),
		Age:              e.Age(now),
		TenureYears:      e.TenureYears(now),
		Phone:            e.Phone,
		Address:          e.Address,
		EmergencyContact: e.EmergencyContact,
		EmergencyPhone:   e.EmergencyPhone,
		PersonalEmail:    e.PersonalEmail,
		LinkedinURL:      e.LinkedinURL,
		HealthPlan:       string(e.HealthPlan),
		HealthPlanLabel:  e.HealthPlan.Label(),
		PensionFund:      string(e.PensionFund),
		PensionFundLabel: e.PensionFund.Label(),

		AnnualVacationDays: e.AnnualVacationDays,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          e.UpdatedAt.Format(time.RFC3339),
	}
	if e.BirthDate != nil {
		detail.BirthDate = e.BirthDate.Format(dateLayout)
	}
	if e.PhotoPath != "" {
		detail.PhotoURL = s.store.URL(e.PhotoPath)
	}
	if e.Account != nil {
		detail.Account = &dto.AccountResponse{
			ID:                 e.Account.AccountID,
			Username:           e.Account.Username,
			Email:              e.Account.Email,
			FirstName:          e.Account.FirstName,
			LastName:           e.Account.LastName,
			Role:               e.Account.Role,
			MustChangePassword: e.Account.MustChangePassword,
		}
	}
	return detail
}

func (s *employeeService) toDocumentResponse(d *model.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:          d.DocumentID,
		EmployeeID:  d.EmployeeID,
		Type:        string(d.Type),
		TypeLabel:   d.Type.Label(),
		Name:        d.Name,
		URL:         s.store.URL(d.FilePath),
		Description: d.Description,
		UploadedAt:  d.UploadedAt.Format(time.RFC3339),
	}
}
