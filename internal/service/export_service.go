package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEmployees  = errors.New("没有符合条件的员工")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 员工花名册导出为 Excel (.xlsx)，支持与列表页相同的过滤条件
//   - 员工年度休假导出为 iCalendar (.ics)，仅含已批准/进行中/已结束的申请
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportEmployees 导出员工花名册为 Excel
	ExportEmployees(ctx context.Context, req *dto.EmployeeListRequest) (*bytes.Buffer, string, error)
	// VacationCalendar 导出员工某年度的休假日历 (.ics)
	VacationCalendar(ctx context.Context, employeeID string, year int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportEmployees — 导出员工花名册为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：单 Sheet，每行一名员工
// 列：编号 | 姓名 | RUT | 邮箱 | 部门 | 城市 | 岗位 | 状态 | 入职日期 | 年假天数

func (s *exportService) ExportEmployees(ctx context.Context, req *dto.EmployeeListRequest) (*bytes.Buffer, string, error) {
	filters := &repository.EmployeeListFilters{
		Search:      req.Search,
		Status:      model.EmployeeStatus(req.Status),
		Department:  model.Department(req.Department),
		SpecialtyID: req.SpecialtyID,
	}

	// 导出不分页，上限一次取 10000
	employees, _, err := s.repo.Employee.List(ctx, filters, 0, 10000)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(employees) == 0 {
		return nil, "", ErrExportNoEmployees
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Empleados"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Código", "Nombre", "RUT", "Email", "Departamento", "Ciudad", "Cargo", "Estado", "Fecha Ingreso", "Días Vacaciones"}
	widths := []float64{10, 28, 14, 30, 18, 16, 22, 14, 14, 16}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range headers {
		cellRef, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellRef, h)
		f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
	}

	for row, e := range employees {
		values := []interface{}{
			e.EmployeeCode,
			e.FullName(),
			e.NationalID,
			e.Email,
			e.Department.Label(),
			e.Location.Label(),
			e.PositionTitle,
			e.Status.Label(),
			e.HireDate.Format(dateLayout),
			e.AnnualVacationDays,
		}
		for col, v := range values {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cellRef, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("empleados_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// VacationCalendar — 导出员工年度休假日历 (.ics)
// ═══════════════════════════════════════════════════════════
//
// 每条申请生成一个全天事件（DTEND 为开区间，需 +1 天），
// 仅包含 approved / in_progress / completed 三种状态

func (s *exportService) VacationCalendar(ctx context.Context, employeeID string, year int) (*bytes.Buffer, string, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEmployeeNotFound
		}
		return nil, "", err
	}

	statuses := []model.VacationStatus{
		model.VacationApproved,
		model.VacationInProgress,
		model.VacationCompleted,
	}
	requests, err := s.repo.Vacation.ListByEmployeeAndYear(ctx, employeeID, year, statuses)
	if err != nil {
		s.logger.Error("查询休假记录失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tecnico-hr//Vacaciones//ES")
	cal.SetName(fmt.Sprintf("Vacaciones %s %d", employee.FullName(), year))

	now := time.Now()
	for i := range requests {
		req := &requests[i]

		event := cal.AddEvent(fmt.Sprintf("vacation-%s@tecnico-hr", req.VacationRequestID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(req.StartDate)
		event.SetAllDayEndAt(req.EndDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Vacaciones: %s", employee.FullName()))
		event.SetDescription(fmt.Sprintf("%s (%d días) — %s", req.Status.Label(), req.RequestedDays, req.Reason))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("vacaciones_%s_%d.ics", employee.EmployeeCode, year)
	return buf, filename, nil
}
