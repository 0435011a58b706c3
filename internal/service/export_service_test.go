package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
)

func setupTestExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	svc := NewExportService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestExportService_ExportEmployees(t *testing.T) {
	svc, repos := setupTestExportService()
	seedEmployee(repos, "SE1000", 15)
	seedEmployee(repos, "SE1001", 20)

	buf, filename, err := svc.ExportEmployees(context.Background(), &dto.EmployeeListRequest{})
	if err != nil {
		t.Fatalf("ExportEmployees 应成功，但返回错误: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾，实际 %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法的 Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Empleados")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	// 表头 + 2 名员工
	if len(rows) != 3 {
		t.Fatalf("期望 3 行，实际 %d 行", len(rows))
	}
	if rows[1][0] != "SE1000" {
		t.Errorf("期望首行员工 SE1000，实际 %s", rows[1][0])
	}
}

func TestExportService_ExportEmployees_FilterByDepartment(t *testing.T) {
	svc, repos := setupTestExportService()
	opsEmp := seedEmployee(repos, "SE1000", 15)
	opsEmp.Department = model.DeptOperations
	itEmp := seedEmployee(repos, "SE1001", 15)
	itEmp.Department = model.DeptIT

	buf, _, err := svc.ExportEmployees(context.Background(), &dto.EmployeeListRequest{
		Department: string(model.DeptIT),
	})
	if err != nil {
		t.Fatalf("ExportEmployees 应成功，但返回错误: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法的 Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Empleados")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	// 表头 + 仅 IT 部门的 1 名员工
	if len(rows) != 2 {
		t.Fatalf("期望 2 行，实际 %d 行", len(rows))
	}
	if rows[1][0] != "SE1001" {
		t.Errorf("期望导出 SE1001，实际 %s", rows[1][0])
	}
}

func TestExportService_ExportEmployees_Empty(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportEmployees(context.Background(), &dto.EmployeeListRequest{})
	if !errors.Is(err, ErrExportNoEmployees) {
		t.Fatalf("期望 ErrExportNoEmployees，实际 %v", err)
	}
}

func TestExportService_VacationCalendar(t *testing.T) {
	svc, repos := setupTestExportService()
	employee := seedEmployee(repos, "SE1000", 15)
	seedVacation(repos, employee.EmployeeID, "2026-02-01", "2026-02-10", 10, model.VacationApproved)
	seedVacation(repos, employee.EmployeeID, "2026-07-01", "2026-07-05", 5, model.VacationCompleted)
	// pending / rejected 不进日历
	seedVacation(repos, employee.EmployeeID, "2026-09-01", "2026-09-03", 3, model.VacationPending)
	seedVacation(repos, employee.EmployeeID, "2026-10-01", "2026-10-03", 3, model.VacationRejected)

	buf, filename, err := svc.VacationCalendar(context.Background(), employee.EmployeeID, 2026)
	if err != nil {
		t.Fatalf("VacationCalendar 应成功，但返回错误: %v", err)
	}
	if filename != "vacaciones_SE1000_2026.ics" {
		t.Errorf("文件名不符，实际 %s", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("导出内容应为 iCalendar 格式")
	}
	if got := strings.Count(content, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("期望 2 个事件，实际 %d 个", got)
	}
	if !strings.Contains(content, "Vacaciones: Juan Pérez") {
		t.Error("事件摘要应包含员工姓名")
	}
}

func TestExportService_VacationCalendar_EmployeeNotFound(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.VacationCalendar(context.Background(), "no-such-id", 2026)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("期望 ErrEmployeeNotFound，实际 %v", err)
	}
}
