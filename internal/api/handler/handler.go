package handler

import "tecnico-hr/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Employee  *EmployeeHandler
	Vacation  *VacationHandler
	Specialty *SpecialtyHandler
	Document  *DocumentHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Employee:  NewEmployeeHandler(svc.Employee),
		Vacation:  NewVacationHandler(svc.Vacation),
		Specialty: NewSpecialtyHandler(svc.Specialty),
		Document:  NewDocumentHandler(svc.Document),
		Export:    NewExportHandler(svc.Export),
	}
}
