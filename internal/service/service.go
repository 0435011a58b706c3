package service

import (
	"go.uber.org/zap"

	"tecnico-hr/internal/repository"
	"tecnico-hr/pkg/jwt"
	"tecnico-hr/pkg/redis"
	"tecnico-hr/pkg/storage"
)

// Service 业务服务聚合
type Service struct {
	Auth      AuthService
	Identity  IdentityService
	Employee  EmployeeService
	Vacation  VacationService
	Specialty SpecialtyService
	Document  DocumentService
	Export    ExportService
}

// NewService 创建业务服务聚合；rdb 可为 nil（Redis 降级运行）
func NewService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, store storage.Store, logger *zap.Logger) *Service {
	identity := NewIdentityService(logger)
	return &Service{
		Auth:      NewAuthService(repo, jwtMgr, rdb, logger),
		Identity:  identity,
		Employee:  NewEmployeeService(repo, identity, store, logger),
		Vacation:  NewVacationService(repo, logger),
		Specialty: NewSpecialtyService(repo, logger),
		Document:  NewDocumentService(repo, store, logger),
		Export:    NewExportService(repo, logger),
	}
}
