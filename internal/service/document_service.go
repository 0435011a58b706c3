package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
	"tecnico-hr/pkg/storage"
)

// ── 文档模块业务错误 ──

var (
	ErrDocumentNotFound = errors.New("文档不存在")
	ErrInvalidDocType   = errors.New("文档类型无效")
)

// DocumentService 员工文档业务接口
type DocumentService interface {
	// Upload 写入存储对象并登记文档记录；登记失败时回收已写入的对象
	Upload(ctx context.Context, employeeID string, req *dto.UploadDocumentRequest, filename string, r io.Reader) (*dto.DocumentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DocumentResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, req *dto.DocumentListRequest) ([]dto.DocumentResponse, error)
	// Delete 先删除存储对象再删除记录
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	repo   *repository.Repository
	store  storage.Store
	logger *zap.Logger
}

// NewDocumentService 创建 DocumentService 实例
func NewDocumentService(repo *repository.Repository, store storage.Store, logger *zap.Logger) DocumentService {
	return &documentService{repo: repo, store: store, logger: logger}
}

func (s *documentService) Upload(ctx context.Context, employeeID string, req *dto.UploadDocumentRequest, filename string, r io.Reader) (*dto.DocumentResponse, error) {
	if !model.DocumentType(req.Type).Valid() {
		return nil, ErrInvalidDocType
	}

	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	path, err := s.store.Save("documents", filename, r)
	if err != nil {
		s.logger.Error("保存文档文件失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	document := &model.Document{
		EmployeeID:  employeeID,
		Type:        model.DocumentType(req.Type),
		Name:        req.Name,
		FilePath:    path,
		Description: req.Description,
		UploadedAt:  time.Now(),
	}

	if err := s.repo.Document.Create(ctx, document); err != nil {
		if derr := s.store.Delete(path); derr != nil {
			s.logger.Warn("回收文档文件失败", zap.String("path", path), zap.Error(derr))
		}
		s.logger.Error("登记文档失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("文档已上传",
		zap.String("employee_id", employeeID),
		zap.String("type", req.Type),
		zap.String("path", path),
	)
	return s.toResponse(document), nil
}

func (s *documentService) GetByID(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	document, err := s.repo.Document.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return s.toResponse(document), nil
}

func (s *documentService) ListByEmployee(ctx context.Context, employeeID string, req *dto.DocumentListRequest) ([]dto.DocumentResponse, error) {
	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	var filters *repository.DocumentListFilters
	if req != nil {
		if req.Type != "" && !model.DocumentType(req.Type).Valid() {
			return nil, ErrInvalidDocType
		}
		filters = &repository.DocumentListFilters{Search: req.Search, Type: model.DocumentType(req.Type)}
	}

	documents, err := s.repo.Document.ListByEmployee(ctx, employeeID, filters)
	if err != nil {
		s.logger.Error("查询文档列表失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.DocumentResponse, 0, len(documents))
	for i := range documents {
		result = append(result, *s.toResponse(&documents[i]))
	}
	return result, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	document, err := s.repo.Document.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}

	// 存储对象与记录一并清理；对象删除失败不阻断记录删除，只记日志
	if err := s.store.Delete(document.FilePath); err != nil {
		s.logger.Warn("删除文档文件失败", zap.String("path", document.FilePath), zap.Error(err))
	}

	if err := s.repo.Document.Delete(ctx, id); err != nil {
		s.logger.Error("删除文档记录失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *documentService) toResponse(d *model.Document) *dto.DocumentResponse {
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
