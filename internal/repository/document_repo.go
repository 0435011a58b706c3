package repository

import (
	"context"

	"gorm.io/gorm"

	"tecnico-hr/internal/model"
)

// DocumentListFilters 文档列表过滤条件
type DocumentListFilters struct {
	// Search 对名称、描述与文件路径做不区分大小写的模糊匹配
	Search string
	Type   model.DocumentType
}

// DocumentRepository 员工文档数据访问接口
type DocumentRepository interface {
	Create(ctx context.Context, document *model.Document) error
	GetByID(ctx context.Context, id string) (*model.Document, error)
	ListByEmployee(ctx context.Context, employeeID string, filters *DocumentListFilters) ([]model.Document, error)
	Delete(ctx context.Context, id string) error
}

// documentRepo DocumentRepository 的 GORM 实现
type documentRepo struct {
	db *gorm.DB
}

// NewDocumentRepo 创建 DocumentRepository 实例
func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, document *model.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepo) GetByID(ctx context.Context, id string) (*model.Document, error) {
	var document model.Document
	err := r.db.WithContext(ctx).
		Where("document_id = ?", id).
		First(&document).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// ListByEmployee 按上传时间倒序返回员工文档
func (r *documentRepo) ListByEmployee(ctx context.Context, employeeID string, filters *DocumentListFilters) ([]model.Document, error) {
	var documents []model.Document

	db := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID)

	if filters != nil {
		if filters.Search != "" {
			like := "%" + filters.Search + "%"
			db = db.Where(
				"name ILIKE ? OR description ILIKE ? OR file_path ILIKE ?",
				like, like, like,
			)
		}
		if filters.Type != "" {
			db = db.Where("type = ?", filters.Type)
		}
	}

	err := db.Order("uploaded_at DESC").Find(&documents).Error
	return documents, err
}

func (r *documentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("document_id = ?", id).
		Delete(&model.Document{}).Error
}
