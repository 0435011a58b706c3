package model

import "time"

// Document 员工文档表 — 对应 documents
// FilePath 为存储层相对路径，删除记录时需同时删除存储对象
type Document struct {
	DocumentID  string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"document_id"`
	EmployeeID  string       `gorm:"type:uuid;not null;index"                       json:"employee_id"`
	Type        DocumentType `gorm:"type:varchar(25);not null;default:'other'"      json:"type"`
	Name        string       `gorm:"type:varchar(200);not null"                     json:"name"`
	FilePath    string       `gorm:"type:varchar(255);not null"                     json:"file_path"`
	Description string       `gorm:"type:text;not null;default:''"                  json:"description,omitempty"`
	UploadedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"uploaded_at"`

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (Document) TableName() string { return "documents" }
