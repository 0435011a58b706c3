package model

// Specialty 专长标签表 — 对应 specialties
// 与员工档案多对多关联（employee_specialties 中间表）
type Specialty struct {
	SpecialtyID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"specialty_id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Specialty) TableName() string { return "specialties" }
