package model

// Account 系统账号表 — 对应 accounts
// 账号由认证子系统拥有，员工档案通过 AccountID 单向引用；
// PasswordHash 为空串表示凭证不可用（必须先重置密码才能登录）
type Account struct {
	AccountID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"account_id"`
	Username           string `gorm:"type:varchar(150);not null;uniqueIndex"         json:"username"`
	Email              string `gorm:"type:varchar(255);not null;default:''"          json:"email"`
	FirstName          string `gorm:"type:varchar(150);not null;default:''"          json:"first_name"`
	LastName           string `gorm:"type:varchar(150);not null;default:''"          json:"last_name"`
	PasswordHash       string `gorm:"type:varchar(255);not null;default:''"          json:"-"`
	Role               string `gorm:"type:varchar(20);not null;default:'employee'"   json:"role"` // admin | hr | employee
	MustChangePassword bool   `gorm:"not null;default:false"                         json:"must_change_password"`
	IsActive           bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Account) TableName() string { return "accounts" }

// HasUsableCredential 凭证是否可用于登录
func (a *Account) HasUsableCredential() bool {
	return a.PasswordHash != ""
}
