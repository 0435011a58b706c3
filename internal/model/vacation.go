package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// VacationStatus 休假申请状态
type VacationStatus string

const (
	VacationPending    VacationStatus = "pending"
	VacationApproved   VacationStatus = "approved"
	VacationRejected   VacationStatus = "rejected"
	VacationInProgress VacationStatus = "in_progress"
	VacationCompleted  VacationStatus = "completed"
)

var vacationStatusLabels = map[VacationStatus]string{
	VacationPending:    "Pendiente",
	VacationApproved:   "Aprobada",
	VacationRejected:   "Rechazada",
	VacationInProgress: "En Curso",
	VacationCompleted:  "Finalizada",
}

// Valid 判断是否为合法枚举值
func (s VacationStatus) Valid() bool { _, ok := vacationStatusLabels[s]; return ok }

// Label 展示文案
func (s VacationStatus) Label() string { return vacationStatusLabels[s] }

// ErrVacationDatesRequired 持久化边界校验：起止日期必填
// 表单层之外的程序化写入也必须满足该约束
var ErrVacationDatesRequired = errors.New("休假申请的起止日期不能为空")

// VacationRequest 休假申请表 — 对应 vacation_requests
type VacationRequest struct {
	VacationRequestID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vacation_request_id"`
	EmployeeID        string         `gorm:"type:uuid;not null;index"                       json:"employee_id"`
	StartDate         time.Time      `gorm:"type:date;not null"                             json:"start_date"`
	EndDate           time.Time      `gorm:"type:date;not null"                             json:"end_date"`
	RequestedDays     int            `gorm:"not null"                                       json:"requested_days"`
	Reason            string         `gorm:"type:text;not null;default:''"                  json:"reason,omitempty"`
	Status            VacationStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`

	// 审批信息：一经审批不再变更
	ApproverID      *string    `gorm:"type:uuid"                     json:"approver_id,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	DecisionComment string     `gorm:"type:text;not null;default:''" json:"decision_comment,omitempty"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Approver *Account  `gorm:"foreignKey:ApproverID;references:AccountID"  json:"approver,omitempty"`
}

// TableName 指定表名
func (VacationRequest) TableName() string { return "vacation_requests" }

// BeforeSave GORM 钩子：起止日期缺失时拒绝写入
func (v *VacationRequest) BeforeSave(_ *gorm.DB) error {
	if v.StartDate.IsZero() || v.EndDate.IsZero() {
		return ErrVacationDatesRequired
	}
	return nil
}

// Decided 是否已审批（状态离开 pending 后不可再审批）
func (v *VacationRequest) Decided() bool {
	return v.Status != VacationPending
}

// DurationDays 起止日期的闭区间天数
func (v *VacationRequest) DurationDays() int {
	return int(v.EndDate.Sub(v.StartDate).Hours()/24) + 1
}
