package model

import "time"

// Employee 员工档案表 — 对应 employees
// 档案可以独立于系统账号存在（AccountID 为空）；
// 账号删除时档案级联删除（见迁移中的外键约束）
type Employee struct {
	EmployeeID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	AccountID  *string `gorm:"type:uuid;uniqueIndex"                          json:"account_id,omitempty"`

	// 身份信息
	EmployeeCode string     `gorm:"type:varchar(20);not null;uniqueIndex"  json:"employee_code"`
	NationalID   string     `gorm:"type:varchar(12);not null;uniqueIndex"  json:"national_id"` // RUT，格式 12345678-9
	FirstName    string     `gorm:"type:varchar(150);not null;default:''"  json:"first_name"`
	LastName     string     `gorm:"type:varchar(150);not null;default:''"  json:"last_name"`
	Email        string     `gorm:"type:varchar(255);not null;default:''"  json:"email"`
	BirthDate    *time.Time `gorm:"type:date"                              json:"birth_date,omitempty"`

	// 岗位信息
	Location      Location   `gorm:"type:varchar(20);not null;default:'santiago'"   json:"location"`
	Department    Department `gorm:"type:varchar(20);not null;default:'operations'" json:"department"`
	PositionTitle string     `gorm:"type:varchar(100);not null;default:''"          json:"position_title"`
	HireDate      time.Time  `gorm:"type:date;not null"                             json:"hire_date"`

	// 联系方式
	Phone            string `gorm:"type:varchar(20);not null;default:''"  json:"phone"`
	Address          string `gorm:"type:text;not null;default:''"         json:"address"`
	EmergencyContact string `gorm:"type:varchar(100);not null;default:''" json:"emergency_contact"`
	EmergencyPhone   string `gorm:"type:varchar(20);not null;default:''"  json:"emergency_phone"`
	PersonalEmail    string `gorm:"type:varchar(255);not null;default:''" json:"personal_email"`
	LinkedinURL      string `gorm:"type:varchar(255);not null;default:''" json:"linkedin_url"`

	// 福利信息
	HealthPlan         HealthPlan  `gorm:"type:varchar(30);not null;default:'fonasa'"      json:"health_plan"`
	PensionFund        PensionFund `gorm:"type:varchar(30);not null;default:'afp_capital'" json:"pension_fund"`
	AnnualVacationDays int         `gorm:"not null;default:15"                             json:"annual_vacation_days"`

	// 状态与附加信息
	Status    EmployeeStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	PhotoPath string         `gorm:"type:varchar(255);not null;default:''"      json:"photo_path"`
	Notes     string         `gorm:"type:text;not null;default:''"              json:"notes"`
	IsActive  bool           `gorm:"not null;default:true"                      json:"is_active"`
	BaseModel

	// 关联
	Account     *Account    `gorm:"foreignKey:AccountID;references:AccountID"                json:"account,omitempty"`
	Specialties []Specialty `gorm:"many2many:employee_specialties;joinForeignKey:EmployeeID;joinReferences:SpecialtyID" json:"specialties,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// FullName 完整姓名，姓名缺失时回退为员工编号
func (e *Employee) FullName() string {
	switch {
	case e.FirstName != "" && e.LastName != "":
		return e.FirstName + " " + e.LastName
	case e.FirstName != "":
		return e.FirstName
	case e.LastName != "":
		return e.LastName
	default:
		return "Empleado " + e.EmployeeCode
	}
}

// Age 按出生日期计算年龄，未填写时返回 0
func (e *Employee) Age(now time.Time) int {
	if e.BirthDate == nil {
		return 0
	}
	return yearsBetween(*e.BirthDate, now)
}

// TenureYears 按入职日期计算工龄（整年）
func (e *Employee) TenureYears(now time.Time) int {
	if e.HireDate.IsZero() {
		return 0
	}
	return yearsBetween(e.HireDate, now)
}

// yearsBetween 计算整年差，未到周年日则减一
func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
