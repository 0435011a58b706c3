package dto

// ── 员工档案模块 DTO ──

// CreateEmployeeRequest 创建员工档案请求
// EmployeeCode 留空时由服务端自动生成（SE + 序号）
type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" binding:"omitempty,max=20"`
	NationalID   string `json:"national_id"   binding:"required,max=12"` // RUT，格式 12345678-9
	FirstName    string `json:"first_name"    binding:"required,max=150"`
	LastName     string `json:"last_name"     binding:"required,max=150"`
	Email        string `json:"email"         binding:"required,email"`
	BirthDate    string `json:"birth_date"    binding:"omitempty"` // "1990-05-20"
	HireDate     string `json:"hire_date"     binding:"omitempty"` // 默认当天

	Location      string `json:"location"       binding:"omitempty"`
	Department    string `json:"department"     binding:"omitempty"`
	PositionTitle string `json:"position_title" binding:"omitempty,max=100"`
	Status        string `json:"status"         binding:"omitempty"`

	Phone            string `json:"phone"             binding:"omitempty,max=20"`
	Address          string `json:"address"           binding:"omitempty"`
	EmergencyContact string `json:"emergency_contact" binding:"omitempty,max=100"`
	EmergencyPhone   string `json:"emergency_phone"   binding:"omitempty,max=20"`
	PersonalEmail    string `json:"personal_email"    binding:"omitempty,email"`
	LinkedinURL      string `json:"linkedin_url"      binding:"omitempty,url"`

	HealthPlan         string `json:"health_plan"          binding:"omitempty"`
	PensionFund        string `json:"pension_fund"         binding:"omitempty"`
	AnnualVacationDays *int   `json:"annual_vacation_days" binding:"omitempty,min=0,max=60"`

	Notes        string   `json:"notes"         binding:"omitempty"`
	SpecialtyIDs []string `json:"specialty_ids" binding:"omitempty,dive,uuid"`
}

// UpdateEmployeeRequest 更新员工档案请求（全部字段可选）
type UpdateEmployeeRequest struct {
	NationalID *string `json:"national_id" binding:"omitempty,max=12"`
	FirstName  *string `json:"first_name"  binding:"omitempty,max=150"`
	LastName   *string `json:"last_name"   binding:"omitempty,max=150"`
	Email      *string `json:"email"       binding:"omitempty,email"`
	BirthDate  *string `json:"birth_date"`
	HireDate   *string `json:"hire_date"`

	Location      *string `json:"location"`
	Department    *string `json:"department"`
	PositionTitle *string `json:"position_title" binding:"omitempty,max=100"`
	Status        *string `json:"status"`

	Phone            *string `json:"phone"             binding:"omitempty,max=20"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact" binding:"omitempty,max=100"`
	EmergencyPhone   *string `json:"emergency_phone"   binding:"omitempty,max=20"`
	PersonalEmail    *string `json:"personal_email"    binding:"omitempty,email"`
	LinkedinURL      *string `json:"linkedin_url"      binding:"omitempty,url"`

	HealthPlan         *string `json:"health_plan"`
	PensionFund        *string `json:"pension_fund"`
	AnnualVacationDays *int    `json:"annual_vacation_days" binding:"omitempty,min=0,max=60"`

	Notes        *string   `json:"notes"`
	SpecialtyIDs *[]string `json:"specialty_ids" binding:"omitempty,dive,uuid"`
}

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	PaginationRequest
	Search      string `form:"search"       binding:"omitempty,max=100"`
	Status      string `form:"status"       binding:"omitempty"`
	Department  string `form:"department"   binding:"omitempty"`
	SpecialtyID string `form:"specialty_id" binding:"omitempty,uuid"`
}

// EmployeeResponse 员工档案响应（列表项）
type EmployeeResponse struct {
	ID                string              `json:"id"`
	EmployeeCode      string              `json:"employee_code"`
	NationalID        string              `json:"national_id"`
	FirstName         string              `json:"first_name"`
	LastName          string              `json:"last_name"`
	FullName          string              `json:"full_name"`
	Email             string              `json:"email"`
	Location          string              `json:"location"`
	LocationLabel     string              `json:"location_label"`
	Department        string              `json:"department"`
	DepartmentLabel   string              `json:"department_label"`
	PositionTitle     string              `json:"position_title,omitempty"`
	Status            string              `json:"status"`
	StatusLabel       string              `json:"status_label"`
	HireDate          string              `json:"hire_date"`
	Specialties       []SpecialtyResponse `json:"specialties,omitempty"`
}

// EmployeeDetailResponse 员工档案详情响应
// 聚合档案、文档、最近 5 条休假记录与当年剩余假期
type EmployeeDetailResponse struct {
	EmployeeResponse
	BirthDate        string `json:"birth_date,omitempty"`
	Age              int    `json:"age,omitempty"`
	TenureYears      int    `json:"tenure_years"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	PersonalEmail    string `json:"personal_email,omitempty"`
	LinkedinURL      string `json:"linkedin_url,omitempty"`

	HealthPlan       string `json:"health_plan"`
	HealthPlanLabel  string `json:"health_plan_label"`
	PensionFund      string `json:"pension_fund"`
	PensionFundLabel string `json:"pension_fund_label"`

	AnnualVacationDays    int  `json:"annual_vacation_days"`
	RemainingVacationDays int  `json:"remaining_vacation_days"`
	Notes                 string `json:"notes,omitempty"`
	PhotoURL              string `json:"photo_url,omitempty"`

	Account         *AccountResponse          `json:"account,omitempty"`
	Documents       []DocumentResponse        `json:"documents"`
	RecentVacations []VacationRequestResponse `json:"recent_vacations"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
