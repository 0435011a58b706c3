package dto

// ── 休假模块 DTO ──

// CreateVacationRequest 创建休假申请请求
// RequestedDays 不接受客户端值：服务端按闭区间天数重新计算
type CreateVacationRequest struct {
	StartDate string `json:"start_date" binding:"required"` // "2026-02-01"
	EndDate   string `json:"end_date"   binding:"required"` // "2026-02-10"
	Reason    string `json:"reason"     binding:"omitempty,max=1000"`
}

// DecideVacationRequest 审批休假申请请求
type DecideVacationRequest struct {
	Action  string `json:"action"  binding:"required,oneof=approve reject"`
	Comment string `json:"comment" binding:"omitempty,max=1000"`
}

// VacationRequestResponse 休假申请响应
type VacationRequestResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	RequestedDays   int    `json:"requested_days"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	ApproverID      string `json:"approver_id,omitempty"`
	ApproverName    string `json:"approver_name,omitempty"`
	DecidedAt       string `json:"decided_at,omitempty"`
	DecisionComment string `json:"decision_comment,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// DecideVacationResponse 审批结果响应
// Warning 非空表示申请早已审批，本次操作未改变状态
type DecideVacationResponse struct {
	Request VacationRequestResponse `json:"request"`
	Warning string                  `json:"warning,omitempty"`
}

// VacationBalanceResponse 年度假期余额响应
type VacationBalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	AnnualDays    int    `json:"annual_days"`
	RemainingDays int    `json:"remaining_days"`
}
