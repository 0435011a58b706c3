package dto

// ── 文档模块 DTO ──

// UploadDocumentRequest 上传文档的表单字段（文件随 multipart 提交）
type UploadDocumentRequest struct {
	Type        string `form:"type"        binding:"required"`
	Name        string `form:"name"        binding:"required,max=200"`
	Description string `form:"description" binding:"omitempty,max=1000"`
}

// DocumentListRequest 文档列表查询参数
type DocumentListRequest struct {
	Search string `form:"search" binding:"omitempty,max=100"`
	Type   string `form:"type"   binding:"omitempty"`
}

// DocumentResponse 文档信息响应
type DocumentResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Type        string `json:"type"`
	TypeLabel   string `json:"type_label"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	UploadedAt  string `json:"uploaded_at"`
}
