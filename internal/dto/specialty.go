package dto

// ── 专长模块 DTO ──

// CreateSpecialtyRequest 创建专长请求
type CreateSpecialtyRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateSpecialtyRequest 更新专长请求
type UpdateSpecialtyRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// SpecialtyListRequest 专长列表查询参数
type SpecialtyListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// SpecialtyResponse 专长信息响应
type SpecialtyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}
