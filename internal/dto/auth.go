package dto

// ── 认证模块请求 ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
// 首次设置密码（凭证不可用）时 old_password 可留空
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"omitempty"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}
