package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/service"
	"tecnico-hr/pkg/jwt"
	"tecnico-hr/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "用户名或密码错误")
		case errors.Is(err, service.ErrAccountDisabled):
			response.Error(c, http.StatusForbidden, 11002, "账号已停用")
		case errors.Is(err, service.ErrPasswordResetNeed):
			response.Error(c, http.StatusForbidden, 11003, "凭证不可用，请联系管理员重置密码")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Refresh 刷新 Token
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			response.Unauthorized(c, 11004, "Refresh Token 无效")
		case errors.Is(err, service.ErrAccountDisabled):
			response.Error(c, http.StatusForbidden, 11002, "账号已停用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout 登出
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := MustGetToken(c)
	if !ok {
		return
	}

	v, exists := c.Get("claims")
	tokenClaims, ok := v.(*jwt.Claims)
	if !exists || !ok {
		response.Unauthorized(c, 10002, "未认证")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token, tokenClaims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me 当前账号信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			response.NotFound(c, 11005, "账号不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ChangePassword 修改密码
// POST /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), accountID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrOldPasswordWrong):
			response.BadRequest(c, 11006, "原密码错误")
		case errors.Is(err, service.ErrAccountNotFound):
			response.NotFound(c, 11005, "账号不存在")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
