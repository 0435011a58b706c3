package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/service"
	"tecnico-hr/pkg/response"
)

// SpecialtyHandler 专长模块 HTTP 处理器
type SpecialtyHandler struct {
	specialtySvc service.SpecialtyService
}

// NewSpecialtyHandler 创建 SpecialtyHandler
func NewSpecialtyHandler(specialtySvc service.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{specialtySvc: specialtySvc}
}

// Create 创建专长
// POST /api/v1/specialties
func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req dto.CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.specialtySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, result)
}

// List 专长列表
// GET /api/v1/specialties?include_inactive=
func (h *SpecialtyHandler) List(c *gin.Context) {
	var req dto.SpecialtyListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.specialtySvc.List(c.Request.Context(), req.IncludeInactive)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Get 专长详情
// GET /api/v1/specialties/:id
func (h *SpecialtyHandler) Get(c *gin.Context) {
	result, err := h.specialtySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 更新专长
// PATCH /api/v1/specialties/:id
func (h *SpecialtyHandler) Update(c *gin.Context) {
	var req dto.UpdateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.specialtySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除专长
// DELETE /api/v1/specialties/:id
func (h *SpecialtyHandler) Delete(c *gin.Context) {
	if err := h.specialtySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, nil)
}

// writeError 专长模块业务错误统一映射
func (h *SpecialtyHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSpecialtyNotFound):
		response.NotFound(c, 14001, "专长不存在")
	case errors.Is(err, service.ErrSpecialtyNameExists):
		response.Conflict(c, 14002, "专长名称已存在")
	default:
		response.InternalError(c)
	}
}
