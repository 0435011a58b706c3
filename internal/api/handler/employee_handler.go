package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/service"
	"tecnico-hr/pkg/response"
)

// EmployeeHandler 员工档案模块 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// Create 创建员工档案
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.employeeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, result)
}

// Get 员工档案详情
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	result, err := h.employeeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// List 员工列表
// GET /api/v1/employees?search=&status=&department=&specialty_id=&page=&page_size=
func (h *EmployeeHandler) List(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.employeeSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Update 更新员工档案
// PATCH /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.employeeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除员工档案
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, nil)
}

// UploadPhoto 上传员工照片
// POST /api/v1/employees/:id/photo  (multipart: photo)
func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.BadRequest(c, 10001, "缺少照片文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "照片文件无法读取")
		return
	}
	defer file.Close()

	url, err := h.employeeSvc.UploadPhoto(c.Request.Context(), c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"photo_url": url})
}

// writeError 员工模块业务错误统一映射
func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工档案不存在")
	case errors.Is(err, service.ErrEmployeeConflict):
		response.Conflict(c, 12002, "员工编号、RUT 或用户名已被占用")
	case errors.Is(err, service.ErrInvalidChoice):
		response.BadRequest(c, 12003, "枚举字段取值无效")
	case errors.Is(err, service.ErrSpecialtyMissing):
		response.BadRequest(c, 12004, "指定的专长不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 12005, "日期格式无效")
	default:
		response.Error(c, http.StatusInternalServerError, 50000, "服务器内部错误")
	}
}
