package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/service"
	"tecnico-hr/pkg/response"
)

// DocumentHandler 员工文档模块 HTTP 处理器
type DocumentHandler struct {
	documentSvc service.DocumentService
}

// NewDocumentHandler 创建 DocumentHandler
func NewDocumentHandler(documentSvc service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentSvc: documentSvc}
}

// Upload 上传员工文档
// POST /api/v1/employees/:id/documents  (multipart: file + 表单字段)
func (h *DocumentHandler) Upload(c *gin.Context) {
	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少文档文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "文档文件无法读取")
		return
	}
	defer file.Close()

	result, err := h.documentSvc.Upload(c.Request.Context(), c.Param("id"), &req, fileHeader.Filename, file)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, result)
}

// List 员工文档列表
// GET /api/v1/employees/:id/documents?search=&type=
func (h *DocumentHandler) List(c *gin.Context) {
	var req dto.DocumentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.documentSvc.ListByEmployee(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Get 文档详情
// GET /api/v1/documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	result, err := h.documentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除文档（含存储对象）
// DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, nil)
}

// writeError 文档模块业务错误统一映射
func (h *DocumentHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDocumentNotFound):
		response.NotFound(c, 15001, "文档不存在")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工档案不存在")
	case errors.Is(err, service.ErrInvalidDocType):
		response.BadRequest(c, 15002, "文档类型无效")
	default:
		response.InternalError(c)
	}
}
