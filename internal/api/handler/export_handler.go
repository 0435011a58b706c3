package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/service"
	"tecnico-hr/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportEmployees 导出员工花名册 (.xlsx)
// GET /api/v1/export/employees?search=&status=&department=&specialty_id=
func (h *ExportHandler) ExportEmployees(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	buf, filename, err := h.exportSvc.ExportEmployees(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	writeDownload(c, buf.Bytes(), filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// VacationCalendar 导出员工年度休假日历 (.ics)
// GET /api/v1/export/employees/:id/vacations.ics?year=
func (h *ExportHandler) VacationCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		response.BadRequest(c, 10001, "year 参数无效")
		return
	}

	buf, filename, err := h.exportSvc.VacationCalendar(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		h.writeError(c, err)
		return
	}

	writeDownload(c, buf.Bytes(), filename, "text/calendar")
}

// writeDownload 设置文件下载响应头并写入内容
func writeDownload(c *gin.Context, data []byte, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

// writeError 导出模块业务错误统一映射
func (h *ExportHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoEmployees):
		response.NotFound(c, 16001, "没有符合条件的员工")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工档案不存在")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
