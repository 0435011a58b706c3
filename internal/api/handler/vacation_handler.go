package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/service"
	"tecnico-hr/pkg/response"
)

// VacationHandler 休假模块 HTTP 处理器
type VacationHandler struct {
	vacationSvc service.VacationService
}

// NewVacationHandler 创建 VacationHandler
func NewVacationHandler(vacationSvc service.VacationService) *VacationHandler {
	return &VacationHandler{vacationSvc: vacationSvc}
}

// Create 创建休假申请
// POST /api/v1/employees/:id/vacations
func (h *VacationHandler) Create(c *gin.Context) {
	var req dto.CreateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.vacationSvc.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, result)
}

// List 员工休假申请列表
// GET /api/v1/employees/:id/vacations?limit=
func (h *VacationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.vacationSvc.ListByEmployee(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Get 休假申请详情
// GET /api/v1/vacations/:id
func (h *VacationHandler) Get(c *gin.Context) {
	result, err := h.vacationSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// Decide 审批休假申请
// POST /api/v1/vacations/:id/decision
func (h *VacationHandler) Decide(c *gin.Context) {
	approverID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.DecideVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.vacationSvc.Decide(c.Request.Context(), c.Param("id"), &req, approverID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// 重复审批返回 200 + 警告文案，不视为错误
	if result.Warning != "" {
		response.OKWithWarning(c, result.Request, result.Warning)
		return
	}
	response.OK(c, result.Request)
}

// Balance 员工年度假期余额
// GET /api/v1/employees/:id/vacations/balance?year=
func (h *VacationHandler) Balance(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		response.BadRequest(c, 10001, "year 参数无效")
		return
	}

	result, err := h.vacationSvc.Balance(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// RemainingExcluding 申请级年度余额（排除申请自身）
// GET /api/v1/vacations/:id/remaining?year=
func (h *VacationHandler) RemainingExcluding(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		response.BadRequest(c, 10001, "year 参数无效")
		return
	}

	result, err := h.vacationSvc.RemainingDaysExcluding(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, result)
}

// writeError 休假模块业务错误统一映射
func (h *VacationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVacationNotFound):
		response.NotFound(c, 13001, "休假申请不存在")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工档案不存在")
	case errors.Is(err, service.ErrVacationDateOrder):
		response.BadRequest(c, 13002, "结束日期必须晚于开始日期")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13003, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
