package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WithdrawHandler 提取接口
type WithdrawHandler struct {
	eng             *engine.Engine
	withdrawalLogic *logic.WithdrawalRecordLogic
}

// NewWithdrawHandler 创建提取接口
func NewWithdrawHandler(eng *engine.Engine, db *gorm.DB) *WithdrawHandler {
	return &WithdrawHandler{
		eng:             eng,
		withdrawalLogic: logic.NewWithdrawalRecordLogic(db),
	}
}

// WithdrawSurplus 提取超额部分
func (h *WithdrawHandler) WithdrawSurplus(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req WithdrawSurplusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	excess, err := h.eng.WithdrawSurplus(id, req.Caller)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "超额提取成功", gin.H{
		"campaign_id": id,
		"amount":      excess,
	})
}

// WithdrawPartial 部分提取
func (h *WithdrawHandler) WithdrawPartial(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req WithdrawPartialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.WithdrawPartial(id, req.Caller, req.Amount); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "部分提取成功", nil)
}

// GetWithdrawalRecords 查询活动提取流水（读数据库）
func (h *WithdrawHandler) GetWithdrawalRecords(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	records, total, err := h.withdrawalLogic.GetRecordsByCampaign(id, page, pageSize)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", gin.H{
		"records": records,
		"pagination": Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}
