package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RefundHandler 退款接口
type RefundHandler struct {
	eng         *engine.Engine
	refundLogic *logic.RefundRecordLogic
}

// NewRefundHandler 创建退款接口
func NewRefundHandler(eng *engine.Engine, db *gorm.DB) *RefundHandler {
	return &RefundHandler{
		eng:         eng,
		refundLogic: logic.NewRefundRecordLogic(db),
	}
}

// EnableRefunds 开启退款通道
func (h *RefundHandler) EnableRefunds(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req EnableRefundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.EnableRefunds(id, req.Caller); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "退款通道已开启", nil)
}

// RequestRefund 申请退款
func (h *RefundHandler) RequestRefund(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req RequestRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.RequestRefund(id, req.Contributor); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "退款成功", nil)
}

// GetRefundRecords 查询活动退款流水（读数据库）
func (h *RefundHandler) GetRefundRecords(c *gin.Context) {
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

	records, total, err := h.refundLogic.GetRecordsByCampaign(id, page, pageSize)
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
