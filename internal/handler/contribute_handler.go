package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DepositVerifier 入金校验方。原生币贡献先打款到托管账户，
// 入账前按交易哈希核对款项。
type DepositVerifier interface {
	VerifyDeposit(ctx context.Context, txHash string, from string, amount int64) error
}

// ContributeHandler 贡献接口
type ContributeHandler struct {
	eng             *engine.Engine
	contributeLogic *logic.ContributeRecordLogic
	verifier        DepositVerifier // 为nil时跳过链上校验（开发模式）
}

// NewContributeHandler 创建贡献接口
func NewContributeHandler(eng *engine.Engine, db *gorm.DB, verifier DepositVerifier) *ContributeHandler {
	return &ContributeHandler{
		eng:             eng,
		contributeLogic: logic.NewContributeRecordLogic(db),
		verifier:        verifier,
	}
}

// Contribute 向活动贡献资金
func (h *ContributeHandler) Contribute(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	before, err := h.eng.Summary(id)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	// 原生币活动：入账前核对托管账户收到的入金
	if before.Asset.Kind == engine.AssetNative && h.verifier != nil {
		if req.TxHash == "" {
			ErrorResponse(c, http.StatusBadRequest, "原生币贡献缺少入金交易哈希")
			return
		}
		if err := h.verifier.VerifyDeposit(c.Request.Context(), req.TxHash, req.Contributor, req.Amount); err != nil {
			ErrorResponse(c, http.StatusBadGateway, "入金校验失败: "+err.Error())
			return
		}
	}

	if err := h.eng.Contribute(id, req.Contributor, req.Amount); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	summary, err := h.eng.Summary(id)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "贡献成功", summary)
}

// GetContribution 查询贡献者在活动中的当前贡献额
func (h *ContributeHandler) GetContribution(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	address := c.Param("address")
	amount, err := h.eng.ContributionOf(id, address)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", gin.H{
		"campaign_id": id,
		"address":     address,
		"amount":      amount,
	})
}

// GetContributors 查询活动贡献者名单
func (h *ContributeHandler) GetContributors(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	contributors, err := h.eng.Contributors(id)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", gin.H{
		"campaign_id":  id,
		"contributors": contributors,
	})
}

// GetContributionRecords 查询活动贡献流水（读数据库）
func (h *ContributeHandler) GetContributionRecords(c *gin.Context) {
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

	records, total, err := h.contributeLogic.GetRecordsByCampaign(id, page, pageSize)
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
