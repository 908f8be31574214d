package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CampaignHandler 活动接口。写操作直达引擎，列表与统计读数据库快照。
type CampaignHandler struct {
	eng           *engine.Engine
	campaignLogic *logic.CampaignLogic
	eventLogic    *logic.EventLogic
}

// NewCampaignHandler 创建活动接口
func NewCampaignHandler(eng *engine.Engine, db *gorm.DB) *CampaignHandler {
	return &CampaignHandler{
		eng:           eng,
		campaignLogic: logic.NewCampaignLogic(db),
		eventLogic:    logic.NewEventLogic(db),
	}
}

// campaignId 解析路径中的活动ID
func campaignId(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return 0, false
	}
	return id, true
}

// CreateCampaign 创建活动
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	asset := engine.NativeAsset()
	if req.AssetKind == string(engine.AssetToken) {
		asset = engine.TokenAsset(req.AssetToken)
	}

	id, err := h.eng.CreateCampaign(engine.CreateParams{
		Creator:           req.Creator,
		Title:             req.Title,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		Category:          req.Category,
		Goal:              req.Goal,
		MinContribution:   req.MinContribution,
		MaxContribution:   req.MaxContribution,
		DurationDays:      req.DurationDays,
		Asset:             asset,
		PartialWithdrawal: req.PartialWithdrawal,
		WithdrawCeiling:   req.WithdrawCeiling,
		WithdrawInterval:  time.Duration(req.WithdrawIntervalSecs) * time.Second,
	})
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	summary, err := h.eng.Summary(id)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "活动创建成功", summary)
}

// GetCampaigns 获取活动列表（读数据库快照，支持分页）
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	status := c.Query("status")
	category := c.Query("category")
	creator := c.Query("creator")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	campaigns, total, err := h.campaignLogic.GetCampaigns(status, category, creator, page, pageSize)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", gin.H{
		"campaigns": campaigns,
		"pagination": Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

// GetCampaign 获取活动详情（读引擎权威状态）
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	summary, err := h.eng.Summary(id)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", summary)
}

// UpdateCampaign 更新活动信息
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req UpdateMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.UpdateMetadata(id, req.Caller, req.Title, req.Description, req.ImageURL, req.Category); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动信息已更新", nil)
}

// TransferOwnership 转让活动
func (h *CampaignHandler) TransferOwnership(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.TransferOwnership(id, req.Caller, req.NewOwner); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动已转让", nil)
}

// SetAsset 设定筹资资产
func (h *CampaignHandler) SetAsset(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req SetAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	asset := engine.NativeAsset()
	if req.AssetKind == string(engine.AssetToken) {
		asset = engine.TokenAsset(req.AssetToken)
	}

	if err := h.eng.SetFundingAsset(id, req.Caller, asset); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "筹资资产已设定", nil)
}

// SetVerified 设置认证标志（平台管理账户）
func (h *CampaignHandler) SetVerified(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.SetVerified(id, req.Caller, req.Value); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "认证标志已更新", nil)
}

// SetPromoted 设置推荐标志（平台管理账户）
func (h *CampaignHandler) SetPromoted(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.SetPromoted(id, req.Caller, req.Value); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "推荐标志已更新", nil)
}

// ModifyGoal 修改筹资目标
func (h *CampaignHandler) ModifyGoal(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req ModifyGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.ModifyGoal(id, req.Caller, req.NewGoal); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "筹资目标已修改", nil)
}

// ExtendDeadline 延长截止时间
func (h *CampaignHandler) ExtendDeadline(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req ExtendDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.ExtendDeadline(id, req.Caller, req.Days); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "截止时间已延长", nil)
}

// CancelCampaign 取消活动
func (h *CampaignHandler) CancelCampaign(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req CancelCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.CancelCampaign(id, req.Caller); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动已取消", nil)
}

// GetCampaignEvents 获取活动事件流水
func (h *CampaignHandler) GetCampaignEvents(c *gin.Context) {
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

	events, total, err := h.eventLogic.GetEventsByCampaign(id, page, pageSize)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", gin.H{
		"events": events,
		"pagination": Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

// GetOwnedCampaigns 获取账户拥有的活动ID列表
func (h *CampaignHandler) GetOwnedCampaigns(c *gin.Context) {
	account := c.Param("address")
	if account == "" {
		ErrorResponse(c, http.StatusBadRequest, "无效的账户地址")
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", gin.H{
		"campaign_ids": h.eng.CampaignsOf(account),
	})
}

// GetPlatformStats 获取全平台统计
func (h *CampaignHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.campaignLogic.GetAllCampaignStats()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	stats["registeredCampaigns"] = h.eng.Count()
	SuccessResponse(c, http.StatusOK, "获取成功", stats)
}
