package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/cfe/internal/engine"
	"github.com/gin-gonic/gin"
)

// MilestoneHandler 里程碑接口
type MilestoneHandler struct {
	eng *engine.Engine
}

// NewMilestoneHandler 创建里程碑接口
func NewMilestoneHandler(eng *engine.Engine) *MilestoneHandler {
	return &MilestoneHandler{eng: eng}
}

// AddMilestone 添加里程碑
func (h *MilestoneHandler) AddMilestone(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	var req AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	index, err := h.eng.AddMilestone(id, req.Caller, req.Amount, req.Description)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "里程碑已添加", gin.H{
		"campaign_id": id,
		"index":       index,
	})
}

// CompleteMilestone 完成里程碑并释放资金
func (h *MilestoneHandler) CompleteMilestone(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的里程碑序号")
		return
	}

	var req CompleteMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eng.CompleteMilestone(id, req.Caller, index); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "里程碑已完成", nil)
}

// GetMilestones 查询活动里程碑列表
func (h *MilestoneHandler) GetMilestones(c *gin.Context) {
	id, ok := campaignId(c)
	if !ok {
		return
	}

	summary, err := h.eng.Summary(id)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", gin.H{
		"campaign_id": id,
		"milestones":  summary.Milestones,
	})
}
