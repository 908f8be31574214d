package task

import (
	"time"

	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// CampaignExpireJob 活动过期标记任务。引擎按需计算过期状态，
// 本任务把数据库快照中截止已过的活动批量标记为expired，
// 让列表查询不依赖快照刷新时机。
type CampaignExpireJob struct {
	campaignLogic *logic.CampaignLogic
	config        *config.Config
}

// NewCampaignExpireJob 创建活动过期标记任务
func NewCampaignExpireJob(db *gorm.DB, cfg *config.Config) *CampaignExpireJob {
	return &CampaignExpireJob{
		campaignLogic: logic.NewCampaignLogic(db),
		config:        cfg,
	}
}

// GetName 获取任务名称
func (j *CampaignExpireJob) GetName() string {
	return "campaign_expire_marker"
}

// GetSchedule 获取调度配置
func (j *CampaignExpireJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.ExpireInterval) * time.Second)
}

// Execute 执行任务
func (j *CampaignExpireJob) Execute() {
	affected, err := j.campaignLogic.MarkExpired(time.Now())
	if err != nil {
		logger.Error("Failed to mark expired campaigns: %v", err)
		return
	}
	if affected > 0 {
		logger.Info("Marked %d campaigns as expired", affected)
	}
}
