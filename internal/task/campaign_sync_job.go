package task

import (
	"time"

	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// CampaignSyncJob 活动快照同步任务。事件管道是增量的，
// 本任务定期全量对账，修正漏掉或失败的快照写入。
type CampaignSyncJob struct {
	eng            *engine.Engine
	campaignLogic  *logic.CampaignLogic
	milestoneLogic *logic.MilestoneLogic
	config         *config.Config
}

// NewCampaignSyncJob 创建活动快照同步任务
func NewCampaignSyncJob(eng *engine.Engine, db *gorm.DB, cfg *config.Config) *CampaignSyncJob {
	return &CampaignSyncJob{
		eng:            eng,
		campaignLogic:  logic.NewCampaignLogic(db),
		milestoneLogic: logic.NewMilestoneLogic(db),
		config:         cfg,
	}
}

// GetName 获取任务名称
func (j *CampaignSyncJob) GetName() string {
	return "campaign_snapshot_sync"
}

// GetSchedule 获取调度配置
func (j *CampaignSyncJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.SyncInterval) * time.Second)
}

// Execute 执行任务
func (j *CampaignSyncJob) Execute() {
	summaries := j.eng.List(engine.Filter{})

	synced := 0
	for _, s := range summaries {
		if err := j.campaignLogic.UpsertSnapshot(s); err != nil {
			logger.Error("Failed to sync campaign %d snapshot: %v", s.Id, err)
			continue
		}
		if len(s.Milestones) > 0 {
			if err := j.milestoneLogic.SyncMilestones(s.Id, s.Milestones); err != nil {
				logger.Error("Failed to sync campaign %d milestones: %v", s.Id, err)
			}
		}
		synced++
	}

	if synced > 0 {
		logger.Debug("Synced %d campaign snapshots", synced)
	}
}
