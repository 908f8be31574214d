package logic

import (
	"fmt"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/model"
	"gorm.io/gorm"
)

// MilestoneLogic 里程碑业务逻辑
type MilestoneLogic struct {
	db *gorm.DB
}

// NewMilestoneLogic 创建里程碑业务逻辑
func NewMilestoneLogic(db *gorm.DB) *MilestoneLogic {
	return &MilestoneLogic{db: db}
}

// SyncMilestones 全量刷新活动的里程碑快照。
// 里程碑只追加、只从未完成变为完成，整表重写最简单可靠。
func (l *MilestoneLogic) SyncMilestones(campaignId int64, milestones []engine.Milestone) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", campaignId).
			Delete(&model.CampaignMilestone{}).Error; err != nil {
			return fmt.Errorf("清空里程碑快照失败: %w", err)
		}

		for seq, m := range milestones {
			row := model.CampaignMilestone{
				CampaignId:  campaignId,
				Seq:         seq,
				Amount:      m.Amount,
				Description: m.Description,
				Completed:   m.Completed,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("写入里程碑快照失败: %w", err)
			}
		}
		return nil
	})
}

// GetMilestonesByCampaign 获取活动的里程碑列表
func (l *MilestoneLogic) GetMilestonesByCampaign(campaignId int64) ([]model.CampaignMilestone, error) {
	var milestones []model.CampaignMilestone
	if err := l.db.Where("campaign_id = ?", campaignId).
		Order("seq ASC").Find(&milestones).Error; err != nil {
		return nil, fmt.Errorf("获取里程碑列表失败: %w", err)
	}
	return milestones, nil
}
