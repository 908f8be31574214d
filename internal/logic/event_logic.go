package logic

import (
	"fmt"

	"github.com/blues/cfe/internal/model"
	"gorm.io/gorm"
)

// EventLogic 事件记录业务逻辑
type EventLogic struct {
	db *gorm.DB
}

// NewEventLogic 创建事件记录业务逻辑
func NewEventLogic(db *gorm.DB) *EventLogic {
	return &EventLogic{db: db}
}

// CreateEvent 创建事件记录
func (l *EventLogic) CreateEvent(event *model.EngineEvent) error {
	if err := l.db.Create(event).Error; err != nil {
		return fmt.Errorf("创建事件记录失败: %w", err)
	}
	return nil
}

// GetEventsByCampaign 获取活动的事件流水
func (l *EventLogic) GetEventsByCampaign(campaignId int64, page, pageSize int) ([]model.EngineEvent, int64, error) {
	query := l.db.Model(&model.EngineEvent{}).Where("campaign_id = ?", campaignId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计事件记录失败: %w", err)
	}

	var events []model.EngineEvent
	offset := (page - 1) * pageSize
	if err := query.Order("occurred_at DESC").Offset(offset).Limit(pageSize).Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("获取事件记录失败: %w", err)
	}

	return events, total, nil
}
