package model

import (
	"time"
)

// EngineEvent 引擎事件记录，审计流水
type EngineEvent struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64     `json:"campaign_id" gorm:"index"`
	EventType  string    `json:"event_type" gorm:"not null;index"`
	Account    string    `json:"account"`
	Amount     int64     `json:"amount"`
	Fee        int64     `json:"fee"`
	Note       string    `json:"note" gorm:"type:text"`
	OccurredAt time.Time `json:"occurred_at" gorm:"not null"`
}

// TableName 自定义表名
func (EngineEvent) TableName() string {
	return "engine_event"
}
