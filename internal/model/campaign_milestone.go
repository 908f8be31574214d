package model

import (
	"time"
)

// CampaignMilestone 活动里程碑
type CampaignMilestone struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId  int64  `json:"campaign_id" gorm:"not null;index"`
	Seq         int    `json:"seq" gorm:"not null"` // 活动内序号，从0开始
	Amount      int64  `json:"amount" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Completed   bool   `json:"completed" gorm:"default:false"`
}

// TableName 自定义表名
func (CampaignMilestone) TableName() string {
	return "campaign_milestone"
}
