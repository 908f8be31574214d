package model

import (
	"time"
)

// ContributeRecord 贡献记录
type ContributeRecord struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64  `json:"campaign_id" gorm:"not null;index"`
	Address    string `json:"address" gorm:"not null;index"`
	Amount     int64  `json:"amount" gorm:"not null"`
}

// TableName 自定义表名
func (ContributeRecord) TableName() string {
	return "contribute_record"
}
