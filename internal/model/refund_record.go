package model

import (
	"time"
)

// RefundRecord 退款记录
type RefundRecord struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64  `json:"campaign_id" gorm:"not null;index"`
	Address    string `json:"address" gorm:"not null;index"`
	Amount     int64  `json:"amount" gorm:"not null"`
	Reason     string `json:"reason"` // 退款来源：主动申请或取消清退
}

// TableName 自定义表名
func (RefundRecord) TableName() string {
	return "refund_record"
}
