package model

import (
	"time"
)

// SettlementRecord 结算记录。活动达标后向创建者和平台的支付。
type SettlementRecord struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64  `json:"campaign_id" gorm:"not null;index"`
	Creator    string `json:"creator" gorm:"not null"`
	NetAmount  int64  `json:"net_amount" gorm:"not null"` // 创建者实收净额
	FeeAmount  int64  `json:"fee_amount" gorm:"not null"` // 平台费
}

// TableName 自定义表名
func (SettlementRecord) TableName() string {
	return "settlement_record"
}
