package model

import (
	"time"
)

// WithdrawalRecord 提取记录。覆盖超额提取、部分提取和里程碑释放。
type WithdrawalRecord struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64  `json:"campaign_id" gorm:"not null;index"`
	Creator    string `json:"creator" gorm:"not null"`
	Kind       string `json:"kind" gorm:"not null"` // surplus / partial / milestone
	NetAmount  int64  `json:"net_amount" gorm:"not null"`
	FeeAmount  int64  `json:"fee_amount" gorm:"default:0"`
	Note       string `json:"note"`
}

// TableName 自定义表名
func (WithdrawalRecord) TableName() string {
	return "withdrawal_record"
}
