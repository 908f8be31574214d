package model

import (
	"time"
)

// Campaign 众筹活动快照模型。引擎是权威状态，本表是供查询的读模型，
// 由事件管道和定时任务刷新。
type Campaign struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`

	// 筹资信息
	Goal            int64  `json:"goal" gorm:"not null"`
	Raised          int64  `json:"raised" gorm:"default:0"`
	Settled         int64  `json:"settled" gorm:"default:0"`
	MinContribution int64  `json:"min_contribution" gorm:"default:0"`
	MaxContribution int64  `json:"max_contribution" gorm:"default:0"`
	AssetKind       string `json:"asset_kind" gorm:"default:'native'"`
	AssetToken      string `json:"asset_token"`

	// 时间信息
	StartTime time.Time `json:"start_time" gorm:"not null"`
	Deadline  time.Time `json:"deadline" gorm:"not null"`

	// 状态
	Status     CampaignStatus `json:"status" gorm:"default:'active';index"`
	Refundable bool           `json:"refundable" gorm:"default:false"`
	Verified   bool           `json:"verified" gorm:"default:false"`
	Promoted   bool           `json:"promoted" gorm:"default:false"`

	// 提取信息
	PartialWithdrawal bool  `json:"partial_withdrawal" gorm:"default:false"`
	WithdrawCeiling   int64 `json:"withdraw_ceiling" gorm:"default:0"`
	TotalWithdrawn    int64 `json:"total_withdrawn" gorm:"default:0"`

	// 创建者信息
	CreatorAddress string `json:"creator_address" gorm:"not null;index"`

	// 统计信息
	ContributorCount int `json:"contributor_count" gorm:"default:0"`
}

// CampaignStatus 活动状态
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"    // 进行中
	CampaignStatusFunded    CampaignStatus = "funded"    // 达标成功
	CampaignStatusExpired   CampaignStatus = "expired"   // 已过期未达标
	CampaignStatusCancelled CampaignStatus = "cancelled" // 已取消
)

// TableName 自定义表名
func (Campaign) TableName() string {
	return "campaign"
}
