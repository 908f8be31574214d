package engine

import "time"

// EventType 引擎事件类型
type EventType string

const (
	EventCampaignCreated      EventType = "campaign_created"
	EventContribution         EventType = "contribution"
	EventCampaignFunded       EventType = "campaign_funded"
	EventSettlement           EventType = "settlement"
	EventRefundsEnabled       EventType = "refunds_enabled"
	EventRefund               EventType = "refund"
	EventCampaignCancelled    EventType = "campaign_cancelled"
	EventGoalModified         EventType = "goal_modified"
	EventDeadlineExtended     EventType = "deadline_extended"
	EventOwnershipTransferred EventType = "ownership_transferred"
	EventMetadataUpdated      EventType = "metadata_updated"
	EventAssetChanged         EventType = "asset_changed"
	EventVerifiedChanged      EventType = "verified_changed"
	EventPromotedChanged      EventType = "promoted_changed"
	EventSurplusWithdrawn     EventType = "surplus_withdrawn"
	EventPartialWithdrawal    EventType = "partial_withdrawal"
	EventMilestoneAdded       EventType = "milestone_added"
	EventMilestoneCompleted   EventType = "milestone_completed"
)

// Event 引擎事件。操作提交后发出，携带审计所需的最小信息。
type Event struct {
	Type       EventType `json:"type"`
	CampaignId int64     `json:"campaign_id"`
	Account    string    `json:"account,omitempty"` // 相关账户（贡献者/创建者/新所有者）
	Amount     int64     `json:"amount,omitempty"`  // 涉及金额（净额）
	Fee        int64     `json:"fee,omitempty"`     // 平台费
	Note       string    `json:"note,omitempty"`
	At         time.Time `json:"at"`
}
