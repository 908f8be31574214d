package engine

import (
	"time"
)

// AssetKind 筹资资产类型
type AssetKind string

const (
	AssetNative AssetKind = "native" // 原生币
	AssetToken  AssetKind = "token"  // ERC20代币
)

// Asset 筹资资产。每个活动只绑定一种资产。
type Asset struct {
	Kind  AssetKind `json:"kind"`
	Token string    `json:"token,omitempty"` // 代币合约地址，仅Kind为token时有效
}

// NativeAsset 原生币资产
func NativeAsset() Asset {
	return Asset{Kind: AssetNative}
}

// TokenAsset 代币资产
func TokenAsset(token string) Asset {
	return Asset{Kind: AssetToken, Token: token}
}

// valid 校验资产定义是否合法
func (a Asset) valid() bool {
	switch a.Kind {
	case AssetNative:
		return a.Token == ""
	case AssetToken:
		return a.Token != ""
	}
	return false
}

// Milestone 活动里程碑。完成后按金额释放资金给创建者。
type Milestone struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Campaign 众筹活动的完整账务状态。只能通过Engine的操作修改。
type Campaign struct {
	Id      int64
	Creator string

	// 基本信息
	Title       string
	Description string
	ImageURL    string
	Category    string

	// 筹资信息
	Goal            int64
	Raised          int64
	Settled         int64 // 达标结算时已支付的金额（含平台费）
	MinContribution int64
	MaxContribution int64
	Asset           Asset

	// 时间信息
	CreatedAt time.Time
	Deadline  time.Time

	// 状态标志
	Completed  bool // 达标完成，不可逆
	Cancelled  bool // 创建者取消，不可逆
	Refundable bool
	Verified   bool
	Promoted   bool

	// 部分提取配置
	PartialWithdrawal bool
	WithdrawCeiling   int64         // 0表示不限额
	WithdrawInterval  time.Duration // 0表示不限间隔
	TotalWithdrawn    int64
	LastWithdrawal    time.Time

	// 里程碑
	Milestones []Milestone

	// 贡献账本：地址 -> 累计贡献额（退款后归零）
	Contributions map[string]int64
	// 贡献者名单，按首次贡献顺序追加，永不收缩
	Roster []string
}

// CampaignStatus 活动状态
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"    // 进行中
	CampaignStatusFunded    CampaignStatus = "funded"    // 达标成功
	CampaignStatusExpired   CampaignStatus = "expired"   // 已过期未达标
	CampaignStatusCancelled CampaignStatus = "cancelled" // 已取消
)

// StatusAt 计算活动在指定时刻的状态
func (c *Campaign) StatusAt(now time.Time) CampaignStatus {
	switch {
	case c.Cancelled:
		return CampaignStatusCancelled
	case c.Completed:
		return CampaignStatusFunded
	case now.After(c.Deadline):
		return CampaignStatusExpired
	}
	return CampaignStatusActive
}

// acceptsContributions 活动是否还能接受贡献
func (c *Campaign) acceptsContributions(now time.Time) error {
	if c.Completed || c.Cancelled {
		return ErrCampaignClosed
	}
	if now.After(c.Deadline) {
		return ErrDeadlinePassed
	}
	return nil
}

// open 活动是否处于未完成、未取消状态
func (c *Campaign) open() bool {
	return !c.Completed && !c.Cancelled
}

// clone 深拷贝活动状态。操作先在副本上暂存全部变更，
// 所有外部转账成功后才以副本替换原状态，实现整体提交或整体放弃。
func (c *Campaign) clone() *Campaign {
	cp := *c

	cp.Contributions = make(map[string]int64, len(c.Contributions))
	for addr, amount := range c.Contributions {
		cp.Contributions[addr] = amount
	}

	cp.Roster = make([]string, len(c.Roster))
	copy(cp.Roster, c.Roster)

	cp.Milestones = make([]Milestone, len(c.Milestones))
	copy(cp.Milestones, c.Milestones)

	return &cp
}

// Summary 活动只读快照，查询接口返回值
type Summary struct {
	Id                int64          `json:"id"`
	Creator           string         `json:"creator"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	ImageURL          string         `json:"image_url"`
	Category          string         `json:"category"`
	Goal              int64          `json:"goal"`
	Raised            int64          `json:"raised"`
	Settled           int64          `json:"settled"`
	MinContribution   int64          `json:"min_contribution"`
	MaxContribution   int64          `json:"max_contribution"`
	Asset             Asset          `json:"asset"`
	CreatedAt         time.Time      `json:"created_at"`
	Deadline          time.Time      `json:"deadline"`
	Status            CampaignStatus `json:"status"`
	Completed         bool           `json:"completed"`
	Cancelled         bool           `json:"cancelled"`
	Refundable        bool           `json:"refundable"`
	Verified          bool           `json:"verified"`
	Promoted          bool           `json:"promoted"`
	PartialWithdrawal bool           `json:"partial_withdrawal"`
	WithdrawCeiling   int64          `json:"withdraw_ceiling"`
	WithdrawInterval  time.Duration  `json:"withdraw_interval"`
	TotalWithdrawn    int64          `json:"total_withdrawn"`
	LastWithdrawal    time.Time      `json:"last_withdrawal"`
	Milestones        []Milestone    `json:"milestones"`
	ContributorCount  int            `json:"contributor_count"`
}

// summaryAt 生成活动快照
func (c *Campaign) summaryAt(now time.Time) Summary {
	milestones := make([]Milestone, len(c.Milestones))
	copy(milestones, c.Milestones)

	return Summary{
		Id:                c.Id,
		Creator:           c.Creator,
		Title:             c.Title,
		Description:       c.Description,
		ImageURL:          c.ImageURL,
		Category:          c.Category,
		Goal:              c.Goal,
		Raised:            c.Raised,
		Settled:           c.Settled,
		MinContribution:   c.MinContribution,
		MaxContribution:   c.MaxContribution,
		Asset:             c.Asset,
		CreatedAt:         c.CreatedAt,
		Deadline:          c.Deadline,
		Status:            c.StatusAt(now),
		Completed:         c.Completed,
		Cancelled:         c.Cancelled,
		Refundable:        c.Refundable,
		Verified:          c.Verified,
		Promoted:          c.Promoted,
		PartialWithdrawal: c.PartialWithdrawal,
		WithdrawCeiling:   c.WithdrawCeiling,
		WithdrawInterval:  c.WithdrawInterval,
		TotalWithdrawn:    c.TotalWithdrawn,
		LastWithdrawal:    c.LastWithdrawal,
		Milestones:        milestones,
		ContributorCount:  len(c.Roster),
	}
}
