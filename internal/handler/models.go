package handler

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 分页信息结构
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// CreateCampaignRequest 创建活动请求
type CreateCampaignRequest struct {
	Creator         string `json:"creator" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	ImageURL        string `json:"image_url"`
	Category        string `json:"category"`
	Goal            int64  `json:"goal" binding:"required,min=1"`
	MinContribution int64  `json:"min_contribution" binding:"required,min=1"`
	MaxContribution int64  `json:"max_contribution" binding:"required,min=1"`
	DurationDays    int    `json:"duration_days" binding:"required,min=1"`
	AssetKind       string `json:"asset_kind"`
	AssetToken      string `json:"asset_token"`

	PartialWithdrawal    bool  `json:"partial_withdrawal"`
	WithdrawCeiling      int64 `json:"withdraw_ceiling"`
	WithdrawIntervalSecs int64 `json:"withdraw_interval_secs"`
}

// UpdateMetadataRequest 更新活动信息请求
type UpdateMetadataRequest struct {
	Caller      string `json:"caller" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// TransferOwnershipRequest 转让活动请求
type TransferOwnershipRequest struct {
	Caller   string `json:"caller" binding:"required"`
	NewOwner string `json:"new_owner" binding:"required"`
}

// SetAssetRequest 设定筹资资产请求
type SetAssetRequest struct {
	Caller     string `json:"caller" binding:"required"`
	AssetKind  string `json:"asset_kind" binding:"required"`
	AssetToken string `json:"asset_token"`
}

// SetFlagRequest 认证/推荐标志请求
type SetFlagRequest struct {
	Caller string `json:"caller" binding:"required"`
	Value  bool   `json:"value"`
}

// ModifyGoalRequest 修改目标请求
type ModifyGoalRequest struct {
	Caller  string `json:"caller" binding:"required"`
	NewGoal int64  `json:"new_goal" binding:"required,min=1"`
}

// ExtendDeadlineRequest 延长截止时间请求
type ExtendDeadlineRequest struct {
	Caller string `json:"caller" binding:"required"`
	Days   int    `json:"days" binding:"required,min=1"`
}

// CancelCampaignRequest 取消活动请求
type CancelCampaignRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// ContributeRequest 贡献请求。原生币活动在配置了链客户端时
// 必须携带入金交易哈希，入账前先做链上校验。
type ContributeRequest struct {
	Contributor string `json:"contributor" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=1"`
	TxHash      string `json:"tx_hash"`
}

// EnableRefundsRequest 开启退款请求
type EnableRefundsRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// RequestRefundRequest 申请退款请求
type RequestRefundRequest struct {
	Contributor string `json:"contributor" binding:"required"`
}

// WithdrawSurplusRequest 超额提取请求
type WithdrawSurplusRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// WithdrawPartialRequest 部分提取请求
type WithdrawPartialRequest struct {
	Caller string `json:"caller" binding:"required"`
	Amount int64  `json:"amount" binding:"required,min=1"`
}

// AddMilestoneRequest 添加里程碑请求
type AddMilestoneRequest struct {
	Caller      string `json:"caller" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Description string `json:"description" binding:"required"`
}

// CompleteMilestoneRequest 完成里程碑请求
type CompleteMilestoneRequest struct {
	Caller string `json:"caller" binding:"required"`
}
