package engine

import "errors"

// 引擎错误定义。所有错误均为最终错误，调用方需修正参数后重试。
var (
	ErrInvalidParameters       = errors.New("参数无效")
	ErrCampaignNotFound        = errors.New("活动不存在")
	ErrCampaignClosed          = errors.New("活动状态不允许此操作")
	ErrDeadlinePassed          = errors.New("活动已过截止时间")
	ErrContributionOutOfBounds = errors.New("贡献金额超出限制范围")
	ErrUnauthorized            = errors.New("无权执行此操作")
	ErrRefundsUnavailable      = errors.New("活动未开启退款")
	ErrNoContribution          = errors.New("没有可退款的贡献记录")
	ErrNoExcess                = errors.New("没有可提取的超额资金")
	ErrWithdrawalLimitExceeded = errors.New("提取金额超过限额")
	ErrIntervalNotElapsed      = errors.New("未到下次可提取时间")
	ErrTransferFailed          = errors.New("资金转移失败")
	ErrPaused                  = errors.New("平台已暂停")
	ErrWithdrawalsUnavailable  = errors.New("活动未开启部分提取")
	ErrMilestoneCompleted      = errors.New("里程碑已完成")
)
