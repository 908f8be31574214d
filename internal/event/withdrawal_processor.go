package event

import (
	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
	"github.com/blues/cfe/internal/model"
)

// WithdrawalProcessor 提取事件处理器，覆盖超额提取、部分提取和里程碑释放
type WithdrawalProcessor struct {
	withdrawalLogic *logic.WithdrawalRecordLogic
}

// NewWithdrawalProcessor 创建提取事件处理器
func NewWithdrawalProcessor(withdrawalLogic *logic.WithdrawalRecordLogic) *WithdrawalProcessor {
	return &WithdrawalProcessor{
		withdrawalLogic: withdrawalLogic,
	}
}

// Process 处理提取事件
func (p *WithdrawalProcessor) Process(evt engine.Event) error {
	record := model.WithdrawalRecord{
		CampaignId: evt.CampaignId,
		Creator:    evt.Account,
		Kind:       withdrawalKind(evt.Type),
		NetAmount:  evt.Amount,
		FeeAmount:  evt.Fee,
		Note:       evt.Note,
	}

	if err := p.withdrawalLogic.CreateWithdrawalRecord(&record); err != nil {
		return err
	}

	logger.Info("Processed withdrawal(%s): campaign %d paid %d to %s, fee %d",
		record.Kind, evt.CampaignId, evt.Amount, evt.Account, evt.Fee)
	return nil
}

// withdrawalKind 提取类型
func withdrawalKind(t engine.EventType) string {
	switch t {
	case engine.EventSurplusWithdrawn:
		return "surplus"
	case engine.EventPartialWithdrawal:
		return "partial"
	case engine.EventMilestoneCompleted:
		return "milestone"
	}
	return string(t)
}
