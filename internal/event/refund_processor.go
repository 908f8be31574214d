package event

import (
	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
	"github.com/blues/cfe/internal/model"
)

// RefundProcessor 退款事件处理器
type RefundProcessor struct {
	refundLogic *logic.RefundRecordLogic
}

// NewRefundProcessor 创建退款事件处理器
func NewRefundProcessor(refundLogic *logic.RefundRecordLogic) *RefundProcessor {
	return &RefundProcessor{
		refundLogic: refundLogic,
	}
}

// Process 处理退款事件
func (p *RefundProcessor) Process(evt engine.Event) error {
	record := model.RefundRecord{
		CampaignId: evt.CampaignId,
		Address:    evt.Account,
		Amount:     evt.Amount,
		Reason:     evt.Note,
	}

	if err := p.refundLogic.CreateRefundRecord(&record); err != nil {
		return err
	}

	logger.Info("Processed refund: %d to %s from campaign %d",
		evt.Amount, evt.Account, evt.CampaignId)
	return nil
}
