package event

import (
	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
	"github.com/blues/cfe/internal/model"
)

// SettlementProcessor 结算事件处理器
type SettlementProcessor struct {
	settlementLogic *logic.SettlementRecordLogic
}

// NewSettlementProcessor 创建结算事件处理器
func NewSettlementProcessor(settlementLogic *logic.SettlementRecordLogic) *SettlementProcessor {
	return &SettlementProcessor{
		settlementLogic: settlementLogic,
	}
}

// Process 处理结算事件
func (p *SettlementProcessor) Process(evt engine.Event) error {
	record := model.SettlementRecord{
		CampaignId: evt.CampaignId,
		Creator:    evt.Account,
		NetAmount:  evt.Amount,
		FeeAmount:  evt.Fee,
	}

	if err := p.settlementLogic.CreateSettlementRecord(&record); err != nil {
		return err
	}

	logger.Info("Processed settlement: campaign %d paid %d to %s, fee %d",
		evt.CampaignId, evt.Amount, evt.Account, evt.Fee)
	return nil
}
