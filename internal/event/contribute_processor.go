package event

import (
	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
	"github.com/blues/cfe/internal/model"
)

// ContributeProcessor 贡献事件处理器
type ContributeProcessor struct {
	contributeLogic *logic.ContributeRecordLogic
}

// NewContributeProcessor 创建贡献事件处理器
func NewContributeProcessor(contributeLogic *logic.ContributeRecordLogic) *ContributeProcessor {
	return &ContributeProcessor{
		contributeLogic: contributeLogic,
	}
}

// Process 处理贡献事件
func (p *ContributeProcessor) Process(evt engine.Event) error {
	record := model.ContributeRecord{
		CampaignId: evt.CampaignId,
		Address:    evt.Account,
		Amount:     evt.Amount,
	}

	if err := p.contributeLogic.CreateContributeRecord(&record); err != nil {
		return err
	}

	logger.Info("Processed contribution: %d from %s to campaign %d",
		evt.Amount, evt.Account, evt.CampaignId)
	return nil
}
