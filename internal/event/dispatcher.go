package event

import (
	"sync"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
	"github.com/blues/cfe/internal/model"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// Processor 事件处理器
type Processor interface {
	Process(evt engine.Event) error
}

// Dispatcher 引擎事件分发器。实现engine.EventSink，把引擎发出的事件
// 投递到协程池异步落库，不阻塞引擎操作，也不回调引擎写操作。
type Dispatcher struct {
	pool           *ants.Pool
	eventLogic     *logic.EventLogic
	campaignLogic  *logic.CampaignLogic
	milestoneLogic *logic.MilestoneLogic
	processors     map[engine.EventType]Processor

	mu  sync.RWMutex
	eng *engine.Engine // 只用于读快照
}

// NewDispatcher 创建事件分发器
func NewDispatcher(db *gorm.DB, poolSize int) (*Dispatcher, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{
		pool:           pool,
		eventLogic:     logic.NewEventLogic(db),
		campaignLogic:  logic.NewCampaignLogic(db),
		milestoneLogic: logic.NewMilestoneLogic(db),
		processors:     make(map[engine.EventType]Processor),
	}

	// 注册各类事件处理器
	contributeProcessor := NewContributeProcessor(logic.NewContributeRecordLogic(db))
	refundProcessor := NewRefundProcessor(logic.NewRefundRecordLogic(db))
	settlementProcessor := NewSettlementProcessor(logic.NewSettlementRecordLogic(db))
	withdrawalProcessor := NewWithdrawalProcessor(logic.NewWithdrawalRecordLogic(db))

	d.processors[engine.EventContribution] = contributeProcessor
	d.processors[engine.EventRefund] = refundProcessor
	d.processors[engine.EventSettlement] = settlementProcessor
	d.processors[engine.EventSurplusWithdrawn] = withdrawalProcessor
	d.processors[engine.EventPartialWithdrawal] = withdrawalProcessor
	d.processors[engine.EventMilestoneCompleted] = withdrawalProcessor

	return d, nil
}

// SetEngine 绑定引擎，用于事件处理后刷新快照
func (d *Dispatcher) SetEngine(eng *engine.Engine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.eng = eng
}

// Emit 接收引擎事件，投递到协程池
func (d *Dispatcher) Emit(evt engine.Event) {
	if err := d.pool.Submit(func() { d.handle(evt) }); err != nil {
		logger.Error("Failed to submit event %s for campaign %d: %v", evt.Type, evt.CampaignId, err)
	}
}

// handle 处理单个事件：记流水、派发处理器、刷新快照
func (d *Dispatcher) handle(evt engine.Event) {
	row := model.EngineEvent{
		CampaignId: evt.CampaignId,
		EventType:  string(evt.Type),
		Account:    evt.Account,
		Amount:     evt.Amount,
		Fee:        evt.Fee,
		Note:       evt.Note,
		OccurredAt: evt.At,
	}
	if err := d.eventLogic.CreateEvent(&row); err != nil {
		logger.Error("Failed to record event %s for campaign %d: %v", evt.Type, evt.CampaignId, err)
	}

	if p, ok := d.processors[evt.Type]; ok {
		if err := p.Process(evt); err != nil {
			logger.Error("Failed to process event %s for campaign %d: %v", evt.Type, evt.CampaignId, err)
		}
	}

	d.refreshSnapshot(evt)
}

// refreshSnapshot 用引擎当前状态刷新活动快照
func (d *Dispatcher) refreshSnapshot(evt engine.Event) {
	d.mu.RLock()
	eng := d.eng
	d.mu.RUnlock()
	if eng == nil || evt.CampaignId == 0 {
		return
	}

	s, err := eng.Summary(evt.CampaignId)
	if err != nil {
		logger.Error("Failed to read campaign %d summary: %v", evt.CampaignId, err)
		return
	}

	if err := d.campaignLogic.UpsertSnapshot(s); err != nil {
		logger.Error("Failed to refresh campaign %d snapshot: %v", evt.CampaignId, err)
	}

	switch evt.Type {
	case engine.EventMilestoneAdded, engine.EventMilestoneCompleted:
		if err := d.milestoneLogic.SyncMilestones(evt.CampaignId, s.Milestones); err != nil {
			logger.Error("Failed to sync campaign %d milestones: %v", evt.CampaignId, err)
		}
	}
}

// Close 关闭协程池
func (d *Dispatcher) Close() {
	d.pool.Release()
}
