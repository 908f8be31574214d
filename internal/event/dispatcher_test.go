package event

import (
	"testing"

	"github.com/blues/cfe/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherRegistersProcessors(t *testing.T) {
	d, err := NewDispatcher(nil, 4)
	require.NoError(t, err)
	defer d.Close()

	// 资金流相关事件都有专属处理器
	for _, et := range []engine.EventType{
		engine.EventContribution,
		engine.EventRefund,
		engine.EventSettlement,
		engine.EventSurplusWithdrawn,
		engine.EventPartialWithdrawal,
		engine.EventMilestoneCompleted,
	} {
		assert.Contains(t, d.processors, et)
	}

	// 纯状态事件只记流水
	assert.NotContains(t, d.processors, engine.EventCampaignCreated)
	assert.NotContains(t, d.processors, engine.EventRefundsEnabled)
}

func TestWithdrawalKind(t *testing.T) {
	assert.Equal(t, "surplus", withdrawalKind(engine.EventSurplusWithdrawn))
	assert.Equal(t, "partial", withdrawalKind(engine.EventPartialWithdrawal))
	assert.Equal(t, "milestone", withdrawalKind(engine.EventMilestoneCompleted))
}
