package engine_test

import (
	"testing"

	"github.com/blues/cfe/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelCampaignSweep(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	h.contribute(t, id, "0xALICE", 10)
	h.contribute(t, id, "0xBOB", 20)

	require.NoError(t, h.engine.CancelCampaign(id, testCreator))

	// 逐个贡献者全额退款
	assert.Equal(t, int64(10), h.transferor.totalTo("0xALICE"))
	assert.Equal(t, int64(20), h.transferor.totalTo("0xBOB"))

	s := h.summary(t, id)
	assert.Equal(t, engine.CampaignStatusCancelled, s.Status)
	assert.Equal(t, int64(0), s.Raised)

	alice, _ := h.engine.ContributionOf(id, "0xALICE")
	bob, _ := h.engine.ContributionOf(id, "0xBOB")
	assert.Equal(t, int64(0), alice)
	assert.Equal(t, int64(0), bob)

	// 清零后再申请退款失败
	assert.ErrorIs(t, h.engine.RequestRefund(id, "0xALICE"), engine.ErrNoContribution)
	assert.ErrorIs(t, h.engine.RequestRefund(id, "0xBOB"), engine.ErrNoContribution)

	// 取消后不再接受贡献
	assert.ErrorIs(t, h.engine.Contribute(id, "0xCAROL", 10), engine.ErrCampaignClosed)

	assert.Len(t, h.sink.ofType(engine.EventRefund), 2)
	h.requireLedgerBalanced(t, id)
}

func TestCancelCampaignAuthorization(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	assert.ErrorIs(t, h.engine.CancelCampaign(id, "0xOTHER"), engine.ErrUnauthorized)
	assert.ErrorIs(t, h.engine.CancelCampaign(42, testCreator), engine.ErrCampaignNotFound)

	require.NoError(t, h.engine.CancelCampaign(id, testCreator))
	assert.ErrorIs(t, h.engine.CancelCampaign(id, testCreator), engine.ErrCampaignClosed, "重复取消")
}

func TestCancelCampaignForbiddenOnceFunded(t *testing.T) {
	h := newHarness(t)

	p := defaultParams()
	p.Goal = 100
	id := h.create(t, p)

	h.contribute(t, id, "0xALICE", 100)

	assert.ErrorIs(t, h.engine.CancelCampaign(id, testCreator), engine.ErrCampaignClosed)
}

func TestCancelCampaignSweepPartialFailure(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	h.contribute(t, id, "0xALICE", 10)
	h.contribute(t, id, "0xBOB", 20)

	// BOB收款失败：ALICE照常退款，BOB余额保留待事后领取
	h.transferor.failTo["0xBOB"] = true
	require.NoError(t, h.engine.CancelCampaign(id, testCreator))

	assert.Equal(t, int64(10), h.transferor.totalTo("0xALICE"))

	bob, _ := h.engine.ContributionOf(id, "0xBOB")
	assert.Equal(t, int64(20), bob, "失败的退款应恢复贡献记录")
	assert.Equal(t, int64(20), h.summary(t, id).Raised)

	// 故障排除后通过RequestRefund补领
	delete(h.transferor.failTo, "0xBOB")
	require.NoError(t, h.engine.RequestRefund(id, "0xBOB"))
	assert.Equal(t, int64(20), h.transferor.totalTo("0xBOB"))
	assert.Equal(t, int64(0), h.summary(t, id).Raised)

	h.requireLedgerBalanced(t, id)
}

func TestModifyGoal(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	h.contribute(t, id, "0xALICE", 300)

	// 新目标必须大于已筹金额
	assert.ErrorIs(t, h.engine.ModifyGoal(id, testCreator, 300), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.ModifyGoal(id, testCreator, 200), engine.ErrInvalidParameters)
	assert.Equal(t, int64(1000), h.summary(t, id).Goal, "失败的调整不生效")

	require.NoError(t, h.engine.ModifyGoal(id, testCreator, 2000))
	assert.Equal(t, int64(2000), h.summary(t, id).Goal)

	assert.ErrorIs(t, h.engine.ModifyGoal(id, "0xOTHER", 3000), engine.ErrUnauthorized)
}

func TestModifyGoalClosedCampaign(t *testing.T) {
	h := newHarness(t)

	p := defaultParams()
	p.Goal = 100
	id := h.create(t, p)
	h.contribute(t, id, "0xALICE", 100)

	assert.ErrorIs(t, h.engine.ModifyGoal(id, testCreator, 2000), engine.ErrCampaignClosed)
}

func TestExtendDeadline(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	before := h.summary(t, id).Deadline

	require.NoError(t, h.engine.ExtendDeadline(id, testCreator, 7))
	assert.Equal(t, before.AddDate(0, 0, 7), h.summary(t, id).Deadline, "延期只做加法")

	assert.ErrorIs(t, h.engine.ExtendDeadline(id, testCreator, 0), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.ExtendDeadline(id, testCreator, -3), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.ExtendDeadline(id, "0xOTHER", 7), engine.ErrUnauthorized)
}
