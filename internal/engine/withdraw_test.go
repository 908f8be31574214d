package engine_test

import (
	"testing"
	"time"

	"github.com/blues/cfe/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawSurplus(t *testing.T) {
	h := newHarness(t)

	p := defaultParams()
	p.Goal = 100
	p.MaxContribution = 500
	id := h.create(t, p)

	// 一笔150越过目标：结算支付目标部分，超额50留在托管
	h.contribute(t, id, "0xALICE", 150)

	s := h.summary(t, id)
	require.True(t, s.Completed)
	assert.Equal(t, int64(150), s.Raised)

	creatorBefore := h.transferor.totalTo(testCreator)

	excess, err := h.engine.WithdrawSurplus(id, testCreator)
	require.NoError(t, err)
	assert.Equal(t, int64(50), excess)

	// 超额不收平台费
	assert.Equal(t, creatorBefore+50, h.transferor.totalTo(testCreator))
	assert.Equal(t, int64(100), h.summary(t, id).Raised, "提取后Raised回落到目标值")

	// 再次提取没有超额
	_, err = h.engine.WithdrawSurplus(id, testCreator)
	assert.ErrorIs(t, err, engine.ErrNoExcess)

	h.requireLedgerBalanced(t, id)
}

func TestWithdrawSurplusGating(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	// 未达标不可提取
	_, err := h.engine.WithdrawSurplus(id, testCreator)
	assert.ErrorIs(t, err, engine.ErrCampaignClosed)

	p := defaultParams()
	p.Goal = 100
	id2 := h.create(t, p)
	h.contribute(t, id2, "0xALICE", 150)

	_, err = h.engine.WithdrawSurplus(id2, "0xOTHER")
	assert.ErrorIs(t, err, engine.ErrUnauthorized)
}

// partialParams 开启部分提取的活动参数
func partialParams(ceiling int64, interval time.Duration) engine.CreateParams {
	p := defaultParams()
	p.PartialWithdrawal = true
	p.WithdrawCeiling = ceiling
	p.WithdrawInterval = interval
	return p
}

func TestWithdrawPartial(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, partialParams(0, 0))

	h.contribute(t, id, "0xALICE", 400)

	require.NoError(t, h.engine.WithdrawPartial(id, testCreator, 200))

	// 200按250基点拆分：净额195给创建者，费5给平台
	assert.Equal(t, int64(195), h.transferor.totalTo(testCreator))
	assert.Equal(t, int64(5), h.transferor.totalTo(testPlatform))

	s := h.summary(t, id)
	assert.Equal(t, int64(200), s.Raised)
	assert.Equal(t, int64(200), s.TotalWithdrawn)

	h.requireLedgerBalanced(t, id)
}

func TestWithdrawPartialCeiling(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, partialParams(100, 0))

	h.contribute(t, id, "0xALICE", 400)

	// 60 + 50 超过上限100
	require.NoError(t, h.engine.WithdrawPartial(id, testCreator, 60))
	assert.ErrorIs(t, h.engine.WithdrawPartial(id, testCreator, 50), engine.ErrWithdrawalLimitExceeded)

	// 60 + 40 恰好到上限
	require.NoError(t, h.engine.WithdrawPartial(id, testCreator, 40))
	assert.Equal(t, int64(100), h.summary(t, id).TotalWithdrawn)

	// 上限已满
	assert.ErrorIs(t, h.engine.WithdrawPartial(id, testCreator, 1), engine.ErrWithdrawalLimitExceeded)
}

func TestWithdrawPartialInterval(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, partialParams(0, 24*time.Hour))

	h.contribute(t, id, "0xALICE", 400)

	// 首次提取不受间隔限制
	require.NoError(t, h.engine.WithdrawPartial(id, testCreator, 50))

	assert.ErrorIs(t, h.engine.WithdrawPartial(id, testCreator, 50), engine.ErrIntervalNotElapsed)

	h.clock.advance(23 * time.Hour)
	assert.ErrorIs(t, h.engine.WithdrawPartial(id, testCreator, 50), engine.ErrIntervalNotElapsed)

	h.clock.advance(time.Hour)
	require.NoError(t, h.engine.WithdrawPartial(id, testCreator, 50))
}

func TestWithdrawPartialGating(t *testing.T) {
	h := newHarness(t)

	// 未开启部分提取
	id := h.create(t, defaultParams())
	h.contribute(t, id, "0xALICE", 100)
	assert.ErrorIs(t, h.engine.WithdrawPartial(id, testCreator, 50), engine.ErrWithdrawalsUnavailable)

	id2 := h.create(t, partialParams(0, 0))
	h.contribute(t, id2, "0xALICE", 100)

	assert.ErrorIs(t, h.engine.WithdrawPartial(id2, "0xOTHER", 50), engine.ErrUnauthorized)
	assert.ErrorIs(t, h.engine.WithdrawPartial(id2, testCreator, 0), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.WithdrawPartial(id2, testCreator, 101), engine.ErrWithdrawalLimitExceeded, "不得超出当前筹集额")

	// 达标后部分提取关闭
	p := defaultParams()
	p.Goal = 100
	p.PartialWithdrawal = true
	id3 := h.create(t, p)
	h.contribute(t, id3, "0xALICE", 100)
	assert.ErrorIs(t, h.engine.WithdrawPartial(id3, testCreator, 10), engine.ErrCampaignClosed)
}

func TestWithdrawPartialTransferFailureAborts(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, partialParams(0, 0))

	h.contribute(t, id, "0xALICE", 400)

	h.transferor.failTo[testCreator] = true
	assert.ErrorIs(t, h.engine.WithdrawPartial(id, testCreator, 100), engine.ErrTransferFailed)

	s := h.summary(t, id)
	assert.Equal(t, int64(400), s.Raised, "失败的提取不留痕迹")
	assert.Equal(t, int64(0), s.TotalWithdrawn)
	assert.True(t, s.LastWithdrawal.IsZero())
}
