package engine_test

import (
	"testing"
	"time"

	"github.com/blues/cfe/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContribute(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	h.contribute(t, id, "0xALICE", 100)
	h.contribute(t, id, "0xBOB", 50)
	h.contribute(t, id, "0xALICE", 30)

	s := h.summary(t, id)
	assert.Equal(t, int64(180), s.Raised)
	assert.Equal(t, 2, s.ContributorCount, "同一贡献者只进一次名单")

	alice, err := h.engine.ContributionOf(id, "0xALICE")
	require.NoError(t, err)
	assert.Equal(t, int64(130), alice, "贡献应累计")

	roster, err := h.engine.Contributors(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"0xALICE", "0xBOB"}, roster, "名单按首次贡献顺序")

	h.requireLedgerBalanced(t, id)
	assert.Len(t, h.sink.ofType(engine.EventContribution), 3)
}

func TestContributeValidation(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	assert.ErrorIs(t, h.engine.Contribute(42, "0xALICE", 10), engine.ErrCampaignNotFound)
	assert.ErrorIs(t, h.engine.Contribute(id, "", 10), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.Contribute(id, "0xALICE", 0), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.Contribute(id, "0xALICE", 501), engine.ErrContributionOutOfBounds)

	p := defaultParams()
	p.MinContribution = 10
	id2 := h.create(t, p)
	assert.ErrorIs(t, h.engine.Contribute(id2, "0xALICE", 5), engine.ErrContributionOutOfBounds)

	// 校验失败不改变任何状态
	assert.Equal(t, int64(0), h.summary(t, id).Raised)
	assert.Equal(t, 0, h.summary(t, id).ContributorCount)
}

func TestContributeAfterDeadline(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	h.clock.advance(30*24*time.Hour + time.Minute)

	err := h.engine.Contribute(id, "0xALICE", 10)
	assert.ErrorIs(t, err, engine.ErrDeadlinePassed)
}

func TestContributePaused(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	h.gate.paused = true
	assert.ErrorIs(t, h.engine.Contribute(id, "0xALICE", 10), engine.ErrPaused)
}

func TestContributeReachesGoal(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	h.contribute(t, id, "0xALICE", 500)
	h.contribute(t, id, "0xBOB", 500)

	// 达标转换与贡献同属一个操作
	s := h.summary(t, id)
	assert.True(t, s.Completed)
	assert.Equal(t, engine.CampaignStatusFunded, s.Status)
	assert.Equal(t, int64(1000), s.Settled)

	// 结算：目标1000按250基点拆分，净额975给创建者，费25给平台
	assert.Equal(t, int64(975), h.transferor.totalTo(testCreator))
	assert.Equal(t, int64(25), h.transferor.totalTo(testPlatform))

	require.Len(t, h.sink.ofType(engine.EventCampaignFunded), 1)
	require.Len(t, h.sink.ofType(engine.EventSettlement), 1)

	// 达标后再贡献失败
	err := h.engine.Contribute(id, "0xCAROL", 10)
	assert.ErrorIs(t, err, engine.ErrCampaignClosed)

	h.requireLedgerBalanced(t, id)
}

func TestContributeGoalFiresOnce(t *testing.T) {
	h := newHarness(t)

	p := defaultParams()
	p.Goal = 100
	id := h.create(t, p)

	h.contribute(t, id, "0xALICE", 100)
	require.Len(t, h.sink.ofType(engine.EventCampaignFunded), 1)
	assert.ErrorIs(t, h.engine.Contribute(id, "0xBOB", 100), engine.ErrCampaignClosed)
	require.Len(t, h.sink.ofType(engine.EventCampaignFunded), 1, "达标转换只触发一次")
}

func TestContributeTokenPullBeforeCredit(t *testing.T) {
	h := newHarness(t)

	p := defaultParams()
	p.Asset = engine.TokenAsset("0xTOKEN")
	id := h.create(t, p)

	h.contribute(t, id, "0xALICE", 100)
	require.Len(t, h.transferor.pulls, 1)
	assert.Equal(t, "0xALICE", h.transferor.pulls[0].other)
	assert.Equal(t, engine.AssetToken, h.transferor.pulls[0].asset.Kind)

	// 拉取失败时不得记账
	h.transferor.failPull = true
	err := h.engine.Contribute(id, "0xBOB", 100)
	assert.ErrorIs(t, err, engine.ErrTransferFailed)

	s := h.summary(t, id)
	assert.Equal(t, int64(100), s.Raised)
	assert.Equal(t, 1, s.ContributorCount)
}

func TestContributeSettlementFailureAborts(t *testing.T) {
	h := newHarness(t)

	p := defaultParams()
	p.Goal = 100
	p.Asset = engine.TokenAsset("0xTOKEN")
	id := h.create(t, p)

	h.contribute(t, id, "0xALICE", 50)

	// 创建者收款失败导致整笔贡献放弃
	h.transferor.failTo[testCreator] = true
	err := h.engine.Contribute(id, "0xBOB", 50)
	assert.ErrorIs(t, err, engine.ErrTransferFailed)

	s := h.summary(t, id)
	assert.False(t, s.Completed, "结算失败不得留下达标状态")
	assert.Equal(t, int64(50), s.Raised, "失败贡献不得记账")

	bob, err := h.engine.ContributionOf(id, "0xBOB")
	require.NoError(t, err)
	assert.Equal(t, int64(0), bob)

	// 已拉取的代币原路退回
	assert.Equal(t, int64(50), h.transferor.totalTo("0xBOB"))

	// 排除故障后重试成功
	delete(h.transferor.failTo, testCreator)
	h.contribute(t, id, "0xBOB", 50)
	assert.True(t, h.summary(t, id).Completed)
}
