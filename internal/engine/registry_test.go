package engine_test

import (
	"testing"
	"time"

	"github.com/blues/cfe/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCampaign(t *testing.T) {
	h := newHarness(t)

	id := h.create(t, defaultParams())
	assert.Equal(t, int64(1), id, "首个活动ID应为1")

	s := h.summary(t, id)
	assert.Equal(t, testCreator, s.Creator)
	assert.Equal(t, int64(1000), s.Goal)
	assert.Equal(t, int64(0), s.Raised)
	assert.Equal(t, engine.CampaignStatusActive, s.Status)
	assert.Equal(t, h.clock.Now().AddDate(0, 0, 30), s.Deadline)

	assert.Equal(t, []int64{1}, h.engine.CampaignsOf(testCreator), "创建应登记所有权索引")
	assert.True(t, h.engine.Exists(id))
	assert.False(t, h.engine.Exists(99))
}

func TestCreateCampaignSequentialIds(t *testing.T) {
	h := newHarness(t)

	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, h.create(t, defaultParams()))
	}
	assert.Equal(t, int64(5), h.engine.Count())
}

func TestCreateCampaignValidation(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name   string
		mutate func(*engine.CreateParams)
	}{
		{"目标为零", func(p *engine.CreateParams) { p.Goal = 0 }},
		{"目标为负", func(p *engine.CreateParams) { p.Goal = -10 }},
		{"标题为空", func(p *engine.CreateParams) { p.Title = "" }},
		{"创建者为空", func(p *engine.CreateParams) { p.Creator = "" }},
		{"最小贡献为零", func(p *engine.CreateParams) { p.MinContribution = 0 }},
		{"最大小于最小", func(p *engine.CreateParams) { p.MaxContribution = 0 }},
		{"期限为零", func(p *engine.CreateParams) { p.DurationDays = 0 }},
		{"代币资产缺地址", func(p *engine.CreateParams) { p.Asset = engine.Asset{Kind: engine.AssetToken} }},
		{"非法资产类型", func(p *engine.CreateParams) { p.Asset = engine.Asset{Kind: "stock"} }},
		{"提取上限为负", func(p *engine.CreateParams) { p.WithdrawCeiling = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.mutate(&p)
			_, err := h.engine.CreateCampaign(p)
			assert.ErrorIs(t, err, engine.ErrInvalidParameters)
		})
	}

	// 校验失败不得消耗ID计数器
	assert.Equal(t, int64(0), h.engine.Count())
	id := h.create(t, defaultParams())
	assert.Equal(t, int64(1), id)
}

func TestCreateCampaignPaused(t *testing.T) {
	h := newHarness(t)
	h.gate.paused = true

	_, err := h.engine.CreateCampaign(defaultParams())
	assert.ErrorIs(t, err, engine.ErrPaused)
}

func TestUpdateMetadata(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	// 空字符串表示不修改
	require.NoError(t, h.engine.UpdateMetadata(id, testCreator, "新标题", "", "http://img", ""))

	s := h.summary(t, id)
	assert.Equal(t, "新标题", s.Title)
	assert.Equal(t, "第一批打样", s.Description, "空字符串字段应保持原值")
	assert.Equal(t, "http://img", s.ImageURL)
	assert.Equal(t, "hardware", s.Category)

	assert.ErrorIs(t, h.engine.UpdateMetadata(id, testCreator, "", "", "", ""), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.UpdateMetadata(id, "0xOTHER", "x", "", "", ""), engine.ErrUnauthorized)
	assert.ErrorIs(t, h.engine.UpdateMetadata(42, testCreator, "x", "", "", ""), engine.ErrCampaignNotFound)
}

func TestTransferOwnership(t *testing.T) {
	h := newHarness(t)
	id1 := h.create(t, defaultParams())
	id2 := h.create(t, defaultParams())

	require.NoError(t, h.engine.TransferOwnership(id1, testCreator, "0xNEW"))

	assert.Equal(t, []int64{id2}, h.engine.CampaignsOf(testCreator), "原所有者索引应移除该活动")
	assert.Equal(t, []int64{id1}, h.engine.CampaignsOf("0xNEW"))
	assert.Equal(t, "0xNEW", h.summary(t, id1).Creator)

	// 旧所有者不再有权操作
	assert.ErrorIs(t, h.engine.UpdateMetadata(id1, testCreator, "x", "", "", ""), engine.ErrUnauthorized)
	require.NoError(t, h.engine.UpdateMetadata(id1, "0xNEW", "x", "", "", ""))

	assert.ErrorIs(t, h.engine.TransferOwnership(id2, testCreator, ""), engine.ErrInvalidParameters)
	assert.ErrorIs(t, h.engine.TransferOwnership(id2, testCreator, testCreator), engine.ErrInvalidParameters)
}

func TestSetFundingAsset(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	require.NoError(t, h.engine.SetFundingAsset(id, testCreator, engine.TokenAsset("0xTOKEN")))
	assert.Equal(t, engine.AssetToken, h.summary(t, id).Asset.Kind)

	// 有贡献后资产固定
	h.contribute(t, id, "0xALICE", 10)
	assert.ErrorIs(t, h.engine.SetFundingAsset(id, testCreator, engine.NativeAsset()), engine.ErrCampaignClosed)
}

func TestVerifyAndPromote(t *testing.T) {
	h := newHarness(t)
	id := h.create(t, defaultParams())

	// 仅平台管理方可操作，创建者也不行
	assert.ErrorIs(t, h.engine.SetVerified(id, testCreator, true), engine.ErrUnauthorized)
	require.NoError(t, h.engine.SetVerified(id, "0xADMIN", true))
	require.NoError(t, h.engine.SetPromoted(id, "0xADMIN", true))

	s := h.summary(t, id)
	assert.True(t, s.Verified)
	assert.True(t, s.Promoted)

	verified := h.engine.List(engine.Filter{Verified: true})
	require.Len(t, verified, 1)
	assert.Equal(t, id, verified[0].Id)
}

func TestListFilters(t *testing.T) {
	h := newHarness(t)

	p := defaultParams()
	id1 := h.create(t, p)

	p2 := defaultParams()
	p2.Category = "art"
	p2.Creator = "0xOTHER"
	id2 := h.create(t, p2)

	// id1 达标
	h.contribute(t, id1, "0xALICE", 500)
	h.contribute(t, id1, "0xBOB", 500)

	active := h.engine.List(engine.Filter{Status: engine.CampaignStatusActive})
	require.Len(t, active, 1)
	assert.Equal(t, id2, active[0].Id)

	funded := h.engine.List(engine.Filter{Status: engine.CampaignStatusFunded})
	require.Len(t, funded, 1)
	assert.Equal(t, id1, funded[0].Id)

	art := h.engine.List(engine.Filter{Category: "art"})
	require.Len(t, art, 1)
	assert.Equal(t, id2, art[0].Id)

	// 过期状态按调用时刻的时钟计算
	h.clock.advance(31 * 24 * time.Hour)
	expired := h.engine.List(engine.Filter{Status: engine.CampaignStatusExpired})
	require.Len(t, expired, 1)
	assert.Equal(t, id2, expired[0].Id)
}
