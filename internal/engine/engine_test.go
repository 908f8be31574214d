package engine_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/blues/cfe/internal/engine"
	"github.com/stretchr/testify/require"
)

const (
	testPlatform = "0xPLATFORM"
	testCreator  = "0xCREATOR"
	testFeeBps   = 250 // 2.5%
)

// transferCall 一次资金转移调用的记录
type transferCall struct {
	asset  engine.Asset
	other  string // 接收方或拉取来源
	amount int64
}

// fakeTransferor 记录全部转账与拉取，可按接收方编程失败
type fakeTransferor struct {
	mu        sync.Mutex
	transfers []transferCall
	pulls     []transferCall
	failTo    map[string]bool
	failPull  bool
}

func newFakeTransferor() *fakeTransferor {
	return &fakeTransferor{failTo: make(map[string]bool)}
}

func (f *fakeTransferor) Transfer(asset engine.Asset, recipient string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTo[recipient] {
		return errors.New("transfer rejected")
	}
	f.transfers = append(f.transfers, transferCall{asset: asset, other: recipient, amount: amount})
	return nil
}

func (f *fakeTransferor) Pull(asset engine.Asset, from string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPull {
		return errors.New("pull rejected")
	}
	f.pulls = append(f.pulls, transferCall{asset: asset, other: from, amount: amount})
	return nil
}

// totalTo 某接收方累计收到的转账额
func (f *fakeTransferor) totalTo(recipient string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, c := range f.transfers {
		if c.other == recipient {
			total += c.amount
		}
	}
	return total
}

func (f *fakeTransferor) transferCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transfers)
}

// manualClock 手动推进的测试时钟
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// staticGate 固定配置的门控
type staticGate struct {
	owner  string
	paused bool
}

func (g *staticGate) IsOwner(account string) bool { return account == g.owner }
func (g *staticGate) IsPaused() bool              { return g.paused }

// recordSink 记录全部事件
type recordSink struct {
	mu     sync.Mutex
	events []engine.Event
}

func (s *recordSink) Emit(evt engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordSink) ofType(t engine.EventType) []engine.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []engine.Event
	for _, evt := range s.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

// testHarness 测试用引擎与全部假协作方
type testHarness struct {
	engine     *engine.Engine
	transferor *fakeTransferor
	clock      *manualClock
	gate       *staticGate
	sink       *recordSink
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()

	transferor := newFakeTransferor()
	clock := newManualClock()
	gate := &staticGate{owner: "0xADMIN"}
	sink := &recordSink{}

	e, err := engine.New(engine.Options{
		Transferor:      transferor,
		Gate:            gate,
		Clock:           clock,
		Sink:            sink,
		FeeBps:          testFeeBps,
		PlatformAccount: testPlatform,
	})
	require.NoError(t, err)

	return &testHarness{engine: e, transferor: transferor, clock: clock, gate: gate, sink: sink}
}

// defaultParams 常用创建参数：目标1000，单笔1~500，30天
func defaultParams() engine.CreateParams {
	return engine.CreateParams{
		Creator:         testCreator,
		Title:           "开源硬件众筹",
		Description:     "第一批打样",
		Category:        "hardware",
		Goal:            1000,
		MinContribution: 1,
		MaxContribution: 500,
		DurationDays:    30,
		Asset:           engine.NativeAsset(),
	}
}

// create 创建活动并断言成功
func (h *testHarness) create(t *testing.T, p engine.CreateParams) int64 {
	t.Helper()
	id, err := h.engine.CreateCampaign(p)
	require.NoError(t, err)
	return id
}

// contribute 贡献并断言成功
func (h *testHarness) contribute(t *testing.T, id int64, contributor string, amount int64) {
	t.Helper()
	require.NoError(t, h.engine.Contribute(id, contributor, amount))
}

// summary 查询快照并断言成功
func (h *testHarness) summary(t *testing.T, id int64) engine.Summary {
	t.Helper()
	s, err := h.engine.Summary(id)
	require.NoError(t, err)
	return s
}

// requireLedgerBalanced 校验账本恒等式：
// Raised == 未退款贡献之和 - 部分/里程碑提取总额 - 超额提取总额。
// 退款在贡献记录与Raised两侧同步扣减，达标结算不扣减Raised。
func (h *testHarness) requireLedgerBalanced(t *testing.T, id int64) {
	t.Helper()

	s := h.summary(t, id)
	roster, err := h.engine.Contributors(id)
	require.NoError(t, err)

	var live int64
	for _, addr := range roster {
		amount, err := h.engine.ContributionOf(id, addr)
		require.NoError(t, err)
		live += amount
	}

	var surplus int64
	for _, evt := range h.sink.ofType(engine.EventSurplusWithdrawn) {
		if evt.CampaignId == id {
			surplus += evt.Amount
		}
	}

	require.Equal(t, live-s.TotalWithdrawn-surplus, s.Raised, "ledger identity must hold")
}
