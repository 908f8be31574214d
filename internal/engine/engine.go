package engine

import (
	"sync"
	"time"
)

// Transferor 资金转移协作方。Transfer把托管资金支付给接收方，
// Pull从贡献者账户拉取代币到托管。两者都可能失败。
// 实现方不得在调用中同步回调引擎。
type Transferor interface {
	Transfer(asset Asset, recipient string, amount int64) error
	Pull(asset Asset, from string, amount int64) error
}

// Gate 权限与暂停协作方
type Gate interface {
	IsOwner(account string) bool
	IsPaused() bool
}

// Clock 时钟协作方，截止时间与提取间隔均按调用时刻取值
type Clock interface {
	Now() time.Time
}

// EventSink 事件接收方。Emit在操作提交后调用，实现方需自行异步化，
// 不得同步回调引擎。
type EventSink interface {
	Emit(evt Event)
}

// systemClock 系统时钟
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// openGate 不限制任何操作的默认门控
type openGate struct{}

func (openGate) IsOwner(string) bool { return false }
func (openGate) IsPaused() bool      { return false }

// nopSink 丢弃事件的默认接收方
type nopSink struct{}

func (nopSink) Emit(Event) {}

// Options 引擎构造参数
type Options struct {
	Transferor      Transferor
	Gate            Gate
	Clock           Clock
	Sink            EventSink
	FeeBps          int64  // 平台费率，基点（250 = 2.5%）
	PlatformAccount string // 平台费接收账户
}

// Engine 众筹活动账务与生命周期引擎。
// 所有公开操作被单一互斥锁完全串行化，每个操作要么完成全部状态
// 变更与外部转账，要么不产生任何可观察的变化。
type Engine struct {
	mu sync.Mutex

	campaigns  map[int64]*Campaign
	nextId     int64              // 下一个活动ID，从1开始单调递增，永不复用
	ownerIndex map[string][]int64 // 账户 -> 拥有的活动ID列表

	transferor Transferor
	gate       Gate
	clock      Clock
	sink       EventSink

	feeBps          int64
	platformAccount string
}

// New 创建引擎
func New(opts Options) (*Engine, error) {
	if opts.Transferor == nil {
		return nil, ErrInvalidParameters
	}
	if opts.FeeBps < 0 || opts.FeeBps > BpsDenominator {
		return nil, ErrInvalidParameters
	}
	if opts.FeeBps > 0 && opts.PlatformAccount == "" {
		return nil, ErrInvalidParameters
	}
	if opts.Gate == nil {
		opts.Gate = openGate{}
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Sink == nil {
		opts.Sink = nopSink{}
	}

	return &Engine{
		campaigns:       make(map[int64]*Campaign),
		nextId:          1,
		ownerIndex:      make(map[string][]int64),
		transferor:      opts.Transferor,
		gate:            opts.Gate,
		clock:           opts.Clock,
		sink:            opts.Sink,
		feeBps:          opts.FeeBps,
		platformAccount: opts.PlatformAccount,
	}, nil
}

// mustGet 按ID取活动，不存在返回ErrCampaignNotFound。须在持锁状态下调用。
func (e *Engine) mustGet(id int64) (*Campaign, error) {
	c, ok := e.campaigns[id]
	if !ok {
		return nil, ErrCampaignNotFound
	}
	return c, nil
}

// requireCreator 校验调用者是活动创建者
func (e *Engine) requireCreator(c *Campaign, caller string) error {
	if caller != c.Creator {
		return ErrUnauthorized
	}
	return nil
}

// requireRunning 校验平台未暂停
func (e *Engine) requireRunning() error {
	if e.gate.IsPaused() {
		return ErrPaused
	}
	return nil
}

// install 提交活动副本
func (e *Engine) install(c *Campaign) {
	e.campaigns[c.Id] = c
}

// emit 发出事件，补充时间戳
func (e *Engine) emit(evt Event) {
	evt.At = e.clock.Now()
	e.sink.Emit(evt)
}
