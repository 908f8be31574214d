package platform

import (
	"sync/atomic"

	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/engine"
)

// ConfigGate 按配置实现的平台门控：单一管理账户加全局暂停开关。
// 暂停拦截所有资金流动操作（创建、贡献、取消、退款、提取），
// 只读查询和活动信息编辑不受影响。
type ConfigGate struct {
	owner  string
	paused atomic.Bool
}

// NewConfigGate 创建平台门控
func NewConfigGate(cfg config.PlatformConfig) *ConfigGate {
	g := &ConfigGate{owner: cfg.Owner}
	g.paused.Store(cfg.Paused)
	return g
}

// IsOwner 是否为平台管理账户
func (g *ConfigGate) IsOwner(account string) bool {
	return g.owner != "" && account == g.owner
}

// IsPaused 平台是否暂停
func (g *ConfigGate) IsPaused() bool {
	return g.paused.Load()
}

// SetPaused 切换暂停状态
func (g *ConfigGate) SetPaused(paused bool) {
	g.paused.Store(paused)
}

var _ engine.Gate = (*ConfigGate)(nil)
