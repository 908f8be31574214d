package engine

import "time"

// CreateParams 创建活动参数
type CreateParams struct {
	Creator         string
	Title           string
	Description     string
	ImageURL        string
	Category        string
	Goal            int64
	MinContribution int64
	MaxContribution int64
	DurationDays    int
	Asset           Asset

	// 部分提取配置
	PartialWithdrawal bool
	WithdrawCeiling   int64
	WithdrawInterval  time.Duration
}

// validate 校验创建参数
func (p CreateParams) validate() error {
	if p.Creator == "" || p.Title == "" {
		return ErrInvalidParameters
	}
	if p.Goal <= 0 {
		return ErrInvalidParameters
	}
	if p.MinContribution <= 0 || p.MaxContribution < p.MinContribution {
		return ErrInvalidParameters
	}
	if p.DurationDays <= 0 {
		return ErrInvalidParameters
	}
	if !p.Asset.valid() {
		return ErrInvalidParameters
	}
	if p.WithdrawCeiling < 0 || p.WithdrawInterval < 0 {
		return ErrInvalidParameters
	}
	return nil
}

// CreateCampaign 创建活动，返回新分配的活动ID。
// 参数校验失败时不消耗ID计数器。
func (e *Engine) CreateCampaign(p CreateParams) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireRunning(); err != nil {
		return 0, err
	}
	if err := p.validate(); err != nil {
		return 0, err
	}

	now := e.clock.Now()
	c := &Campaign{
		Id:                e.nextId,
		Creator:           p.Creator,
		Title:             p.Title,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		Category:          p.Category,
		Goal:              p.Goal,
		MinContribution:   p.MinContribution,
		MaxContribution:   p.MaxContribution,
		Asset:             p.Asset,
		CreatedAt:         now,
		Deadline:          now.AddDate(0, 0, p.DurationDays),
		PartialWithdrawal: p.PartialWithdrawal,
		WithdrawCeiling:   p.WithdrawCeiling,
		WithdrawInterval:  p.WithdrawInterval,
		Contributions:     make(map[string]int64),
	}

	e.campaigns[c.Id] = c
	e.ownerIndex[p.Creator] = append(e.ownerIndex[p.Creator], c.Id)
	e.nextId++

	e.emit(Event{Type: EventCampaignCreated, CampaignId: c.Id, Account: p.Creator, Amount: p.Goal})
	return c.Id, nil
}

// Exists 活动ID是否存在
func (e *Engine) Exists(id int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.campaigns[id]
	return ok
}

// UpdateMetadata 更新活动展示信息。空字符串表示不修改该字段。
func (e *Engine) UpdateMetadata(id int64, caller, title, description, imageURL, category string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return err
	}
	if title == "" && description == "" && imageURL == "" && category == "" {
		return ErrInvalidParameters
	}

	if title != "" {
		c.Title = title
	}
	if description != "" {
		c.Description = description
	}
	if imageURL != "" {
		c.ImageURL = imageURL
	}
	if category != "" {
		c.Category = category
	}

	e.emit(Event{Type: EventMetadataUpdated, CampaignId: id, Account: caller})
	return nil
}

// TransferOwnership 转移活动所有权并重写双方的所有权索引
func (e *Engine) TransferOwnership(id int64, caller, newOwner string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return err
	}
	if newOwner == "" || newOwner == c.Creator {
		return ErrInvalidParameters
	}

	owned := e.ownerIndex[c.Creator]
	rewritten := make([]int64, 0, len(owned))
	for _, ownedId := range owned {
		if ownedId != id {
			rewritten = append(rewritten, ownedId)
		}
	}
	if len(rewritten) == 0 {
		delete(e.ownerIndex, c.Creator)
	} else {
		e.ownerIndex[c.Creator] = rewritten
	}
	e.ownerIndex[newOwner] = append(e.ownerIndex[newOwner], id)

	c.Creator = newOwner

	e.emit(Event{Type: EventOwnershipTransferred, CampaignId: id, Account: newOwner, Note: caller})
	return nil
}

// SetFundingAsset 更换筹资资产。只允许在没有任何贡献时更换。
func (e *Engine) SetFundingAsset(id int64, caller string, asset Asset) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return err
	}
	if !asset.valid() {
		return ErrInvalidParameters
	}
	if c.Raised > 0 || len(c.Roster) > 0 {
		return ErrCampaignClosed
	}

	c.Asset = asset

	e.emit(Event{Type: EventAssetChanged, CampaignId: id, Account: caller, Note: string(asset.Kind)})
	return nil
}

// SetVerified 设置活动认证标志，仅平台管理方可用
func (e *Engine) SetVerified(id int64, caller string, verified bool) error {
	return e.setFlag(id, caller, EventVerifiedChanged, func(c *Campaign) { c.Verified = verified })
}

// SetPromoted 设置活动推荐标志，仅平台管理方可用
func (e *Engine) SetPromoted(id int64, caller string, promoted bool) error {
	return e.setFlag(id, caller, EventPromotedChanged, func(c *Campaign) { c.Promoted = promoted })
}

// setFlag 平台管理标志的统一修改入口
func (e *Engine) setFlag(id int64, caller string, evt EventType, apply func(*Campaign)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if !e.gate.IsOwner(caller) {
		return ErrUnauthorized
	}

	apply(c)

	e.emit(Event{Type: evt, CampaignId: id, Account: caller})
	return nil
}
