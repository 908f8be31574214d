package engine

// EnableRefunds 开启活动退款。仅创建者可操作，达标后不可开启。幂等。
func (e *Engine) EnableRefunds(id int64, caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return err
	}
	if c.Completed {
		return ErrCampaignClosed
	}
	if c.Refundable {
		return nil
	}

	c.Refundable = true

	e.emit(Event{Type: EventRefundsEnabled, CampaignId: id, Account: caller})
	return nil
}

// RequestRefund 贡献者申请退款。
// 先清零记录再转账：重入的退款请求只能看到清零后的状态，
// 命中ErrNoContribution，杜绝重复退款。转账失败则整体放弃，
// 贡献记录保持原值。
func (e *Engine) RequestRefund(id int64, contributor string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireRunning(); err != nil {
		return err
	}

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if !c.Refundable || c.Completed {
		return ErrRefundsUnavailable
	}

	amount := c.Contributions[contributor]
	if amount == 0 {
		return ErrNoContribution
	}

	cl := c.clone()
	cl.Contributions[contributor] = 0
	cl.Raised -= amount

	if err := e.transferor.Transfer(cl.Asset, contributor, amount); err != nil {
		return ErrTransferFailed
	}

	e.install(cl)

	e.emit(Event{Type: EventRefund, CampaignId: id, Account: contributor, Amount: amount})
	return nil
}
