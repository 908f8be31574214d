package engine

// WithdrawSurplus 提取目标以上的超额资金。仅达标后的活动可提取。
// 超额 = 当前筹集总额 - 目标金额，提取后Raised回落到目标值。
// 超额部分不收平台费。
func (e *Engine) WithdrawSurplus(id int64, caller string) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireRunning(); err != nil {
		return 0, err
	}

	c, err := e.mustGet(id)
	if err != nil {
		return 0, err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return 0, err
	}
	if !c.Completed || c.Cancelled {
		return 0, ErrCampaignClosed
	}

	excess := c.Raised - c.Goal
	if excess <= 0 {
		return 0, ErrNoExcess
	}

	cl := c.clone()
	cl.Raised -= excess

	if err := e.transferor.Transfer(cl.Asset, cl.Creator, excess); err != nil {
		return 0, ErrTransferFailed
	}

	e.install(cl)

	e.emit(Event{Type: EventSurplusWithdrawn, CampaignId: id, Account: caller, Amount: excess})
	return excess, nil
}

// WithdrawPartial 未完成活动的部分提取。需活动开启部分提取，
// 受提取上限与最小间隔约束，提取额按费率拆分后支付创建者与平台。
func (e *Engine) WithdrawPartial(id int64, caller string, amount int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireRunning(); err != nil {
		return err
	}

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return err
	}
	if !c.open() {
		return ErrCampaignClosed
	}
	if !c.PartialWithdrawal {
		return ErrWithdrawalsUnavailable
	}
	if amount <= 0 {
		return ErrInvalidParameters
	}
	if amount > c.Raised {
		return ErrWithdrawalLimitExceeded
	}
	if c.WithdrawInterval > 0 && !c.LastWithdrawal.IsZero() {
		if e.clock.Now().Before(c.LastWithdrawal.Add(c.WithdrawInterval)) {
			return ErrIntervalNotElapsed
		}
	}
	if c.WithdrawCeiling > 0 && c.TotalWithdrawn+amount > c.WithdrawCeiling {
		return ErrWithdrawalLimitExceeded
	}

	cl := c.clone()
	cl.Raised -= amount
	cl.TotalWithdrawn += amount
	cl.LastWithdrawal = e.clock.Now()

	fee, net := SplitFee(amount, e.feeBps)
	if err := e.transferor.Transfer(cl.Asset, cl.Creator, net); err != nil {
		return ErrTransferFailed
	}
	if fee > 0 {
		if err := e.transferor.Transfer(cl.Asset, e.platformAccount, fee); err != nil {
			return ErrTransferFailed
		}
	}

	e.install(cl)

	e.emit(Event{Type: EventPartialWithdrawal, CampaignId: id, Account: caller, Amount: net, Fee: fee})
	return nil
}
