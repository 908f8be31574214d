package engine

// Contribute 向活动贡献资金。
// 代币活动先通过协作方拉取代币，确认成功后才记账（先转账后记账，
// 防止拉取失败却记了账）。记账后若筹集总额达到目标，在同一操作内
// 完成达标转换与结算，外界观察不到“已达标但未完成”的中间状态。
func (e *Engine) Contribute(id int64, contributor string, amount int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireRunning(); err != nil {
		return err
	}

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if contributor == "" || amount <= 0 {
		return ErrInvalidParameters
	}
	if err := c.acceptsContributions(e.clock.Now()); err != nil {
		return err
	}
	if amount < c.MinContribution || amount > c.MaxContribution {
		return ErrContributionOutOfBounds
	}

	// 代币活动：先拉取，后记账
	pulled := false
	if c.Asset.Kind == AssetToken {
		if err := e.transferor.Pull(c.Asset, contributor, amount); err != nil {
			return ErrTransferFailed
		}
		pulled = true
	}

	// 在副本上暂存记账。名单成员资格看键是否存在：
	// 退款只把余额清零、不删键，退款后再贡献不会重复进名单。
	cl := c.clone()
	if _, seen := cl.Contributions[contributor]; !seen {
		cl.Roster = append(cl.Roster, contributor)
	}
	cl.Contributions[contributor] += amount
	cl.Raised += amount

	funded := !cl.Completed && cl.Raised >= cl.Goal
	var settledFee, settledNet int64
	if funded {
		settledFee, settledNet, err = e.settle(cl)
		if err != nil {
			// 结算转账失败则整体放弃。已拉取的代币原路退回（尽力而为）。
			if pulled {
				_ = e.transferor.Transfer(c.Asset, contributor, amount)
			}
			return err
		}
	}

	e.install(cl)

	e.emit(Event{Type: EventContribution, CampaignId: id, Account: contributor, Amount: amount})
	if funded {
		e.emit(Event{Type: EventCampaignFunded, CampaignId: id, Account: cl.Creator, Amount: cl.Raised})
		if settledNet > 0 || settledFee > 0 {
			e.emit(Event{Type: EventSettlement, CampaignId: id, Account: cl.Creator, Amount: settledNet, Fee: settledFee})
		}
	}
	return nil
}
