package engine

// AddMilestone 添加里程碑。仅未完成活动可添加。
func (e *Engine) AddMilestone(id int64, caller string, amount int64, description string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return 0, err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return 0, err
	}
	if !c.open() {
		return 0, ErrCampaignClosed
	}
	if amount <= 0 || description == "" {
		return 0, ErrInvalidParameters
	}

	c.Milestones = append(c.Milestones, Milestone{Amount: amount, Description: description})
	index := len(c.Milestones) - 1

	e.emit(Event{Type: EventMilestoneAdded, CampaignId: id, Account: caller, Amount: amount, Note: description})
	return index, nil
}

// CompleteMilestone 完成里程碑并释放对应资金。仅达标后可完成，
// 每个里程碑只能完成一次，顺序不限。释放额计入已提取总额，
// 与部分提取共用同一提取上限，并按费率拆分支付。
func (e *Engine) CompleteMilestone(id int64, caller string, index int) error {
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
	if !c.Completed || c.Cancelled {
		return ErrCampaignClosed
	}
	if index < 0 || index >= len(c.Milestones) {
		return ErrInvalidParameters
	}
	if c.Milestones[index].Completed {
		return ErrMilestoneCompleted
	}

	amount := c.Milestones[index].Amount
	if amount > c.Raised {
		return ErrWithdrawalLimitExceeded
	}
	if c.WithdrawCeiling > 0 && c.TotalWithdrawn+amount > c.WithdrawCeiling {
		return ErrWithdrawalLimitExceeded
	}

	cl := c.clone()
	cl.Milestones[index].Completed = true
	cl.Raised -= amount
	cl.TotalWithdrawn += amount

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

	e.emit(Event{Type: EventMilestoneCompleted, CampaignId: id, Account: caller, Amount: net, Fee: fee, Note: cl.Milestones[index].Description})
	return nil
}
