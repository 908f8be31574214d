package engine

// settle 执行达标转换。在贡献操作内部、持锁状态下调用，cl为暂存副本。
// 有里程碑的活动只标记完成，资金随里程碑逐笔释放；
// 无里程碑的活动立即结算目标金额：平台费与净额拆分后分别支付。
// 结算不扣减Raised，目标以上的超额部分留待创建者另行提取。
func (e *Engine) settle(cl *Campaign) (fee, net int64, err error) {
	cl.Completed = true

	if len(cl.Milestones) > 0 {
		return 0, 0, nil
	}

	fee, net = SplitFee(cl.Goal, e.feeBps)
	if err := e.transferor.Transfer(cl.Asset, cl.Creator, net); err != nil {
		return 0, 0, ErrTransferFailed
	}
	if fee > 0 {
		if err := e.transferor.Transfer(cl.Asset, e.platformAccount, fee); err != nil {
			return 0, 0, ErrTransferFailed
		}
	}
	cl.Settled = cl.Goal
	return fee, net, nil
}

// CancelCampaign 取消活动并向全部贡献者退款。
// 仅创建者可取消，达标后禁止取消。取消与可退款标志先行提交，
// 随后逐个贡献者先清零再转账；单个转账失败只回滚该贡献者的清零，
// 其余额可在之后通过RequestRefund领取。
func (e *Engine) CancelCampaign(id int64, caller string) error {
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
	if c.Completed || c.Cancelled {
		return ErrCampaignClosed
	}

	// 提交点：此后任何重入观察到的都是已取消状态
	c.Cancelled = true
	c.Refundable = true

	e.emit(Event{Type: EventCampaignCancelled, CampaignId: id, Account: caller})

	// 逐个贡献者清零并退款
	for _, addr := range c.Roster {
		amount := c.Contributions[addr]
		if amount == 0 {
			continue
		}

		c.Contributions[addr] = 0
		c.Raised -= amount

		if err := e.transferor.Transfer(c.Asset, addr, amount); err != nil {
			// 恢复该贡献者的余额，留待事后单独退款
			c.Contributions[addr] = amount
			c.Raised += amount
			continue
		}

		e.emit(Event{Type: EventRefund, CampaignId: id, Account: addr, Amount: amount})
	}

	return nil
}

// ModifyGoal 调整目标金额。仅未完成活动可调整，且新目标必须
// 大于当前筹集总额，避免目标被压到已筹金额之下触发意外达标。
func (e *Engine) ModifyGoal(id int64, caller string, newGoal int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

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
	if newGoal <= c.Raised || newGoal <= 0 {
		return ErrInvalidParameters
	}

	c.Goal = newGoal

	e.emit(Event{Type: EventGoalModified, CampaignId: id, Account: caller, Amount: newGoal})
	return nil
}

// ExtendDeadline 延长截止时间。只做加法，不能缩短或替换。
func (e *Engine) ExtendDeadline(id int64, caller string, days int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return err
	}
	if err := e.requireCreator(c, caller); err != nil {
		return err
	}
	if c.Completed || c.Cancelled {
		return ErrCampaignClosed
	}
	if days <= 0 {
		return ErrInvalidParameters
	}

	c.Deadline = c.Deadline.AddDate(0, 0, days)

	e.emit(Event{Type: EventDeadlineExtended, CampaignId: id, Account: caller})
	return nil
}
