package engine

import "sort"

// Filter 活动枚举过滤条件。零值字段不参与过滤。
type Filter struct {
	Status   CampaignStatus
	Category string
	Creator  string
	Verified bool // true时只返回已认证活动
	Promoted bool // true时只返回推荐活动
}

// Summary 查询活动快照
func (e *Engine) Summary(id int64) (Summary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return Summary{}, err
	}
	return c.summaryAt(e.clock.Now()), nil
}

// ContributionOf 查询贡献者在活动中的当前累计贡献额
func (e *Engine) ContributionOf(id int64, contributor string) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return 0, err
	}
	return c.Contributions[contributor], nil
}

// Contributors 查询活动的贡献者名单，按首次贡献顺序
func (e *Engine) Contributors(id int64) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.mustGet(id)
	if err != nil {
		return nil, err
	}

	roster := make([]string, len(c.Roster))
	copy(roster, c.Roster)
	return roster, nil
}

// CampaignsOf 查询账户拥有的活动ID列表
func (e *Engine) CampaignsOf(account string) []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	owned := make([]int64, len(e.ownerIndex[account]))
	copy(owned, e.ownerIndex[account])
	return owned
}

// List 按过滤条件枚举活动快照，按ID升序
func (e *Engine) List(f Filter) []Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	result := make([]Summary, 0)
	for _, c := range e.campaigns {
		if f.Status != "" && c.StatusAt(now) != f.Status {
			continue
		}
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Creator != "" && c.Creator != f.Creator {
			continue
		}
		if f.Verified && !c.Verified {
			continue
		}
		if f.Promoted && !c.Promoted {
			continue
		}
		result = append(result, c.summaryAt(now))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result
}

// Count 活动总数
func (e *Engine) Count() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.nextId - 1
}
