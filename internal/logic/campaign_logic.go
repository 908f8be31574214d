package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CampaignLogic 活动快照业务逻辑
type CampaignLogic struct {
	db *gorm.DB
}

// NewCampaignLogic 创建活动快照业务逻辑
func NewCampaignLogic(db *gorm.DB) *CampaignLogic {
	return &CampaignLogic{db: db}
}

// snapshotOf 把引擎快照转换为读模型行
func snapshotOf(s engine.Summary) model.Campaign {
	return model.Campaign{
		Id:                s.Id,
		Title:             s.Title,
		Description:       s.Description,
		ImageURL:          s.ImageURL,
		Category:          s.Category,
		Goal:              s.Goal,
		Raised:            s.Raised,
		Settled:           s.Settled,
		MinContribution:   s.MinContribution,
		MaxContribution:   s.MaxContribution,
		AssetKind:         string(s.Asset.Kind),
		AssetToken:        s.Asset.Token,
		StartTime:         s.CreatedAt,
		Deadline:          s.Deadline,
		Status:            model.CampaignStatus(s.Status),
		Refundable:        s.Refundable,
		Verified:          s.Verified,
		Promoted:          s.Promoted,
		PartialWithdrawal: s.PartialWithdrawal,
		WithdrawCeiling:   s.WithdrawCeiling,
		TotalWithdrawn:    s.TotalWithdrawn,
		CreatorAddress:    s.Creator,
		ContributorCount:  s.ContributorCount,
	}
}

// UpsertSnapshot 写入或刷新活动快照
func (l *CampaignLogic) UpsertSnapshot(s engine.Summary) error {
	row := snapshotOf(s)
	if err := l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("写入活动快照失败: %w", err)
	}
	return nil
}

// GetCampaigns 获取活动快照列表
func (l *CampaignLogic) GetCampaigns(status, category, creator string, page, pageSize int) ([]model.Campaign, int64, error) {
	query := l.db.Model(&model.Campaign{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if creator != "" {
		query = query.Where("creator_address = ?", creator)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计活动数量失败: %w", err)
	}

	var campaigns []model.Campaign
	offset := (page - 1) * pageSize
	if err := query.Order("id ASC").Offset(offset).Limit(pageSize).Find(&campaigns).Error; err != nil {
		return nil, 0, fmt.Errorf("获取活动列表失败: %w", err)
	}

	return campaigns, total, nil
}

// GetCampaign 获取活动快照详情
func (l *CampaignLogic) GetCampaign(id int64) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := l.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("活动不存在")
		}
		return nil, fmt.Errorf("获取活动详情失败: %w", err)
	}
	return &campaign, nil
}

// MarkExpired 把截止时间已过且仍为active的快照标记为expired，返回受影响行数
func (l *CampaignLogic) MarkExpired(now time.Time) (int64, error) {
	result := l.db.Model(&model.Campaign{}).
		Where("status = ? AND deadline < ?", model.CampaignStatusActive, now).
		Update("status", model.CampaignStatusExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("标记过期活动失败: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetAllCampaignStats 获取全平台统计信息
func (l *CampaignLogic) GetAllCampaignStats() (map[string]interface{}, error) {
	var totalCampaigns int64
	l.db.Model(&model.Campaign{}).Count(&totalCampaigns)

	var activeCampaigns int64
	l.db.Model(&model.Campaign{}).
		Where("status = ?", model.CampaignStatusActive).
		Count(&activeCampaigns)

	var fundedCampaigns int64
	l.db.Model(&model.Campaign{}).
		Where("status = ?", model.CampaignStatusFunded).
		Count(&fundedCampaigns)

	var expiredCampaigns int64
	l.db.Model(&model.Campaign{}).
		Where("status = ?", model.CampaignStatusExpired).
		Count(&expiredCampaigns)

	var cancelledCampaigns int64
	l.db.Model(&model.Campaign{}).
		Where("status = ?", model.CampaignStatusCancelled).
		Count(&cancelledCampaigns)

	var totalRaised int64
	l.db.Model(&model.Campaign{}).
		Select("COALESCE(SUM(raised), 0)").
		Scan(&totalRaised)

	var totalContributors int64
	l.db.Model(&model.ContributeRecord{}).
		Distinct("address").
		Count(&totalContributors)

	successRate := float64(0)
	if totalCampaigns > 0 {
		successRate = float64(fundedCampaigns) / float64(totalCampaigns) * 100
	}

	return map[string]interface{}{
		"totalCampaigns":     totalCampaigns,
		"activeCampaigns":    activeCampaigns,
		"fundedCampaigns":    fundedCampaigns,
		"expiredCampaigns":   expiredCampaigns,
		"cancelledCampaigns": cancelledCampaigns,
		"totalRaised":        totalRaised,
		"totalContributors":  totalContributors,
		"successRate":        fmt.Sprintf("%.2f%%", successRate),
	}, nil
}
