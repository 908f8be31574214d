package logic

import (
	"errors"
	"fmt"

	"github.com/blues/cfe/internal/model"
	"gorm.io/gorm"
)

// SettlementRecordLogic 结算记录业务逻辑
type SettlementRecordLogic struct {
	db *gorm.DB
}

// NewSettlementRecordLogic 创建结算记录业务逻辑
func NewSettlementRecordLogic(db *gorm.DB) *SettlementRecordLogic {
	return &SettlementRecordLogic{db: db}
}

// CreateSettlementRecord 创建结算记录
func (l *SettlementRecordLogic) CreateSettlementRecord(record *model.SettlementRecord) error {
	if err := l.db.Create(record).Error; err != nil {
		return fmt.Errorf("创建结算记录失败: %w", err)
	}
	return nil
}

// GetByCampaign 获取活动的结算记录。达标结算每个活动至多一条。
func (l *SettlementRecordLogic) GetByCampaign(campaignId int64) (*model.SettlementRecord, error) {
	var record model.SettlementRecord
	if err := l.db.Where("campaign_id = ?", campaignId).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("结算记录不存在")
		}
		return nil, fmt.Errorf("获取结算记录失败: %w", err)
	}
	return &record, nil
}
