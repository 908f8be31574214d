package logic

import (
	"fmt"

	"github.com/blues/cfe/internal/model"
	"gorm.io/gorm"
)

// WithdrawalRecordLogic 提取记录业务逻辑
type WithdrawalRecordLogic struct {
	db *gorm.DB
}

// NewWithdrawalRecordLogic 创建提取记录业务逻辑
func NewWithdrawalRecordLogic(db *gorm.DB) *WithdrawalRecordLogic {
	return &WithdrawalRecordLogic{db: db}
}

// CreateWithdrawalRecord 创建提取记录
func (l *WithdrawalRecordLogic) CreateWithdrawalRecord(record *model.WithdrawalRecord) error {
	if err := l.db.Create(record).Error; err != nil {
		return fmt.Errorf("创建提取记录失败: %w", err)
	}
	return nil
}

// GetRecordsByCampaign 获取活动的提取记录
func (l *WithdrawalRecordLogic) GetRecordsByCampaign(campaignId int64, page, pageSize int) ([]model.WithdrawalRecord, int64, error) {
	query := l.db.Model(&model.WithdrawalRecord{}).Where("campaign_id = ?", campaignId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计提取记录失败: %w", err)
	}

	var records []model.WithdrawalRecord
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("获取提取记录失败: %w", err)
	}

	return records, total, nil
}
