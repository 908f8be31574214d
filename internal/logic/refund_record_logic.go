package logic

import (
	"fmt"

	"github.com/blues/cfe/internal/model"
	"gorm.io/gorm"
)

// RefundRecordLogic 退款记录业务逻辑
type RefundRecordLogic struct {
	db *gorm.DB
}

// NewRefundRecordLogic 创建退款记录业务逻辑
func NewRefundRecordLogic(db *gorm.DB) *RefundRecordLogic {
	return &RefundRecordLogic{db: db}
}

// CreateRefundRecord 创建退款记录
func (l *RefundRecordLogic) CreateRefundRecord(record *model.RefundRecord) error {
	if err := l.db.Create(record).Error; err != nil {
		return fmt.Errorf("创建退款记录失败: %w", err)
	}
	return nil
}

// GetRecordsByCampaign 获取活动的退款记录
func (l *RefundRecordLogic) GetRecordsByCampaign(campaignId int64, page, pageSize int) ([]model.RefundRecord, int64, error) {
	query := l.db.Model(&model.RefundRecord{}).Where("campaign_id = ?", campaignId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计退款记录失败: %w", err)
	}

	var records []model.RefundRecord
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("获取退款记录失败: %w", err)
	}

	return records, total, nil
}
