package logic

import (
	"fmt"

	"github.com/blues/cfe/internal/model"
	"gorm.io/gorm"
)

// ContributeRecordLogic 贡献记录业务逻辑
type ContributeRecordLogic struct {
	db *gorm.DB
}

// NewContributeRecordLogic 创建贡献记录业务逻辑
func NewContributeRecordLogic(db *gorm.DB) *ContributeRecordLogic {
	return &ContributeRecordLogic{db: db}
}

// CreateContributeRecord 创建贡献记录
func (l *ContributeRecordLogic) CreateContributeRecord(record *model.ContributeRecord) error {
	if err := l.db.Create(record).Error; err != nil {
		return fmt.Errorf("创建贡献记录失败: %w", err)
	}
	return nil
}

// GetRecordsByCampaign 获取活动的贡献记录
func (l *ContributeRecordLogic) GetRecordsByCampaign(campaignId int64, page, pageSize int) ([]model.ContributeRecord, int64, error) {
	query := l.db.Model(&model.ContributeRecord{}).Where("campaign_id = ?", campaignId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计贡献记录失败: %w", err)
	}

	var records []model.ContributeRecord
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("获取贡献记录失败: %w", err)
	}

	return records, total, nil
}

// GetRecordsByAddress 获取地址的贡献记录
func (l *ContributeRecordLogic) GetRecordsByAddress(address string, page, pageSize int) ([]model.ContributeRecord, int64, error) {
	query := l.db.Model(&model.ContributeRecord{}).Where("address = ?", address)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计贡献记录失败: %w", err)
	}

	var records []model.ContributeRecord
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("获取贡献记录失败: %w", err)
	}

	return records, total, nil
}
