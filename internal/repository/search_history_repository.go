package repository

import (
	"github.com/foodgo-next/internal/models"

	"gorm.io/gorm"
)

// SearchHistoryRepository 搜索历史数据访问接口
type SearchHistoryRepository interface {
	Create(record *models.SearchHistory) error
	ListByUser(userUID string, limit int) ([]models.SearchHistory, error)
	ClearByUser(userUID string) error
}

// GormSearchHistoryRepository GORM 实现
type GormSearchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository 创建搜索历史仓库
func NewSearchHistoryRepository(db *gorm.DB) *GormSearchHistoryRepository {
	return &GormSearchHistoryRepository{db: db}
}

// Create 记录搜索关键词
func (r *GormSearchHistoryRepository) Create(record *models.SearchHistory) error {
	return r.db.Create(record).Error
}

// ListByUser 获取用户最近搜索记录
func (r *GormSearchHistoryRepository) ListByUser(userUID string, limit int) ([]models.SearchHistory, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.SearchHistory
	if err := r.db.Where("user_uid = ?", userUID).
		Order("id desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ClearByUser 清空用户搜索记录
func (r *GormSearchHistoryRepository) ClearByUser(userUID string) error {
	return r.db.Where("user_uid = ?", userUID).Delete(&models.SearchHistory{}).Error
}
