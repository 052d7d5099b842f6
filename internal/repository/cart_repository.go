package repository

import (
	"errors"

	"github.com/foodgo-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByID(id uint) (*models.CartItem, error)
	GetByTriple(userUID string, restaurantID, itemID uint) (*models.CartItem, error)
	ListByUser(userUID string, restaurantID uint) ([]models.CartItem, error)
	Create(item *models.CartItem) error
	Updates(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	ClearByUser(userUID string, restaurantID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByID 根据ID获取购物车项
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByTriple 按 (user, restaurant, item) 三元组查找购物车项
func (r *GormCartRepository) GetByTriple(userUID string, restaurantID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_uid = ? AND restaurant_id = ? AND item_id = ?", userUID, restaurantID, itemID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser 获取用户购物车项，restaurantID 为 0 时不限餐厅
func (r *GormCartRepository) ListByUser(userUID string, restaurantID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	query := r.db.Preload("MenuItem").Where("user_uid = ?", userUID)
	if restaurantID > 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if err := query.Order("updated_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create 创建购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// Updates 按字段更新购物车项
func (r *GormCartRepository) Updates(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 删除购物车项
func (r *GormCartRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

// ClearByUser 清空用户购物车，restaurantID 为 0 时清空全部；删除 0 行不是错误
func (r *GormCartRepository) ClearByUser(userUID string, restaurantID uint) (int64, error) {
	query := r.db.Where("user_uid = ?", userUID)
	if restaurantID > 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	result := query.Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
