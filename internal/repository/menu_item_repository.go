package repository

import (
	"errors"

	"github.com/foodgo-next/internal/models"

	"gorm.io/gorm"
)

// MenuItemRepository 菜品数据访问接口
type MenuItemRepository interface {
	GetByID(id uint) (*models.MenuItem, error)
	List(filter MenuItemListFilter) ([]models.MenuItem, int64, error)
	Create(item *models.MenuItem) error
	Updates(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	GetImageByID(imageID uint) (*models.MenuItemImage, error)
	ListImages(itemID uint) ([]models.MenuItemImage, error)
	CreateImage(image *models.MenuItemImage) error
	CreateImages(images []models.MenuItemImage) error
	UnsetPrimaryByItem(itemID uint) error
	DeleteImage(imageID uint) error
	WithTx(tx *gorm.DB) *GormMenuItemRepository
}

// GormMenuItemRepository GORM 实现
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository 创建菜品仓库
func NewMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormMenuItemRepository) WithTx(tx *gorm.DB) *GormMenuItemRepository {
	if tx == nil {
		return r
	}
	return &GormMenuItemRepository{db: tx}
}

// GetByID 根据ID获取菜品（含图片）
func (r *GormMenuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Preload("Images").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// List 分页查询菜品
func (r *GormMenuItemRepository) List(filter MenuItemListFilter) ([]models.MenuItem, int64, error) {
	var items []models.MenuItem
	query := r.db.Model(&models.MenuItem{})

	if filter.RestaurantID > 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.OnlyAvailable {
		query = query.Where("available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Images").Order("id asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Create 创建菜品
func (r *GormMenuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Updates 按字段更新菜品
func (r *GormMenuItemRepository) Updates(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 删除菜品
func (r *GormMenuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}

// GetImageByID 根据ID获取菜品图片
func (r *GormMenuItemRepository) GetImageByID(imageID uint) (*models.MenuItemImage, error) {
	var image models.MenuItemImage
	if err := r.db.First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// ListImages 获取菜品图片列表
func (r *GormMenuItemRepository) ListImages(itemID uint) ([]models.MenuItemImage, error) {
	var images []models.MenuItemImage
	if err := r.db.Where("item_id = ?", itemID).Order("id asc").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// CreateImage 创建菜品图片
func (r *GormMenuItemRepository) CreateImage(image *models.MenuItemImage) error {
	return r.db.Create(image).Error
}

// CreateImages 批量创建菜品图片
func (r *GormMenuItemRepository) CreateImages(images []models.MenuItemImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Create(&images).Error
}

// UnsetPrimaryByItem 取消菜品所有图片的主图标记
// 单条 UPDATE 语句执行，保证事务内不会出现两张主图。
func (r *GormMenuItemRepository) UnsetPrimaryByItem(itemID uint) error {
	return r.db.Model(&models.MenuItemImage{}).
		Where("item_id = ? AND is_primary = ?", itemID, true).
		UpdateColumn("is_primary", false).Error
}

// DeleteImage 删除菜品图片
func (r *GormMenuItemRepository) DeleteImage(imageID uint) error {
	return r.db.Delete(&models.MenuItemImage{}, imageID).Error
}
