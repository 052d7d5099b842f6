package service

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"gorm.io/gorm"
)

// CreateMenuItemInput 创建菜品输入
type CreateMenuItemInput struct {
	RestaurantID uint
	CategoryID   uint
	Name         string
	Description  string
	Price        models.Money
	Available    *bool
}

// UpdateMenuItemInput 更新菜品输入（仅更新非 nil 字段）
type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Price       *models.Money
	Available   *bool
}

// MenuService 菜品与菜品图片服务
// 维护"同一菜品至多一张主图"的不变式。
type MenuService struct {
	menuItemRepo  repository.MenuItemRepository
	uploadService *UploadService
}

// NewMenuService 创建菜品服务
func NewMenuService(menuItemRepo repository.MenuItemRepository, uploadService *UploadService) *MenuService {
	return &MenuService{menuItemRepo: menuItemRepo, uploadService: uploadService}
}

// Create 创建菜品
func (s *MenuService) Create(input CreateMenuItemInput) (*models.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.RestaurantID == 0 || input.CategoryID == 0 {
		return nil, ErrMenuItemNotFound
	}
	available := true
	if input.Available != nil {
		available = *input.Available
	}
	now := time.Now()
	item := &models.MenuItem{
		RestaurantID: input.RestaurantID,
		CategoryID:   input.CategoryID,
		Name:         name,
		Description:  input.Description,
		Price:        input.Price,
		Available:    available,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.menuItemRepo.Create(item); err != nil {
		return nil, err
	}
	return s.menuItemRepo.GetByID(item.ID)
}

// Get 根据ID获取菜品
func (s *MenuService) Get(itemID uint) (*models.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

// List 分页查询菜品
func (s *MenuService) List(filter repository.MenuItemListFilter) ([]models.MenuItem, int64, error) {
	return s.menuItemRepo.List(filter)
}

// Update 部分更新菜品
func (s *MenuService) Update(itemID uint, input UpdateMenuItemInput) (*models.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Available != nil {
		updates["available"] = *input.Available
	}
	if len(updates) == 0 {
		return item, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.menuItemRepo.Updates(itemID, updates); err != nil {
		return nil, err
	}
	return s.menuItemRepo.GetByID(itemID)
}

// Delete 删除菜品
func (s *MenuService) Delete(itemID uint) error {
	item, err := s.menuItemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrMenuItemNotFound
	}
	return s.menuItemRepo.Delete(itemID)
}

// AddImage 通过 URL 添加菜品图片
// 新图为主图时，先在同一事务内取消该菜品所有旧主图标记。
func (s *MenuService) AddImage(itemID uint, imageURL string, isPrimary bool) (*models.MenuItemImage, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrImageNotFound
	}
	item, err := s.menuItemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}

	image := &models.MenuItemImage{
		ItemID:    itemID,
		ImageURL:  imageURL,
		IsPrimary: isPrimary,
		CreatedAt: time.Now(),
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		menuItemRepo := s.menuItemRepo.WithTx(tx)
		if isPrimary {
			if err := menuItemRepo.UnsetPrimaryByItem(itemID); err != nil {
				return err
			}
		}
		return menuItemRepo.CreateImage(image)
	})
	if err != nil {
		return nil, err
	}
	return image, nil
}

// UploadImage 上传单张菜品图片
// 类型或大小校验失败在任何写入之前返回错误。
func (s *MenuService) UploadImage(itemID uint, file *multipart.FileHeader, isPrimary bool) (*models.MenuItemImage, error) {
	item, err := s.menuItemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}

	imageURL, err := s.uploadService.SaveFile(file, "menu")
	if err != nil {
		return nil, err
	}
	return s.AddImage(itemID, imageURL, isPrimary)
}

// UploadImages 批量上传菜品图片
// 先整体校验再写入（全有或全无）；isPrimary 为 true 时只有批次第一张
// 落库为主图，这是固定的决胜规则，不由调用方控制。
func (s *MenuService) UploadImages(itemID uint, files []*multipart.FileHeader, isPrimary bool) ([]models.MenuItemImage, error) {
	item, err := s.menuItemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	if len(files) == 0 {
		return nil, ErrFileEmpty
	}

	for _, file := range files {
		if err := s.uploadService.ValidateFile(file); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	images := make([]models.MenuItemImage, 0, len(files))
	for i, file := range files {
		imageURL, err := s.uploadService.SaveFile(file, "menu")
		if err != nil {
			return nil, err
		}
		images = append(images, models.MenuItemImage{
			ItemID:    itemID,
			ImageURL:  imageURL,
			IsPrimary: isPrimary && i == 0,
			CreatedAt: now,
		})
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		menuItemRepo := s.menuItemRepo.WithTx(tx)
		if isPrimary {
			if err := menuItemRepo.UnsetPrimaryByItem(itemID); err != nil {
				return err
			}
		}
		return menuItemRepo.CreateImages(images)
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// ListImages 获取菜品图片列表
func (s *MenuService) ListImages(itemID uint) ([]models.MenuItemImage, error) {
	item, err := s.menuItemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return s.menuItemRepo.ListImages(itemID)
}

// DeleteImage 删除菜品图片
// 删除主图后不自动选举新的主图。
func (s *MenuService) DeleteImage(imageID uint) error {
	image, err := s.menuItemRepo.GetImageByID(imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}
	if err := s.menuItemRepo.DeleteImage(imageID); err != nil {
		return err
	}
	// 落盘文件清理失败不影响数据库一致性
	_ = s.uploadService.DeleteFile(image.ImageURL)
	return nil
}
