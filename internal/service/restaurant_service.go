package service

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/logger"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
)

// CreateRestaurantInput 创建餐厅输入
type CreateRestaurantInput struct {
	OwnerUID  string
	Name      string
	Address   string
	Phone     string
	OpenTime  string
	CloseTime string
	ImageURL  string
}

// UpdateRestaurantInput 更新餐厅输入（仅更新非 nil 字段）
type UpdateRestaurantInput struct {
	Name      *string
	Address   *string
	Phone     *string
	OpenTime  *string
	CloseTime *string
	Status    *string
	ImageURL  *string
}

// RestaurantService 餐厅服务
type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
	uploadService  *UploadService
}

// NewRestaurantService 创建餐厅服务
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, uploadService *UploadService) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo, uploadService: uploadService}
}

// Create 创建餐厅
func (s *RestaurantService) Create(input CreateRestaurantInput) (*models.Restaurant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrRestaurantNotFound
	}

	now := time.Now()
	restaurant := &models.Restaurant{
		OwnerUID:  strings.TrimSpace(input.OwnerUID),
		Name:      name,
		Address:   input.Address,
		Phone:     input.Phone,
		OpenTime:  input.OpenTime,
		CloseTime: input.CloseTime,
		Status:    constants.RestaurantStatusOpen,
		ImageURL:  input.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Get 根据ID获取餐厅
func (s *RestaurantService) Get(restaurantID uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}
	return restaurant, nil
}

// List 分页查询餐厅
func (s *RestaurantService) List(filter repository.RestaurantListFilter) ([]models.Restaurant, int64, error) {
	return s.restaurantRepo.List(filter)
}

// Update 部分更新餐厅
func (s *RestaurantService) Update(restaurantID uint, input UpdateRestaurantInput) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.OpenTime != nil {
		updates["open_time"] = *input.OpenTime
	}
	if input.CloseTime != nil {
		updates["close_time"] = *input.CloseTime
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if len(updates) == 0 {
		return restaurant, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.restaurantRepo.Updates(restaurantID, updates); err != nil {
		return nil, err
	}
	return s.restaurantRepo.GetByID(restaurantID)
}

// UploadImage 上传餐厅门面图片并替换旧图
func (s *RestaurantService) UploadImage(restaurantID uint, file *multipart.FileHeader) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	url, err := s.uploadService.SaveFile(file, "restaurant")
	if err != nil {
		return nil, err
	}

	oldURL := restaurant.ImageURL
	if err := s.restaurantRepo.Updates(restaurantID, map[string]interface{}{
		"image_url":  url,
		"updated_at": time.Now(),
	}); err != nil {
		return nil, err
	}
	if oldURL != "" {
		if err := s.uploadService.DeleteFile(oldURL); err != nil {
			logger.Warnw("restaurant_old_image_cleanup_failed", "restaurant_id", restaurantID, "error", err)
		}
	}
	return s.restaurantRepo.GetByID(restaurantID)
}

// RemoveImage 移除餐厅门面图片并清理落盘文件
func (s *RestaurantService) RemoveImage(restaurantID uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}
	if restaurant.ImageURL == "" {
		return restaurant, nil
	}

	oldURL := restaurant.ImageURL
	if err := s.restaurantRepo.Updates(restaurantID, map[string]interface{}{
		"image_url":  "",
		"updated_at": time.Now(),
	}); err != nil {
		return nil, err
	}
	if err := s.uploadService.DeleteFile(oldURL); err != nil {
		logger.Warnw("restaurant_old_image_cleanup_failed", "restaurant_id", restaurantID, "error", err)
	}
	return s.restaurantRepo.GetByID(restaurantID)
}

// Delete 删除餐厅
func (s *RestaurantService) Delete(restaurantID uint) error {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return ErrRestaurantNotFound
	}
	if err := s.restaurantRepo.Delete(restaurantID); err != nil {
		return err
	}
	if restaurant.ImageURL != "" {
		if err := s.uploadService.DeleteFile(restaurant.ImageURL); err != nil {
			logger.Warnw("restaurant_image_cleanup_failed", "restaurant_id", restaurantID, "error", err)
		}
	}
	return nil
}
