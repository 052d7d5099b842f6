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

// CreateBannerInput 创建 Banner 输入
type CreateBannerInput struct {
	Title       string
	Description string
	ImageURL    string
}

// UpdateBannerInput 更新 Banner 输入（仅更新非 nil 字段）
type UpdateBannerInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	Status      *string
}

// BannerService 首页 Banner 服务
type BannerService struct {
	bannerRepo    repository.BannerRepository
	uploadService *UploadService
}

// NewBannerService 创建 Banner 服务
func NewBannerService(bannerRepo repository.BannerRepository, uploadService *UploadService) *BannerService {
	return &BannerService{bannerRepo: bannerRepo, uploadService: uploadService}
}

// Create 创建 Banner
func (s *BannerService) Create(input CreateBannerInput) (*models.Banner, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrBannerNotFound
	}

	now := time.Now()
	banner := &models.Banner{
		Title:       title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Status:      constants.BannerStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.bannerRepo.Create(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Upload 上传图片并创建 Banner
func (s *BannerService) Upload(title, description string, file *multipart.FileHeader) (*models.Banner, error) {
	url, err := s.uploadService.SaveFile(file, "banner")
	if err != nil {
		return nil, err
	}
	banner, err := s.Create(CreateBannerInput{Title: title, Description: description, ImageURL: url})
	if err != nil {
		if cleanupErr := s.uploadService.DeleteFile(url); cleanupErr != nil {
			logger.Warnw("banner_upload_cleanup_failed", "url", url, "error", cleanupErr)
		}
		return nil, err
	}
	return banner, nil
}

// Get 根据ID获取 Banner
func (s *BannerService) Get(bannerID uint) (*models.Banner, error) {
	banner, err := s.bannerRepo.GetByID(bannerID)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}
	return banner, nil
}

// List 分页查询 Banner
func (s *BannerService) List(status string, page, pageSize int) ([]models.Banner, int64, error) {
	return s.bannerRepo.List(status, page, pageSize)
}

// Update 部分更新 Banner
func (s *BannerService) Update(bannerID uint, input UpdateBannerInput) (*models.Banner, error) {
	banner, err := s.bannerRepo.GetByID(bannerID)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if len(updates) == 0 {
		return banner, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.bannerRepo.Updates(bannerID, updates); err != nil {
		return nil, err
	}
	return s.bannerRepo.GetByID(bannerID)
}

// Delete 删除 Banner 并清理图片文件
func (s *BannerService) Delete(bannerID uint) error {
	banner, err := s.bannerRepo.GetByID(bannerID)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrBannerNotFound
	}
	if err := s.bannerRepo.Delete(bannerID); err != nil {
		return err
	}
	if banner.ImageURL != "" {
		if err := s.uploadService.DeleteFile(banner.ImageURL); err != nil {
			logger.Warnw("banner_image_cleanup_failed", "banner_id", bannerID, "error", err)
		}
	}
	return nil
}
