package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
)

// CreateCategoryInput 创建分类输入
type CreateCategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

// UpdateCategoryInput 更新分类输入（仅更新非 nil 字段）
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ImageURL    *string
}

// CategoryService 菜品分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create 创建分类
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	category := &models.Category{
		Name:        name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get 根据ID获取分类
func (s *CategoryService) Get(categoryID uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// List 分页查询分类
func (s *CategoryService) List(page, pageSize int) ([]models.Category, int64, error) {
	return s.categoryRepo.List(page, pageSize)
}

// Update 部分更新分类
func (s *CategoryService) Update(categoryID uint, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if len(updates) == 0 {
		return category, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.categoryRepo.Updates(categoryID, updates); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(categoryID)
}

// Delete 删除分类
func (s *CategoryService) Delete(categoryID uint) error {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(categoryID)
}
