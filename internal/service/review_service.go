package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
)

// CreateReviewInput 创建评价输入
type CreateReviewInput struct {
	UserUID      string
	RestaurantID uint
	OrderID      uint
	Rating       int
	Comment      string
}

// UpdateReviewInput 更新评价输入（仅更新非 nil 字段）
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, orderRepo: orderRepo}
}

// Create 创建评价（评分限定 1-5，订单必须存在）
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	userUID := strings.TrimSpace(input.UserUID)
	if userUID == "" || input.RestaurantID == 0 || input.OrderID == 0 {
		return nil, ErrReviewNotFound
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidReviewRating
	}
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	review := &models.Review{
		UserUID:      userUID,
		RestaurantID: input.RestaurantID,
		OrderID:      input.OrderID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    time.Now(),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Get 根据ID获取评价
func (s *ReviewService) Get(reviewID uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// List 分页查询评价
func (s *ReviewService) List(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviewRepo.List(filter)
}

// Update 部分更新评价
func (s *ReviewService) Update(reviewID uint, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	updates := map[string]interface{}{}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, ErrInvalidReviewRating
		}
		updates["rating"] = *input.Rating
	}
	if input.Comment != nil {
		updates["comment"] = *input.Comment
	}
	if len(updates) == 0 {
		return review, nil
	}

	if err := s.reviewRepo.Updates(reviewID, updates); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(reviewID)
}

// Delete 删除评价
func (s *ReviewService) Delete(reviewID uint) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Delete(reviewID)
}
