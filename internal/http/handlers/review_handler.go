package handlers

import (
	"errors"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewCreateRequest 创建评价请求
type ReviewCreateRequest struct {
	UserUID      string `json:"user_uid" binding:"required"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	OrderID      uint   `json:"order_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}

// ReviewUpdateRequest 更新评价请求
type ReviewUpdateRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// CreateReview 创建评价
func (h *Handler) CreateReview(c *gin.Context) {
	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	review, err := h.ReviewService.Create(service.CreateReviewInput{
		UserUID:      req.UserUID,
		RestaurantID: req.RestaurantID,
		OrderID:      req.OrderID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReviewRating):
			respondError(c, response.CodeBadRequest, "rating must be between 1 and 5", nil)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		default:
			respondError(c, response.CodeInternal, "review create failed", err)
		}
		return
	}
	response.Success(c, review)
}

// GetReview 获取评价详情
func (h *Handler) GetReview(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	review, err := h.ReviewService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, response.CodeNotFound, "review not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "review fetch failed", err)
		return
	}
	response.Success(c, review)
}

// ListReviews 分页查询评价
func (h *Handler) ListReviews(c *gin.Context) {
	page, pageSize := queryPagination(c)

	reviews, total, err := h.ReviewService.List(repository.ReviewListFilter{
		Page:         page,
		PageSize:     pageSize,
		UserUID:      c.Query("user_uid"),
		RestaurantID: queryUint(c, "restaurant_id"),
		OrderID:      queryUint(c, "order_id"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "review list failed", err)
		return
	}
	response.SuccessWithPage(c, reviews, response.NewPagination(page, pageSize, total))
}

// UpdateReview 部分更新评价
func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	review, err := h.ReviewService.Update(id, service.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			respondError(c, response.CodeNotFound, "review not found", nil)
		case errors.Is(err, service.ErrInvalidReviewRating):
			respondError(c, response.CodeBadRequest, "rating must be between 1 and 5", nil)
		default:
			respondError(c, response.CodeInternal, "review update failed", err)
		}
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, response.CodeNotFound, "review not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "review delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "review deleted", nil)
}
