package handlers

import (
	"errors"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RestaurantCreateRequest 创建餐厅请求
type RestaurantCreateRequest struct {
	OwnerUID  string `json:"owner_uid"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	ImageURL  string `json:"image_url"`
}

// RestaurantUpdateRequest 更新餐厅请求
type RestaurantUpdateRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	Status    *string `json:"status"`
	ImageURL  *string `json:"image_url"`
}

// CreateRestaurant 创建餐厅
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req RestaurantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	restaurant, err := h.RestaurantService.Create(service.CreateRestaurantInput{
		OwnerUID:  req.OwnerUID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "restaurant create failed", err)
		return
	}
	response.Success(c, restaurant)
}

// GetRestaurant 获取餐厅详情
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.RestaurantService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "restaurant not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "restaurant fetch failed", err)
		return
	}
	response.Success(c, restaurant)
}

// ListRestaurants 分页查询餐厅（记录搜索历史）
func (h *Handler) ListRestaurants(c *gin.Context) {
	page, pageSize := queryPagination(c)
	search := c.Query("search")

	restaurants, total, err := h.RestaurantService.List(repository.RestaurantListFilter{
		Page:     page,
		PageSize: pageSize,
		OwnerUID: c.Query("owner_uid"),
		Status:   c.Query("status"),
		Search:   search,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "restaurant list failed", err)
		return
	}

	if search != "" {
		if uid := c.Query("user_uid"); uid != "" {
			if err := h.SearchHistoryService.Record(uid, search); err != nil {
				requestLog(c).Warnw("search_history_record_failed", "user_uid", uid, "error", err)
			}
		}
	}

	response.SuccessWithPage(c, restaurants, response.NewPagination(page, pageSize, total))
}

// UpdateRestaurant 部分更新餐厅
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req RestaurantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	restaurant, err := h.RestaurantService.Update(id, service.UpdateRestaurantInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Status:    req.Status,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "restaurant not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "restaurant update failed", err)
		return
	}
	response.Success(c, restaurant)
}

// UploadRestaurantImage 上传餐厅门面图片
func (h *Handler) UploadRestaurantImage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "missing file", err)
		return
	}

	restaurant, err := h.RestaurantService.UploadImage(id, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			respondError(c, response.CodeNotFound, "restaurant not found", nil)
		case errors.Is(err, service.ErrFileEmpty),
			errors.Is(err, service.ErrFileTooLarge),
			errors.Is(err, service.ErrFileTypeNotAllowed):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "restaurant image upload failed", err)
		}
		return
	}
	response.Success(c, restaurant)
}

// DeleteRestaurantImage 移除餐厅门面图片
func (h *Handler) DeleteRestaurantImage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.RestaurantService.RemoveImage(id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "restaurant not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "restaurant image delete failed", err)
		return
	}
	response.Success(c, restaurant)
}

// DeleteRestaurant 删除餐厅
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.RestaurantService.Delete(id); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "restaurant not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "restaurant delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "restaurant deleted", nil)
}
