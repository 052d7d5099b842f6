package handlers

import (
	"errors"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartAddRequest 加入购物车请求
type CartAddRequest struct {
	UserUID      string `json:"user_uid" binding:"required"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	ItemID       uint   `json:"item_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	Note         string `json:"note"`
}

// CartUpdateRequest 更新购物车项请求
type CartUpdateRequest struct {
	Quantity *int    `json:"quantity"`
	Note     *string `json:"note"`
}

// AddCartItem 加入购物车（同一三元组合并数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.CartService.AddItem(service.AddCartItemInput{
		UserUID:      req.UserUID,
		RestaurantID: req.RestaurantID,
		ItemID:       req.ItemID,
		Quantity:     req.Quantity,
		Note:         req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCartItem):
			respondError(c, response.CodeBadRequest, "invalid cart item", nil)
		case errors.Is(err, service.ErrMenuItemNotFound):
			respondError(c, response.CodeNotFound, "menu item not found", nil)
		default:
			respondError(c, response.CodeInternal, "cart add failed", err)
		}
		return
	}
	response.Success(c, item)
}

// ListUserCart 获取用户购物车（可按餐厅过滤）
func (h *Handler) ListUserCart(c *gin.Context) {
	uid := c.Param("uid")
	restaurantID := queryUint(c, "restaurant_id")

	items, err := h.CartService.ListByUser(uid, restaurantID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart list failed", err)
		return
	}
	response.Success(c, items)
}

// UpdateCartItem 更新购物车项
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.CartService.UpdateItem(id, service.UpdateCartItemInput{
		Quantity: req.Quantity,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			respondError(c, response.CodeNotFound, "cart item not found", nil)
		case errors.Is(err, service.ErrInvalidCartItem):
			respondError(c, response.CodeBadRequest, "invalid cart item", nil)
		default:
			respondError(c, response.CodeInternal, "cart update failed", err)
		}
		return
	}
	response.Success(c, item)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(id); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			respondError(c, response.CodeNotFound, "cart item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "cart remove failed", err)
		return
	}
	response.SuccessWithMsg(c, "cart item removed", nil)
}

// ClearUserCart 清空用户购物车（可按餐厅过滤）
func (h *Handler) ClearUserCart(c *gin.Context) {
	uid := c.Param("uid")
	restaurantID := queryUint(c, "restaurant_id")

	removed, err := h.CartService.ClearByUser(uid, restaurantID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart clear failed", err)
		return
	}
	response.Success(c, gin.H{"removed": removed})
}
