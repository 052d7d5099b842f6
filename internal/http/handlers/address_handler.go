package handlers

import (
	"errors"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressCreateRequest 创建地址请求
type AddressCreateRequest struct {
	UserUID   string   `json:"user_uid" binding:"required"`
	Label     string   `json:"label"`
	Receiver  string   `json:"receiver"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsDefault bool     `json:"is_default"`
}

// AddressUpdateRequest 更新地址请求
type AddressUpdateRequest struct {
	Label     *string  `json:"label"`
	Receiver  *string  `json:"receiver"`
	Phone     *string  `json:"phone"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsDefault *bool    `json:"is_default"`
}

// CreateAddress 创建收货地址
func (h *Handler) CreateAddress(c *gin.Context) {
	var req AddressCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	address, err := h.AddressService.Create(service.CreateAddressInput{
		UserUID:   req.UserUID,
		Label:     req.Label,
		Receiver:  req.Receiver,
		Phone:     req.Phone,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressDuplicate):
			respondError(c, response.CodeConflict, "address already exists", nil)
		default:
			respondError(c, response.CodeInternal, "address create failed", err)
		}
		return
	}
	response.Success(c, address)
}

// GetAddress 获取地址详情
func (h *Handler) GetAddress(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	address, err := h.AddressService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			respondError(c, response.CodeNotFound, "address not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "address fetch failed", err)
		return
	}
	response.Success(c, address)
}

// ListUserAddresses 获取用户地址列表
func (h *Handler) ListUserAddresses(c *gin.Context) {
	uid := c.Param("uid")
	page, pageSize := queryPagination(c)

	addresses, err := h.AddressService.ListByUser(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "address list failed", err)
		return
	}
	response.Success(c, addresses)
}

// GetUserDefaultAddress 获取用户默认地址
func (h *Handler) GetUserDefaultAddress(c *gin.Context) {
	uid := c.Param("uid")
	address, err := h.AddressService.GetDefault(uid)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			respondError(c, response.CodeNotFound, "default address not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "address fetch failed", err)
		return
	}
	response.Success(c, address)
}

// UpdateAddress 更新收货地址
func (h *Handler) UpdateAddress(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req AddressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	address, err := h.AddressService.Update(id, service.UpdateAddressInput{
		Label:     req.Label,
		Receiver:  req.Receiver,
		Phone:     req.Phone,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressNotFound):
			respondError(c, response.CodeNotFound, "address not found", nil)
		case errors.Is(err, service.ErrAddressDuplicate):
			respondError(c, response.CodeConflict, "address already exists", nil)
		default:
			respondError(c, response.CodeInternal, "address update failed", err)
		}
		return
	}
	response.Success(c, address)
}

// DeleteAddress 删除收货地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.AddressService.Delete(id); err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			respondError(c, response.CodeNotFound, "address not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "address delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "address deleted", nil)
}
