package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// VoucherCreateRequest 创建优惠券请求
type VoucherCreateRequest struct {
	Code           string       `json:"code" binding:"required"`
	Title          string       `json:"title"`
	DiscountType   string       `json:"discount_type"`
	DiscountValue  models.Money `json:"discount_value"`
	MinOrder       models.Money `json:"min_order"`
	MaxDiscount    models.Money `json:"max_discount"`
	StartDate      *time.Time   `json:"start_date"`
	EndDate        *time.Time   `json:"end_date"`
	UsageLimit     int          `json:"usage_limit"`
	RestaurantID   *uint        `json:"restaurant_id"`
	CreatedByAdmin bool         `json:"created_by_admin"`
}

// VoucherUpdateRequest 更新优惠券请求
type VoucherUpdateRequest struct {
	Title         *string       `json:"title"`
	DiscountType  *string       `json:"discount_type"`
	DiscountValue *models.Money `json:"discount_value"`
	MinOrder      *models.Money `json:"min_order"`
	MaxDiscount   *models.Money `json:"max_discount"`
	StartDate     *time.Time    `json:"start_date"`
	EndDate       *time.Time    `json:"end_date"`
	UsageLimit    *int          `json:"usage_limit"`
	Status        *string       `json:"status"`
}

// CreateVoucher 创建优惠券
func (h *Handler) CreateVoucher(c *gin.Context) {
	var req VoucherCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	voucher, err := h.VoucherService.Create(service.CreateVoucherInput{
		Code:           req.Code,
		Title:          req.Title,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrder:       req.MinOrder,
		MaxDiscount:    req.MaxDiscount,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		UsageLimit:     req.UsageLimit,
		RestaurantID:   req.RestaurantID,
		CreatedByAdmin: req.CreatedByAdmin,
	})
	if err != nil {
		if errors.Is(err, service.ErrVoucherCodeTaken) {
			respondError(c, response.CodeConflict, "voucher code already taken", nil)
			return
		}
		respondError(c, response.CodeInternal, "voucher create failed", err)
		return
	}
	response.Success(c, voucher)
}

// GetVoucher 获取优惠券详情
func (h *Handler) GetVoucher(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	voucher, err := h.VoucherService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrVoucherNotFound) {
			respondError(c, response.CodeNotFound, "voucher not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "voucher fetch failed", err)
		return
	}
	response.Success(c, voucher)
}

// GetVoucherByCode 根据优惠码获取优惠券
func (h *Handler) GetVoucherByCode(c *gin.Context) {
	code := c.Param("code")
	voucher, err := h.VoucherService.GetByCode(code)
	if err != nil {
		if errors.Is(err, service.ErrVoucherNotFound) {
			respondError(c, response.CodeNotFound, "voucher not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "voucher fetch failed", err)
		return
	}
	response.Success(c, voucher)
}

// ListVouchers 分页查询优惠券
func (h *Handler) ListVouchers(c *gin.Context) {
	page, pageSize := queryPagination(c)
	adminOnly, _ := strconv.ParseBool(c.DefaultQuery("admin_only", "false"))

	vouchers, total, err := h.VoucherService.List(repository.VoucherListFilter{
		Page:         page,
		PageSize:     pageSize,
		Code:         c.Query("code"),
		RestaurantID: queryUint(c, "restaurant_id"),
		Status:       c.Query("status"),
		AdminOnly:    adminOnly,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "voucher list failed", err)
		return
	}
	response.SuccessWithPage(c, vouchers, response.NewPagination(page, pageSize, total))
}

// UpdateVoucher 部分更新优惠券
func (h *Handler) UpdateVoucher(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req VoucherUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	voucher, err := h.VoucherService.Update(id, service.UpdateVoucherInput{
		Title:         req.Title,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinOrder:      req.MinOrder,
		MaxDiscount:   req.MaxDiscount,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		UsageLimit:    req.UsageLimit,
		Status:        req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrVoucherNotFound) {
			respondError(c, response.CodeNotFound, "voucher not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "voucher update failed", err)
		return
	}
	response.Success(c, voucher)
}

// DeleteVoucher 删除优惠券
func (h *Handler) DeleteVoucher(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.VoucherService.Delete(id); err != nil {
		if errors.Is(err, service.ErrVoucherNotFound) {
			respondError(c, response.CodeNotFound, "voucher not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "voucher delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "voucher deleted", nil)
}
