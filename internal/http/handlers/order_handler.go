package handlers

import (
	"errors"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderLineRequest 下单时的订单项
type OrderLineRequest struct {
	ItemID   uint         `json:"item_id" binding:"required"`
	Quantity int          `json:"quantity" binding:"required"`
	Price    models.Money `json:"price"`
	Note     string       `json:"note"`
}

// OrderCreateRequest 创建订单请求
type OrderCreateRequest struct {
	UserUID        string             `json:"user_uid" binding:"required"`
	RestaurantID   uint               `json:"restaurant_id" binding:"required"`
	TotalPrice     models.Money       `json:"total_price"`
	AddressID      *uint              `json:"address_id"`
	AdminVoucherID *uint              `json:"admin_voucher_id"`
	ShopVoucherID  *uint              `json:"shop_voucher_id"`
	PaymentMethod  string             `json:"payment_method"`
	Note           string             `json:"note"`
	Items          []OrderLineRequest `json:"items"`
}

// OrderUpdateRequest 更新订单请求
type OrderUpdateRequest struct {
	Status        *string       `json:"status"`
	TotalPrice    *models.Money `json:"total_price"`
	AddressID     *uint         `json:"address_id"`
	ShipperUID    *string       `json:"shipper_uid"`
	Note          *string       `json:"note"`
	PaymentMethod *string       `json:"payment_method"`
}

// OrderItemCreateRequest 创建订单项请求
type OrderItemCreateRequest struct {
	OrderID  uint         `json:"order_id" binding:"required"`
	ItemID   uint         `json:"item_id" binding:"required"`
	Quantity int          `json:"quantity" binding:"required"`
	Price    models.Money `json:"price"`
	Note     string       `json:"note"`
}

// OrderItemUpdateRequest 更新订单项请求
type OrderItemUpdateRequest struct {
	Quantity *int          `json:"quantity"`
	Price    *models.Money `json:"price"`
	Note     *string       `json:"note"`
}

// CreateOrder 创建订单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	lines := make([]service.OrderLineInput, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, service.OrderLineInput{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
			Note:     line.Note,
		})
	}

	order, err := h.OrderService.Create(service.CreateOrderInput{
		UserUID:        req.UserUID,
		RestaurantID:   req.RestaurantID,
		TotalPrice:     req.TotalPrice,
		AddressID:      req.AddressID,
		AdminVoucherID: req.AdminVoucherID,
		ShopVoucherID:  req.ShopVoucherID,
		PaymentMethod:  req.PaymentMethod,
		Note:           req.Note,
		Items:          lines,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			respondError(c, response.CodeBadRequest, "invalid order", nil)
			return
		}
		respondError(c, response.CodeInternal, "order create failed", err)
		return
	}
	response.Success(c, order)
}

// GetOrder 获取订单详情（含订单项）
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}
	response.Success(c, order)
}

// ListOrders 分页查询订单（可按用户/餐厅/配送员/状态过滤）
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := queryPagination(c)

	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:         page,
		PageSize:     pageSize,
		UserUID:      c.Query("user_uid"),
		RestaurantID: queryUint(c, "restaurant_id"),
		ShipperUID:   c.Query("shipper_uid"),
		Status:       c.Query("status"),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderStatus) {
			respondError(c, response.CodeBadRequest, "invalid order status", nil)
			return
		}
		respondError(c, response.CodeInternal, "order list failed", err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// UpdateOrder 部分更新订单
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.Update(id, service.UpdateOrderInput{
		Status:        req.Status,
		TotalPrice:    req.TotalPrice,
		AddressID:     req.AddressID,
		ShipperUID:    req.ShipperUID,
		Note:          req.Note,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondError(c, response.CodeBadRequest, "invalid order status", nil)
		default:
			respondError(c, response.CodeInternal, "order update failed", err)
		}
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.OrderService.Delete(id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "order delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "order deleted", nil)
}

// CreateOrderItem 追加订单项
func (h *Handler) CreateOrderItem(c *gin.Context) {
	var req OrderItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.OrderService.CreateItem(service.CreateOrderItemInput{
		OrderID:  req.OrderID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Price:    req.Price,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrInvalidOrder):
			respondError(c, response.CodeBadRequest, "invalid order item", nil)
		default:
			respondError(c, response.CodeInternal, "order item create failed", err)
		}
		return
	}
	response.Success(c, item)
}

// GetOrderItem 获取订单项详情
func (h *Handler) GetOrderItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	item, err := h.OrderService.GetItem(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderItemNotFound) {
			respondError(c, response.CodeNotFound, "order item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "order item fetch failed", err)
		return
	}
	response.Success(c, item)
}

// ListOrderItems 获取订单的订单项
func (h *Handler) ListOrderItems(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	items, err := h.OrderService.ListItems(id)
	if err != nil {
		respondError(c, response.CodeInternal, "order item list failed", err)
		return
	}
	response.Success(c, items)
}

// UpdateOrderItem 部分更新订单项
func (h *Handler) UpdateOrderItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req OrderItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.OrderService.UpdateItem(id, service.UpdateOrderItemInput{
		Quantity: req.Quantity,
		Price:    req.Price,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderItemNotFound):
			respondError(c, response.CodeNotFound, "order item not found", nil)
		case errors.Is(err, service.ErrInvalidOrder):
			respondError(c, response.CodeBadRequest, "invalid order item", nil)
		default:
			respondError(c, response.CodeInternal, "order item update failed", err)
		}
		return
	}
	response.Success(c, item)
}

// DeleteOrderItem 删除订单项
func (h *Handler) DeleteOrderItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.OrderService.DeleteItem(id); err != nil {
		if errors.Is(err, service.ErrOrderItemNotFound) {
			respondError(c, response.CodeNotFound, "order item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "order item delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "order item deleted", nil)
}
