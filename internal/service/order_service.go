package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/logger"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"gorm.io/gorm"
)

// CreateOrderInput 创建订单输入
// 金额由调用方给定，下单后不再根据订单项重算。
type CreateOrderInput struct {
	UserUID        string
	RestaurantID   uint
	TotalPrice     models.Money
	AddressID      *uint
	AdminVoucherID *uint
	ShopVoucherID  *uint
	PaymentMethod  string
	Note           string
	Items          []OrderLineInput
}

// OrderLineInput 下单时的订单项
type OrderLineInput struct {
	ItemID   uint
	Quantity int
	Price    models.Money
	Note     string
}

// UpdateOrderInput 更新订单输入（仅更新非 nil 字段）
type UpdateOrderInput struct {
	Status        *string
	TotalPrice    *models.Money
	AddressID     *uint
	ShipperUID    *string
	Note          *string
	PaymentMethod *string
}

// CreateOrderItemInput 创建订单项输入
type CreateOrderItemInput struct {
	OrderID  uint
	ItemID   uint
	Quantity int
	Price    models.Money
	Note     string
}

// UpdateOrderItemInput 更新订单项输入（仅更新非 nil 字段）
type UpdateOrderItemInput struct {
	Quantity *int
	Price    *models.Money
	Note     *string
}

// OrderService 订单服务
// 下单与优惠券计数在同一事务内完成。
type OrderService struct {
	orderRepo   repository.OrderRepository
	voucherRepo repository.VoucherRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, voucherRepo repository.VoucherRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, voucherRepo: voucherRepo}
}

// Create 创建订单
// 状态固定初始化为 pending；引用的平台券与店铺券各自原子自增 used_count，
// 券ID无法解析时静默跳过，不影响下单。
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	userUID := strings.TrimSpace(input.UserUID)
	if userUID == "" || input.RestaurantID == 0 {
		return nil, ErrInvalidOrder
	}
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = constants.PaymentMethodCOD
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.ItemID == 0 || line.Quantity <= 0 {
			return nil, ErrInvalidOrder
		}
		items = append(items, models.OrderItem{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
			Note:     line.Note,
		})
	}

	now := time.Now()
	order := &models.Order{
		UserUID:        userUID,
		RestaurantID:   input.RestaurantID,
		TotalPrice:     input.TotalPrice,
		Status:         constants.OrderStatusPending,
		AddressID:      input.AddressID,
		AdminVoucherID: input.AdminVoucherID,
		ShopVoucherID:  input.ShopVoucherID,
		Note:           input.Note,
		PaymentMethod:  paymentMethod,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		voucherRepo := s.voucherRepo.WithTx(tx)

		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		order.Items = items
		if err := s.countVoucherUsage(voucherRepo, input.AdminVoucherID, order.ID); err != nil {
			return err
		}
		return s.countVoucherUsage(voucherRepo, input.ShopVoucherID, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// countVoucherUsage 原子自增券的使用次数，券不存在时静默跳过
func (s *OrderService) countVoucherUsage(voucherRepo *repository.GormVoucherRepository, voucherID *uint, orderID uint) error {
	if voucherID == nil || *voucherID == 0 {
		return nil
	}
	voucher, err := voucherRepo.GetByID(*voucherID)
	if err != nil {
		return err
	}
	if voucher == nil {
		logger.Warnw("order_voucher_missing", "voucher_id", *voucherID, "order_id", orderID)
		return nil
	}
	return voucherRepo.IncrementUsedCount(voucher.ID, 1)
}

// Get 根据ID获取订单
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List 分页查询订单
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" && !constants.ValidOrderStatuses[filter.Status] {
		return nil, 0, ErrInvalidOrderStatus
	}
	return s.orderRepo.List(filter)
}

// Update 部分更新订单
// 状态、配送员、地址、备注、支付方式均可覆盖；不做状态机校验。
func (s *OrderService) Update(orderID uint, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	updates := map[string]interface{}{}
	if input.Status != nil {
		if !constants.ValidOrderStatuses[*input.Status] {
			return nil, ErrInvalidOrderStatus
		}
		updates["status"] = *input.Status
	}
	if input.TotalPrice != nil {
		updates["total_price"] = *input.TotalPrice
	}
	if input.AddressID != nil {
		updates["address_id"] = *input.AddressID
	}
	if input.ShipperUID != nil {
		updates["shipper_uid"] = *input.ShipperUID
	}
	if input.Note != nil {
		updates["note"] = *input.Note
	}
	if input.PaymentMethod != nil {
		updates["payment_method"] = *input.PaymentMethod
	}
	if len(updates) == 0 {
		return order, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.orderRepo.Updates(orderID, updates); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(orderID)
}

// Delete 删除订单
func (s *OrderService) Delete(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(orderID)
}

// CreateItem 创建订单项（价格为下单时快照）
func (s *OrderService) CreateItem(input CreateOrderItemInput) (*models.OrderItem, error) {
	if input.OrderID == 0 || input.ItemID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidOrder
	}
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	item := &models.OrderItem{
		OrderID:  input.OrderID,
		ItemID:   input.ItemID,
		Quantity: input.Quantity,
		Price:    input.Price,
		Note:     input.Note,
	}
	if err := s.orderRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem 根据ID获取订单项
func (s *OrderService) GetItem(orderItemID uint) (*models.OrderItem, error) {
	item, err := s.orderRepo.GetItemByID(orderItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}
	return item, nil
}

// ListItems 获取订单的订单项
func (s *OrderService) ListItems(orderID uint) ([]models.OrderItem, error) {
	return s.orderRepo.ListItemsByOrder(orderID)
}

// UpdateItem 部分更新订单项
func (s *OrderService) UpdateItem(orderItemID uint, input UpdateOrderItemInput) (*models.OrderItem, error) {
	item, err := s.orderRepo.GetItemByID(orderItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}

	updates := map[string]interface{}{}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, ErrInvalidOrder
		}
		updates["quantity"] = *input.Quantity
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Note != nil {
		updates["note"] = *input.Note
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := s.orderRepo.UpdateItem(orderItemID, updates); err != nil {
		return nil, err
	}
	return s.orderRepo.GetItemByID(orderItemID)
}

// DeleteItem 删除订单项
func (s *OrderService) DeleteItem(orderItemID uint) error {
	item, err := s.orderRepo.GetItemByID(orderItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrOrderItemNotFound
	}
	return s.orderRepo.DeleteItem(orderItemID)
}
