package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
)

// AddCartItemInput 添加购物车项输入
type AddCartItemInput struct {
	UserUID      string
	RestaurantID uint
	ItemID       uint
	Quantity     int
	Note         string
}

// UpdateCartItemInput 更新购物车项输入（仅更新非 nil 字段）
type UpdateCartItemInput struct {
	Quantity *int
	Note     *string
}

// CartService 购物车服务
// (user, restaurant, item) 三元组逻辑唯一，重复添加合并数量而不是新增行。
type CartService struct {
	cartRepo     repository.CartRepository
	menuItemRepo repository.MenuItemRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, menuItemRepo repository.MenuItemRepository) *CartService {
	return &CartService{cartRepo: cartRepo, menuItemRepo: menuItemRepo}
}

// AddItem 添加购物车项
// 三元组已存在时数量累加；新备注非空时覆盖旧备注，为空时保留旧备注。
func (s *CartService) AddItem(input AddCartItemInput) (*models.CartItem, error) {
	userUID := strings.TrimSpace(input.UserUID)
	if userUID == "" || input.RestaurantID == 0 || input.ItemID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidCartItem
	}

	item, err := s.menuItemRepo.GetByID(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}

	existing, err := s.cartRepo.GetByTriple(userUID, input.RestaurantID, input.ItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		updates := map[string]interface{}{
			"quantity":   existing.Quantity + input.Quantity,
			"updated_at": now,
		}
		if strings.TrimSpace(input.Note) != "" {
			updates["note"] = input.Note
		}
		if err := s.cartRepo.Updates(existing.ID, updates); err != nil {
			return nil, err
		}
		return s.cartRepo.GetByID(existing.ID)
	}

	row := &models.CartItem{
		UserUID:      userUID,
		RestaurantID: input.RestaurantID,
		ItemID:       input.ItemID,
		Quantity:     input.Quantity,
		Note:         input.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.cartRepo.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// ListByUser 获取用户购物车，restaurantID 为 0 时不限餐厅
func (s *CartService) ListByUser(userUID string, restaurantID uint) ([]models.CartItem, error) {
	if strings.TrimSpace(userUID) == "" {
		return nil, ErrInvalidCartItem
	}
	return s.cartRepo.ListByUser(userUID, restaurantID)
}

// UpdateItem 按行ID部分更新购物车项
// 归属校验由 HTTP 层负责，这里不做（沿用原有约束）。
func (s *CartService) UpdateItem(cartItemID uint, input UpdateCartItemInput) (*models.CartItem, error) {
	existing, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCartItemNotFound
	}

	updates := map[string]interface{}{}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, ErrInvalidCartItem
		}
		updates["quantity"] = *input.Quantity
	}
	if input.Note != nil {
		updates["note"] = *input.Note
	}
	if len(updates) == 0 {
		return existing, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.cartRepo.Updates(cartItemID, updates); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByID(cartItemID)
}

// RemoveItem 按行ID删除购物车项
func (s *CartService) RemoveItem(cartItemID uint) error {
	existing, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartItemNotFound
	}
	return s.cartRepo.Delete(cartItemID)
}

// ClearByUser 清空用户购物车，restaurantID 为 0 时清空全部
// 删除 0 行不是错误。
func (s *CartService) ClearByUser(userUID string, restaurantID uint) (int64, error) {
	if strings.TrimSpace(userUID) == "" {
		return 0, ErrInvalidCartItem
	}
	return s.cartRepo.ClearByUser(userUID, restaurantID)
}
