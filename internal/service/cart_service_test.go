package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.MenuItemImage{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cartRepo := repository.NewCartRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	return NewCartService(cartRepo, menuItemRepo), db
}

func createTestMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   1,
		Name:         name,
		Price:        models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
		Available:    true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}
	return item
}

func TestCartServiceAddItemMergesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	item := createTestMenuItem(t, db, 1, "牛肉堡")

	first, err := svc.AddItem(AddCartItemInput{
		UserUID:      "user-a",
		RestaurantID: 1,
		ItemID:       item.ID,
		Quantity:     2,
		Note:         "不要洋葱",
	})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	merged, err := svc.AddItem(AddCartItemInput{
		UserUID:      "user-a",
		RestaurantID: 1,
		ItemID:       item.ID,
		Quantity:     3,
	})
	if err != nil {
		t.Fatalf("merge add failed: %v", err)
	}
	if merged.ID != first.ID {
		t.Fatalf("expected existing row to be reused, got new row %d", merged.ID)
	}
	if merged.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", merged.Quantity)
	}
	// 空备注不覆盖旧备注
	if merged.Note != "不要洋葱" {
		t.Fatalf("empty note should keep old note, got %q", merged.Note)
	}

	var rows int64
	if err := db.Model(&models.CartItem{}).Where("user_uid = ?", "user-a").Count(&rows).Error; err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected single cart row, got %d", rows)
	}
}

func TestCartServiceAddItemReplacesNoteWhenNonEmpty(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	item := createTestMenuItem(t, db, 1, "鸡腿堡")

	if _, err := svc.AddItem(AddCartItemInput{
		UserUID:      "user-b",
		RestaurantID: 1,
		ItemID:       item.ID,
		Quantity:     1,
		Note:         "少辣",
	}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	merged, err := svc.AddItem(AddCartItemInput{
		UserUID:      "user-b",
		RestaurantID: 1,
		ItemID:       item.ID,
		Quantity:     1,
		Note:         "加辣",
	})
	if err != nil {
		t.Fatalf("merge add failed: %v", err)
	}
	if merged.Note != "加辣" {
		t.Fatalf("non-empty note should replace old note, got %q", merged.Note)
	}
	if merged.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", merged.Quantity)
	}
}

func TestCartServiceAddItemDistinctTriples(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	item := createTestMenuItem(t, db, 1, "薯条")

	if _, err := svc.AddItem(AddCartItemInput{UserUID: "user-c", RestaurantID: 1, ItemID: item.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	// 同菜品不同餐厅ID视为不同三元组
	if _, err := svc.AddItem(AddCartItemInput{UserUID: "user-c", RestaurantID: 2, ItemID: item.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item for second restaurant failed: %v", err)
	}

	var rows int64
	if err := db.Model(&models.CartItem{}).Where("user_uid = ?", "user-c").Count(&rows).Error; err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 cart rows, got %d", rows)
	}
}

func TestCartServiceAddItemValidation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	item := createTestMenuItem(t, db, 1, "可乐")

	if _, err := svc.AddItem(AddCartItemInput{UserUID: "", RestaurantID: 1, ItemID: item.ID, Quantity: 1}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem for empty user, got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserUID: "user-d", RestaurantID: 1, ItemID: item.ID, Quantity: 0}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem for zero quantity, got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserUID: "user-d", RestaurantID: 1, ItemID: 9999, Quantity: 1}); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestCartServiceUpdateItem(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	item := createTestMenuItem(t, db, 1, "奶茶")

	row, err := svc.AddItem(AddCartItemInput{UserUID: "user-e", RestaurantID: 1, ItemID: item.ID, Quantity: 1, Note: "常温"})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	quantity := 4
	updated, err := svc.UpdateItem(row.ID, UpdateCartItemInput{Quantity: &quantity})
	if err != nil {
		t.Fatalf("update item failed: %v", err)
	}
	if updated.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", updated.Quantity)
	}
	if updated.Note != "常温" {
		t.Fatalf("note should be unchanged, got %q", updated.Note)
	}

	zero := 0
	if _, err := svc.UpdateItem(row.ID, UpdateCartItemInput{Quantity: &zero}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem for zero quantity, got %v", err)
	}
	if _, err := svc.UpdateItem(9999, UpdateCartItemInput{Quantity: &quantity}); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartServiceClearByUser(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	burger := createTestMenuItem(t, db, 1, "汉堡")
	noodle := createTestMenuItem(t, db, 2, "拉面")

	if _, err := svc.AddItem(AddCartItemInput{UserUID: "user-f", RestaurantID: 1, ItemID: burger.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserUID: "user-f", RestaurantID: 2, ItemID: noodle.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	// 只清空指定餐厅
	removed, err := svc.ClearByUser("user-f", 1)
	if err != nil {
		t.Fatalf("clear by restaurant failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 row removed, got %d", removed)
	}

	rest, err := svc.ListByUser("user-f", 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rest) != 1 || rest[0].RestaurantID != 2 {
		t.Fatalf("unexpected remaining rows: %+v", rest)
	}

	// 清空全部，删除 0 行也不是错误
	if _, err := svc.ClearByUser("user-f", 0); err != nil {
		t.Fatalf("clear all failed: %v", err)
	}
	removed, err = svc.ClearByUser("user-f", 0)
	if err != nil {
		t.Fatalf("clear empty cart failed: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 rows removed, got %d", removed)
	}
}
