package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Address{},
		&models.Voucher{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	orderRepo := repository.NewOrderRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	return NewOrderService(orderRepo, voucherRepo), db
}

func createTestVoucher(t *testing.T, db *gorm.DB, code string, usedCount int) *models.Voucher {
	t.Helper()
	voucher := &models.Voucher{
		Code:          code,
		Title:         "测试券",
		DiscountType:  constants.DiscountTypeFixed,
		DiscountValue: models.NewMoneyFromDecimal(decimal.NewFromInt(5)),
		UsedCount:     usedCount,
		Status:        constants.VoucherStatusActive,
	}
	if err := db.Create(voucher).Error; err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}
	return voucher
}

func TestOrderServiceCreateInitialStatusPending(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	order, err := svc.Create(CreateOrderInput{
		UserUID:      "user-a",
		RestaurantID: 1,
		TotalPrice:   models.NewMoneyFromDecimal(decimal.RequireFromString("56.50")),
		Items: []OrderLineInput{
			{ItemID: 11, Quantity: 2, Price: models.NewMoneyFromDecimal(decimal.RequireFromString("22.50"))},
			{ItemID: 12, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.RequireFromString("11.50")), Note: "微辣"},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected status pending, got %q", order.Status)
	}
	if order.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("payment method should default to cod, got %q", order.PaymentMethod)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}

	var rows int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 persisted order items, got %d", rows)
	}
}

func TestOrderServiceCreateIncrementsVoucherUsage(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	adminVoucher := createTestVoucher(t, db, "ADMIN10", 3)
	shopVoucher := createTestVoucher(t, db, "SHOP5", 0)

	_, err := svc.Create(CreateOrderInput{
		UserUID:        "user-b",
		RestaurantID:   1,
		TotalPrice:     models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
		AdminVoucherID: &adminVoucher.ID,
		ShopVoucherID:  &shopVoucher.ID,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	var reloadedAdmin, reloadedShop models.Voucher
	if err := db.First(&reloadedAdmin, adminVoucher.ID).Error; err != nil {
		t.Fatalf("reload admin voucher failed: %v", err)
	}
	if err := db.First(&reloadedShop, shopVoucher.ID).Error; err != nil {
		t.Fatalf("reload shop voucher failed: %v", err)
	}
	if reloadedAdmin.UsedCount != 4 {
		t.Fatalf("expected admin voucher used_count 4, got %d", reloadedAdmin.UsedCount)
	}
	if reloadedShop.UsedCount != 1 {
		t.Fatalf("expected shop voucher used_count 1, got %d", reloadedShop.UsedCount)
	}
}

func TestOrderServiceCreateMissingVoucherSkipped(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	shopVoucher := createTestVoucher(t, db, "SHOP5", 0)
	missing := uint(9999)

	// 平台券无法解析时静默跳过，不阻断下单，店铺券照常计数
	order, err := svc.Create(CreateOrderInput{
		UserUID:        "user-c",
		RestaurantID:   1,
		TotalPrice:     models.NewMoneyFromDecimal(decimal.NewFromInt(25)),
		AdminVoucherID: &missing,
		ShopVoucherID:  &shopVoucher.ID,
	})
	if err != nil {
		t.Fatalf("create order with missing voucher failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected status pending, got %q", order.Status)
	}

	var reloaded models.Voucher
	if err := db.First(&reloaded, shopVoucher.ID).Error; err != nil {
		t.Fatalf("reload shop voucher failed: %v", err)
	}
	if reloaded.UsedCount != 1 {
		t.Fatalf("expected shop voucher used_count 1, got %d", reloaded.UsedCount)
	}
}

func TestOrderServiceCreateValidation(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if _, err := svc.Create(CreateOrderInput{UserUID: "", RestaurantID: 1}); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for empty user, got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{UserUID: "user-d", RestaurantID: 0}); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for zero restaurant, got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserUID:      "user-d",
		RestaurantID: 1,
		Items:        []OrderLineInput{{ItemID: 1, Quantity: 0}},
	}); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for zero quantity line, got %v", err)
	}
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	order, err := svc.Create(CreateOrderInput{
		UserUID:      "user-e",
		RestaurantID: 1,
		TotalPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(40)),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	status := constants.OrderStatusAccepted
	updated, err := svc.Update(order.ID, UpdateOrderInput{Status: &status})
	if err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if updated.Status != constants.OrderStatusAccepted {
		t.Fatalf("expected status accepted, got %q", updated.Status)
	}

	bad := "flying"
	if _, err := svc.Update(order.ID, UpdateOrderInput{Status: &bad}); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
	if _, err := svc.Update(9999, UpdateOrderInput{Status: &status}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderServiceListByStatus(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(CreateOrderInput{
			UserUID:      "user-f",
			RestaurantID: 1,
			TotalPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(int64(10 + i))),
		}); err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	orders, total, err := svc.List(repository.OrderListFilter{
		UserUID:  "user-f",
		Status:   constants.OrderStatusPending,
		Page:     1,
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders on page, got %d", len(orders))
	}

	if _, _, err := svc.List(repository.OrderListFilter{Status: "unknown"}); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus for bad filter, got %v", err)
	}
}
