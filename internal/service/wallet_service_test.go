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

func setupWalletServiceTest(t *testing.T) (*WalletService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:wallet_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.WalletTransaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewWalletService(repository.NewWalletRepository(db)), db
}

func TestWalletServiceGetOrCreate(t *testing.T) {
	svc, db := setupWalletServiceTest(t)

	wallet, err := svc.GetOrCreate("user-a")
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if !wallet.Balance.Decimal.IsZero() {
		t.Fatalf("new wallet should have zero balance, got %s", wallet.Balance.Decimal)
	}

	again, err := svc.GetOrCreate("user-a")
	if err != nil {
		t.Fatalf("second get or create failed: %v", err)
	}
	if again.ID != wallet.ID {
		t.Fatalf("expected same wallet %d, got %d", wallet.ID, again.ID)
	}

	var rows int64
	if err := db.Model(&models.Wallet{}).Where("user_uid = ?", "user-a").Count(&rows).Error; err != nil {
		t.Fatalf("count wallets failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected single wallet row, got %d", rows)
	}
}

func TestWalletServiceTopupAndDeduct(t *testing.T) {
	svc, db := setupWalletServiceTest(t)

	wallet, err := svc.Topup("user-b", models.NewMoneyFromDecimal(decimal.RequireFromString("100.00")), "充值")
	if err != nil {
		t.Fatalf("topup failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("expected balance 100.00, got %s", wallet.Balance.Decimal)
	}

	wallet, err = svc.Deduct("user-b", models.NewMoneyFromDecimal(decimal.RequireFromString("30.50")), "下单支付")
	if err != nil {
		t.Fatalf("deduct failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.RequireFromString("69.50")) {
		t.Fatalf("expected balance 69.50, got %s", wallet.Balance.Decimal)
	}

	// 每次变更都写入流水
	var txns []models.WalletTransaction
	if err := db.Where("wallet_id = ?", wallet.ID).Order("id asc").Find(&txns).Error; err != nil {
		t.Fatalf("load transactions failed: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if txns[0].Type != constants.WalletTxnTypeTopup {
		t.Fatalf("expected topup transaction, got %q", txns[0].Type)
	}
	if txns[1].Type != constants.WalletTxnTypePayment {
		t.Fatalf("expected payment transaction, got %q", txns[1].Type)
	}
	if !txns[1].Amount.Decimal.Equal(decimal.RequireFromString("-30.50")) {
		t.Fatalf("payment amount should be negative, got %s", txns[1].Amount.Decimal)
	}
}

func TestWalletServiceDeductInsufficientBalance(t *testing.T) {
	svc, db := setupWalletServiceTest(t)

	if _, err := svc.Topup("user-c", models.NewMoneyFromDecimal(decimal.NewFromInt(10)), "充值"); err != nil {
		t.Fatalf("topup failed: %v", err)
	}

	_, err := svc.Deduct("user-c", models.NewMoneyFromDecimal(decimal.NewFromInt(11)), "下单支付")
	if !errors.Is(err, ErrWalletInsufficientBalance) {
		t.Fatalf("expected ErrWalletInsufficientBalance, got %v", err)
	}

	// 扣款失败余额不变，也不写流水
	wallet, err := svc.GetOrCreate("user-c")
	if err != nil {
		t.Fatalf("get wallet failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("balance should be unchanged, got %s", wallet.Balance.Decimal)
	}
	var rows int64
	if err := db.Model(&models.WalletTransaction{}).Where("wallet_id = ?", wallet.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count transactions failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected only the topup transaction, got %d", rows)
	}
}

func TestWalletServiceAmountValidation(t *testing.T) {
	svc, _ := setupWalletServiceTest(t)

	if _, err := svc.Topup("user-d", models.NewMoneyFromDecimal(decimal.Zero), ""); !errors.Is(err, ErrWalletInsufficientBalance) {
		t.Fatalf("expected error for zero topup, got %v", err)
	}
	if _, err := svc.Deduct("user-d", models.NewMoneyFromDecimal(decimal.NewFromInt(-5)), ""); !errors.Is(err, ErrWalletInsufficientBalance) {
		t.Fatalf("expected error for negative deduct, got %v", err)
	}
}

func TestWalletServiceRefundAndListTransactions(t *testing.T) {
	svc, _ := setupWalletServiceTest(t)

	if _, err := svc.Topup("user-e", models.NewMoneyFromDecimal(decimal.NewFromInt(50)), "充值"); err != nil {
		t.Fatalf("topup failed: %v", err)
	}
	if _, err := svc.Deduct("user-e", models.NewMoneyFromDecimal(decimal.NewFromInt(20)), "下单支付"); err != nil {
		t.Fatalf("deduct failed: %v", err)
	}
	wallet, err := svc.Refund("user-e", models.NewMoneyFromDecimal(decimal.NewFromInt(20)), "订单取消退款")
	if err != nil {
		t.Fatalf("refund failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected balance 50, got %s", wallet.Balance.Decimal)
	}

	txns, total, err := svc.ListTransactions("user-e", 1, 10)
	if err != nil {
		t.Fatalf("list transactions failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 transactions, got %d", total)
	}
	if len(txns) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(txns))
	}
}
