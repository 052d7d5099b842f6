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

func setupVoucherServiceTest(t *testing.T) (*VoucherService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:voucher_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Voucher{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewVoucherService(repository.NewVoucherRepository(db)), db
}

func TestVoucherServiceCreateNormalizesCode(t *testing.T) {
	svc, _ := setupVoucherServiceTest(t)

	voucher, err := svc.Create(CreateVoucherInput{
		Code:           "  welcome10 ",
		Title:          "新客券",
		DiscountType:   "bogus",
		DiscountValue:  models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		CreatedByAdmin: true,
	})
	if err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}
	if voucher.Code != "WELCOME10" {
		t.Fatalf("code should be trimmed and upper-cased, got %q", voucher.Code)
	}
	// 未知优惠类型回落为固定金额
	if voucher.DiscountType != constants.DiscountTypeFixed {
		t.Fatalf("expected fixed discount type, got %q", voucher.DiscountType)
	}
	if voucher.Status != constants.VoucherStatusActive {
		t.Fatalf("expected active status, got %q", voucher.Status)
	}
}

func TestVoucherServiceCreateDuplicateCode(t *testing.T) {
	svc, _ := setupVoucherServiceTest(t)

	if _, err := svc.Create(CreateVoucherInput{Code: "SAVE5", CreatedByAdmin: true}); err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}
	_, err := svc.Create(CreateVoucherInput{Code: "save5", CreatedByAdmin: true})
	if !errors.Is(err, ErrVoucherCodeTaken) {
		t.Fatalf("expected ErrVoucherCodeTaken, got %v", err)
	}
	if _, err := svc.Create(CreateVoucherInput{Code: "   "}); !errors.Is(err, ErrVoucherCodeTaken) {
		t.Fatalf("expected ErrVoucherCodeTaken for blank code, got %v", err)
	}
}

func TestVoucherServiceGetByCode(t *testing.T) {
	svc, _ := setupVoucherServiceTest(t)

	created, err := svc.Create(CreateVoucherInput{Code: "LOOKUP1", CreatedByAdmin: true})
	if err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}

	found, err := svc.GetByCode("lookup1")
	if err != nil {
		t.Fatalf("get by code failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected voucher %d, got %d", created.ID, found.ID)
	}

	if _, err := svc.GetByCode("NOPE"); !errors.Is(err, ErrVoucherNotFound) {
		t.Fatalf("expected ErrVoucherNotFound, got %v", err)
	}
}

func TestVoucherServiceUpdate(t *testing.T) {
	svc, _ := setupVoucherServiceTest(t)

	voucher, err := svc.Create(CreateVoucherInput{
		Code:          "EDIT1",
		Title:         "编辑前",
		DiscountValue: models.NewMoneyFromDecimal(decimal.NewFromInt(5)),
	})
	if err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}

	title := "编辑后"
	status := constants.VoucherStatusDisabled
	updated, err := svc.Update(voucher.ID, UpdateVoucherInput{Title: &title, Status: &status})
	if err != nil {
		t.Fatalf("update voucher failed: %v", err)
	}
	if updated.Title != "编辑后" {
		t.Fatalf("title not updated, got %q", updated.Title)
	}
	if updated.Status != constants.VoucherStatusDisabled {
		t.Fatalf("status not updated, got %q", updated.Status)
	}
	if !updated.DiscountValue.Decimal.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("discount value should be unchanged, got %s", updated.DiscountValue.Decimal)
	}

	if _, err := svc.Update(9999, UpdateVoucherInput{Title: &title}); !errors.Is(err, ErrVoucherNotFound) {
		t.Fatalf("expected ErrVoucherNotFound, got %v", err)
	}
}

func TestVoucherRepositoryIncrementUsedCount(t *testing.T) {
	_, db := setupVoucherServiceTest(t)
	repo := repository.NewVoucherRepository(db)

	voucher := &models.Voucher{Code: "CNT1", Status: constants.VoucherStatusActive, UsedCount: 2}
	if err := db.Create(voucher).Error; err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}

	if err := repo.IncrementUsedCount(voucher.ID, 1); err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if err := repo.IncrementUsedCount(voucher.ID, 1); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	var reloaded models.Voucher
	if err := db.First(&reloaded, voucher.ID).Error; err != nil {
		t.Fatalf("reload voucher failed: %v", err)
	}
	if reloaded.UsedCount != 4 {
		t.Fatalf("expected used_count 4, got %d", reloaded.UsedCount)
	}
}
