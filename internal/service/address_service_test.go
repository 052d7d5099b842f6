package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAddressServiceTest(t *testing.T) (*AddressService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:address_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewAddressService(repository.NewAddressRepository(db)), db
}

func countDefaultAddresses(t *testing.T, db *gorm.DB, userUID string) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Address{}).
		Where("user_uid = ? AND is_default = ?", userUID, true).
		Count(&count).Error; err != nil {
		t.Fatalf("count defaults failed: %v", err)
	}
	return count
}

func TestAddressServiceCreateFirstAddressForcedDefault(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	// 第一条地址即使显式传 false 也强制为默认
	address, err := svc.Create(CreateAddressInput{
		UserUID:   "user-a",
		Label:     "家",
		Receiver:  "张三",
		Phone:     "13800000001",
		Address:   "幸福路 1 号",
		IsDefault: false,
	})
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	if !address.IsDefault {
		t.Fatalf("first address should be forced default")
	}
	if got := countDefaultAddresses(t, db, "user-a"); got != 1 {
		t.Fatalf("expected 1 default address, got %d", got)
	}
}

func TestAddressServiceCreateNewDefaultDemotesOld(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	first, err := svc.Create(CreateAddressInput{
		UserUID: "user-b",
		Address: "旧地址 1 号",
	})
	if err != nil {
		t.Fatalf("create first address failed: %v", err)
	}

	second, err := svc.Create(CreateAddressInput{
		UserUID:   "user-b",
		Address:   "新地址 2 号",
		IsDefault: true,
	})
	if err != nil {
		t.Fatalf("create second address failed: %v", err)
	}
	if !second.IsDefault {
		t.Fatalf("second address should be default")
	}
	if got := countDefaultAddresses(t, db, "user-b"); got != 1 {
		t.Fatalf("expected 1 default address, got %d", got)
	}

	var reloaded models.Address
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload first address failed: %v", err)
	}
	if reloaded.IsDefault {
		t.Fatalf("old default should be demoted")
	}
}

func TestAddressServiceCreateNonDefaultKeepsExistingDefault(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	first, err := svc.Create(CreateAddressInput{
		UserUID: "user-c",
		Address: "默认地址",
	})
	if err != nil {
		t.Fatalf("create first address failed: %v", err)
	}

	second, err := svc.Create(CreateAddressInput{
		UserUID:   "user-c",
		Address:   "备用地址",
		IsDefault: false,
	})
	if err != nil {
		t.Fatalf("create second address failed: %v", err)
	}
	if second.IsDefault {
		t.Fatalf("second address should not be default")
	}

	current, err := svc.GetDefault("user-c")
	if err != nil {
		t.Fatalf("get default failed: %v", err)
	}
	if current.ID != first.ID {
		t.Fatalf("default should stay on first address, got %d", current.ID)
	}
	if got := countDefaultAddresses(t, db, "user-c"); got != 1 {
		t.Fatalf("expected 1 default address, got %d", got)
	}
}

func TestAddressServiceCreateDuplicateText(t *testing.T) {
	svc, _ := setupAddressServiceTest(t)

	if _, err := svc.Create(CreateAddressInput{UserUID: "user-d", Address: "重复路 9 号"}); err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	_, err := svc.Create(CreateAddressInput{UserUID: "user-d", Address: "重复路 9 号"})
	if !errors.Is(err, ErrAddressDuplicate) {
		t.Fatalf("expected ErrAddressDuplicate, got %v", err)
	}

	// 不同用户可以使用相同地址文本
	if _, err := svc.Create(CreateAddressInput{UserUID: "user-e", Address: "重复路 9 号"}); err != nil {
		t.Fatalf("create same text for another user failed: %v", err)
	}
}

func TestAddressServiceUpdateSetDefaultDemotesOld(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	first, err := svc.Create(CreateAddressInput{UserUID: "user-f", Address: "地址一"})
	if err != nil {
		t.Fatalf("create first address failed: %v", err)
	}
	second, err := svc.Create(CreateAddressInput{UserUID: "user-f", Address: "地址二"})
	if err != nil {
		t.Fatalf("create second address failed: %v", err)
	}

	setDefault := true
	updated, err := svc.Update(second.ID, UpdateAddressInput{IsDefault: &setDefault})
	if err != nil {
		t.Fatalf("update address failed: %v", err)
	}
	if !updated.IsDefault {
		t.Fatalf("updated address should be default")
	}
	if got := countDefaultAddresses(t, db, "user-f"); got != 1 {
		t.Fatalf("expected 1 default address, got %d", got)
	}

	var reloaded models.Address
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload first address failed: %v", err)
	}
	if reloaded.IsDefault {
		t.Fatalf("old default should be demoted")
	}
}

func TestAddressServiceUpdatePartialFields(t *testing.T) {
	svc, _ := setupAddressServiceTest(t)

	address, err := svc.Create(CreateAddressInput{
		UserUID:  "user-g",
		Label:    "家",
		Receiver: "李四",
		Address:  "更新前地址",
	})
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}

	label := "公司"
	updated, err := svc.Update(address.ID, UpdateAddressInput{Label: &label})
	if err != nil {
		t.Fatalf("update address failed: %v", err)
	}
	if updated.Label != "公司" {
		t.Fatalf("label not updated, got %q", updated.Label)
	}
	if updated.Receiver != "李四" {
		t.Fatalf("receiver should be unchanged, got %q", updated.Receiver)
	}
	if !updated.IsDefault {
		t.Fatalf("default flag should be unchanged")
	}
}

func TestAddressServiceDeleteDefaultNoReelection(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	first, err := svc.Create(CreateAddressInput{UserUID: "user-h", Address: "默认地址"})
	if err != nil {
		t.Fatalf("create first address failed: %v", err)
	}
	if _, err := svc.Create(CreateAddressInput{UserUID: "user-h", Address: "备用地址"}); err != nil {
		t.Fatalf("create second address failed: %v", err)
	}

	if err := svc.Delete(first.ID); err != nil {
		t.Fatalf("delete default address failed: %v", err)
	}

	// 删除默认地址后不自动选举新默认
	if got := countDefaultAddresses(t, db, "user-h"); got != 0 {
		t.Fatalf("expected no default address after delete, got %d", got)
	}
	if _, err := svc.GetDefault("user-h"); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestAddressServiceDeleteNotFound(t *testing.T) {
	svc, _ := setupAddressServiceTest(t)
	if err := svc.Delete(9999); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}
