package service

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/foodgo-next/internal/config"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupMenuServiceTest(t *testing.T) (*MenuService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:menu_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.MenuItemImage{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cfg := &config.Config{}
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxSize = 3 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	menuItemRepo := repository.NewMenuItemRepository(db)
	return NewMenuService(menuItemRepo, NewUploadService(cfg)), db
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form writer failed: %v", err)
	}
	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(8 << 20)
	if err != nil {
		t.Fatalf("read form failed: %v", err)
	}
	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(files))
	}
	return files[0]
}

// pngBytes PNG 文件签名加填充，http.DetectContentType 识别为 image/png
func pngBytes(size int) []byte {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if size < len(header) {
		size = len(header)
	}
	content := make([]byte, size)
	copy(content, header)
	return content
}

func countPrimaryImages(t *testing.T, db *gorm.DB, itemID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.MenuItemImage{}).
		Where("item_id = ? AND is_primary = ?", itemID, true).
		Count(&count).Error; err != nil {
		t.Fatalf("count primary images failed: %v", err)
	}
	return count
}

func TestMenuServiceAddImagePrimaryDemotesOld(t *testing.T) {
	svc, db := setupMenuServiceTest(t)
	item := createTestMenuItem(t, db, 1, "牛肉面")

	first, err := svc.AddImage(item.ID, "/uploads/menu/a.png", true)
	if err != nil {
		t.Fatalf("add first image failed: %v", err)
	}
	if !first.IsPrimary {
		t.Fatalf("first image should be primary")
	}

	second, err := svc.AddImage(item.ID, "/uploads/menu/b.png", true)
	if err != nil {
		t.Fatalf("add second image failed: %v", err)
	}
	if !second.IsPrimary {
		t.Fatalf("second image should be primary")
	}
	if got := countPrimaryImages(t, db, item.ID); got != 1 {
		t.Fatalf("expected 1 primary image, got %d", got)
	}

	var reloaded models.MenuItemImage
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload first image failed: %v", err)
	}
	if reloaded.IsPrimary {
		t.Fatalf("old primary should be demoted")
	}
}

func TestMenuServiceAddImageNonPrimaryKeepsExisting(t *testing.T) {
	svc, db := setupMenuServiceTest(t)
	item := createTestMenuItem(t, db, 1, "米线")

	primary, err := svc.AddImage(item.ID, "/uploads/menu/main.png", true)
	if err != nil {
		t.Fatalf("add primary image failed: %v", err)
	}
	if _, err := svc.AddImage(item.ID, "/uploads/menu/extra.png", false); err != nil {
		t.Fatalf("add non-primary image failed: %v", err)
	}

	var reloaded models.MenuItemImage
	if err := db.First(&reloaded, primary.ID).Error; err != nil {
		t.Fatalf("reload primary image failed: %v", err)
	}
	if !reloaded.IsPrimary {
		t.Fatalf("existing primary should be kept")
	}
	if got := countPrimaryImages(t, db, item.ID); got != 1 {
		t.Fatalf("expected 1 primary image, got %d", got)
	}
}

func TestMenuServiceAddImageItemNotFound(t *testing.T) {
	svc, _ := setupMenuServiceTest(t)
	if _, err := svc.AddImage(9999, "/uploads/menu/x.png", false); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestMenuServiceUploadImagesOnlyFirstPrimary(t *testing.T) {
	svc, db := setupMenuServiceTest(t)
	item := createTestMenuItem(t, db, 1, "套餐")

	files := []*multipart.FileHeader{
		makeFileHeader(t, "a.png", pngBytes(1024)),
		makeFileHeader(t, "b.png", pngBytes(1024)),
		makeFileHeader(t, "c.png", pngBytes(1024)),
	}
	images, err := svc.UploadImages(item.ID, files, true)
	if err != nil {
		t.Fatalf("batch upload failed: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(images))
	}
	if !images[0].IsPrimary {
		t.Fatalf("first image of batch should be primary")
	}
	if images[1].IsPrimary || images[2].IsPrimary {
		t.Fatalf("only the first image of the batch may be primary")
	}
	if got := countPrimaryImages(t, db, item.ID); got != 1 {
		t.Fatalf("expected 1 primary image, got %d", got)
	}
}

func TestMenuServiceUploadImagesAllOrNothing(t *testing.T) {
	svc, db := setupMenuServiceTest(t)
	item := createTestMenuItem(t, db, 1, "便当")

	files := []*multipart.FileHeader{
		makeFileHeader(t, "ok.png", pngBytes(1024)),
		makeFileHeader(t, "bad.txt", []byte("plain text content, not an image")),
	}
	_, err := svc.UploadImages(item.ID, files, true)
	if !errors.Is(err, ErrFileTypeNotAllowed) {
		t.Fatalf("expected ErrFileTypeNotAllowed, got %v", err)
	}

	// 校验失败时任何图片都不落库
	var rows int64
	if err := db.Model(&models.MenuItemImage{}).Where("item_id = ?", item.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count images failed: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected no images persisted, got %d", rows)
	}
}

func TestMenuServiceUploadImagesEmptyBatch(t *testing.T) {
	svc, db := setupMenuServiceTest(t)
	item := createTestMenuItem(t, db, 1, "沙拉")

	if _, err := svc.UploadImages(item.ID, nil, false); !errors.Is(err, ErrFileEmpty) {
		t.Fatalf("expected ErrFileEmpty, got %v", err)
	}
}

func TestMenuServiceDeletePrimaryImageNoReelection(t *testing.T) {
	svc, db := setupMenuServiceTest(t)
	item := createTestMenuItem(t, db, 1, "炒饭")

	primary, err := svc.AddImage(item.ID, "/uploads/menu/main.png", true)
	if err != nil {
		t.Fatalf("add primary image failed: %v", err)
	}
	if _, err := svc.AddImage(item.ID, "/uploads/menu/extra.png", false); err != nil {
		t.Fatalf("add extra image failed: %v", err)
	}

	if err := svc.DeleteImage(primary.ID); err != nil {
		t.Fatalf("delete primary image failed: %v", err)
	}

	// 删除主图后不自动选举新的主图
	if got := countPrimaryImages(t, db, item.ID); got != 0 {
		t.Fatalf("expected no primary image after delete, got %d", got)
	}
	remaining, err := svc.ListImages(item.ID)
	if err != nil {
		t.Fatalf("list images failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining image, got %d", len(remaining))
	}
}

func TestMenuServiceCreateAndUpdate(t *testing.T) {
	svc, _ := setupMenuServiceTest(t)

	item, err := svc.Create(CreateMenuItemInput{
		RestaurantID: 1,
		CategoryID:   1,
		Name:         "招牌炒面",
	})
	if err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}
	if !item.Available {
		t.Fatalf("available should default to true")
	}

	available := false
	updated, err := svc.Update(item.ID, UpdateMenuItemInput{Available: &available})
	if err != nil {
		t.Fatalf("update menu item failed: %v", err)
	}
	if updated.Available {
		t.Fatalf("available should be updated to false")
	}
	if updated.Name != "招牌炒面" {
		t.Fatalf("name should be unchanged, got %q", updated.Name)
	}
}
