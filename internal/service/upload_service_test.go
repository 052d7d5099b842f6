package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foodgo-next/internal/config"
)

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxSize = 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	return NewUploadService(cfg)
}

func TestUploadServiceValidateFile(t *testing.T) {
	svc := newTestUploadService(t)

	if err := svc.ValidateFile(makeFileHeader(t, "ok.png", pngBytes(2048))); err != nil {
		t.Fatalf("valid png should pass, got %v", err)
	}
	if err := svc.ValidateFile(nil); !errors.Is(err, ErrFileEmpty) {
		t.Fatalf("expected ErrFileEmpty for nil file, got %v", err)
	}
	if err := svc.ValidateFile(makeFileHeader(t, "big.png", pngBytes(2*1024*1024))); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	// 按内容识别类型，扩展名伪装成 png 的文本仍被拒绝
	if err := svc.ValidateFile(makeFileHeader(t, "fake.png", []byte("definitely not an image"))); !errors.Is(err, ErrFileTypeNotAllowed) {
		t.Fatalf("expected ErrFileTypeNotAllowed, got %v", err)
	}
}

func TestUploadServiceSaveFile(t *testing.T) {
	svc := newTestUploadService(t)

	url, err := svc.SaveFile(makeFileHeader(t, "dish.png", pngBytes(1024)), "menu")
	if err != nil {
		t.Fatalf("save file failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/menu/") {
		t.Fatalf("unexpected url %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("extension should be kept, got %q", url)
	}

	relative := strings.TrimPrefix(url, "/uploads/")
	path := filepath.Join(svc.cfg.Upload.Dir, filepath.FromSlash(relative))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestUploadServiceSaveFileUnknownScene(t *testing.T) {
	svc := newTestUploadService(t)

	// 未登记的场景落入 common 目录
	url, err := svc.SaveFile(makeFileHeader(t, "x.png", pngBytes(512)), "../../etc")
	if err != nil {
		t.Fatalf("save file failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/common/") {
		t.Fatalf("unknown scene should map to common, got %q", url)
	}
}

func TestUploadServiceDeleteFile(t *testing.T) {
	svc := newTestUploadService(t)

	url, err := svc.SaveFile(makeFileHeader(t, "gone.png", pngBytes(512)), "banner")
	if err != nil {
		t.Fatalf("save file failed: %v", err)
	}
	if err := svc.DeleteFile(url); err != nil {
		t.Fatalf("delete file failed: %v", err)
	}

	relative := strings.TrimPrefix(url, "/uploads/")
	path := filepath.Join(svc.cfg.Upload.Dir, filepath.FromSlash(relative))
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should be removed, stat err: %v", err)
	}

	// 文件不存在与非上传路径都不报错
	if err := svc.DeleteFile(url); err != nil {
		t.Fatalf("double delete should not fail: %v", err)
	}
	if err := svc.DeleteFile("/static/whatever.png"); err != nil {
		t.Fatalf("foreign path should be ignored: %v", err)
	}
}
