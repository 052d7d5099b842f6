package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/foodgo-next/internal/config"

	"github.com/google/uuid"
)

var allowedUploadScenes = map[string]struct{}{
	"menu":       {},
	"restaurant": {},
	"banner":     {},
	"category":   {},
	"common":     {},
}

// UploadService 文件上传服务
// 校验内容类型与大小后把文件落盘，返回可访问的相对 URL。
type UploadService struct {
	cfg *config.Config
}

// NewUploadService 创建文件上传服务实例
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// ValidateFile 校验上传文件的内容类型与大小，不产生任何写入
func (s *UploadService) ValidateFile(file *multipart.FileHeader) error {
	if file == nil || file.Size == 0 {
		return ErrFileEmpty
	}
	if file.Size > s.cfg.Upload.MaxSize {
		return fmt.Errorf("%w: %s exceeds %d MB", ErrFileTooLarge, file.Filename, s.cfg.Upload.MaxSize/1024/1024)
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	// 读取文件头部识别 MIME 类型，不信任请求声明的 Content-Type
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return err
	}
	contentType := http.DetectContentType(buffer)
	if !s.isAllowedType(contentType) {
		return fmt.Errorf("%w: %s is %s", ErrFileTypeNotAllowed, file.Filename, contentType)
	}
	return nil
}

// SaveFile 校验并保存上传的文件，返回相对 URL
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	if err := s.ValidateFile(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	normalizedScene := normalizeUploadScene(scene)
	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(s.cfg.Upload.Dir, normalizedScene, filename)

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	// 返回相对路径，由前端根据环境配置拼接完整 URL
	return fmt.Sprintf("/uploads/%s/%s", normalizedScene, filename), nil
}

// DeleteFile 按相对 URL 删除已保存的文件，文件不存在时不报错
func (s *UploadService) DeleteFile(relativeURL string) error {
	trimmed := strings.TrimPrefix(strings.TrimSpace(relativeURL), "/uploads/")
	if trimmed == "" || trimmed == relativeURL {
		return nil
	}
	path := filepath.Join(s.cfg.Upload.Dir, filepath.FromSlash(trimmed))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *UploadService) isAllowedType(contentType string) bool {
	if len(s.cfg.Upload.AllowedTypes) == 0 {
		return true
	}
	for _, t := range s.cfg.Upload.AllowedTypes {
		if strings.EqualFold(contentType, t) {
			return true
		}
	}
	return false
}

func normalizeUploadScene(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "common"
	}
	if _, ok := allowedUploadScenes[value]; ok {
		return value
	}
	return "common"
}
