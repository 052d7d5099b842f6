package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
)

const defaultSearchHistoryLimit = 20

// SearchHistoryService 搜索历史服务
type SearchHistoryService struct {
	searchRepo repository.SearchHistoryRepository
}

// NewSearchHistoryService 创建搜索历史服务
func NewSearchHistoryService(searchRepo repository.SearchHistoryRepository) *SearchHistoryService {
	return &SearchHistoryService{searchRepo: searchRepo}
}

// Record 记录一次搜索（空关键词忽略）
func (s *SearchHistoryService) Record(userUID, keyword string) error {
	uid := strings.TrimSpace(userUID)
	kw := strings.TrimSpace(keyword)
	if uid == "" || kw == "" {
		return nil
	}
	return s.searchRepo.Create(&models.SearchHistory{
		UserUID:   uid,
		Keyword:   kw,
		CreatedAt: time.Now(),
	})
}

// ListByUser 获取用户最近的搜索记录
func (s *SearchHistoryService) ListByUser(userUID string, limit int) ([]models.SearchHistory, error) {
	if limit <= 0 {
		limit = defaultSearchHistoryLimit
	}
	return s.searchRepo.ListByUser(strings.TrimSpace(userUID), limit)
}

// ClearByUser 清空用户搜索记录
func (s *SearchHistoryService) ClearByUser(userUID string) error {
	return s.searchRepo.ClearByUser(strings.TrimSpace(userUID))
}
