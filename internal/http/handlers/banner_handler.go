package handlers

import (
	"errors"
	"time"

	"github.com/foodgo-next/internal/cache"
	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	activeBannerCacheKey = "banners:active"
	activeBannerCacheTTL = 5 * time.Minute
)

type cachedBannerPage struct {
	Banners []models.Banner `json:"banners"`
	Total   int64           `json:"total"`
}

// BannerCreateRequest 创建 Banner 请求
type BannerCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"required"`
}

// BannerUpdateRequest 更新 Banner 请求
type BannerUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Status      *string `json:"status"`
}

// CreateBanner 创建 Banner
func (h *Handler) CreateBanner(c *gin.Context) {
	var req BannerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	banner, err := h.BannerService.Create(service.CreateBannerInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "banner create failed", err)
		return
	}
	_ = cache.Del(c.Request.Context(), activeBannerCacheKey)
	response.Success(c, banner)
}

// UploadBanner 上传图片并创建 Banner
func (h *Handler) UploadBanner(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		respondError(c, response.CodeBadRequest, "missing title", nil)
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "missing file", err)
		return
	}

	banner, err := h.BannerService.Upload(title, c.PostForm("description"), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileEmpty),
			errors.Is(err, service.ErrFileTooLarge),
			errors.Is(err, service.ErrFileTypeNotAllowed):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "banner upload failed", err)
		}
		return
	}
	_ = cache.Del(c.Request.Context(), activeBannerCacheKey)
	response.Success(c, banner)
}

// GetBanner 获取 Banner 详情
func (h *Handler) GetBanner(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	banner, err := h.BannerService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBannerNotFound) {
			respondError(c, response.CodeNotFound, "banner not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "banner fetch failed", err)
		return
	}
	response.Success(c, banner)
}

// ListBanners 分页查询 Banner
// 首页展示的 active 首页列表走 Redis 缓存，写操作时失效。
func (h *Handler) ListBanners(c *gin.Context) {
	page, pageSize := queryPagination(c)
	status := c.Query("status")

	cacheable := status == constants.BannerStatusActive && page == 1
	if cacheable {
		var cached cachedBannerPage
		if hit, err := cache.GetJSON(c.Request.Context(), activeBannerCacheKey, &cached); err == nil && hit {
			response.SuccessWithPage(c, cached.Banners, response.NewPagination(page, pageSize, cached.Total))
			return
		}
	}

	banners, total, err := h.BannerService.List(status, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "banner list failed", err)
		return
	}
	if cacheable {
		_ = cache.SetJSON(c.Request.Context(), activeBannerCacheKey, cachedBannerPage{Banners: banners, Total: total}, activeBannerCacheTTL)
	}
	response.SuccessWithPage(c, banners, response.NewPagination(page, pageSize, total))
}

// UpdateBanner 部分更新 Banner
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req BannerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	banner, err := h.BannerService.Update(id, service.UpdateBannerInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrBannerNotFound) {
			respondError(c, response.CodeNotFound, "banner not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "banner update failed", err)
		return
	}
	_ = cache.Del(c.Request.Context(), activeBannerCacheKey)
	response.Success(c, banner)
}

// DeleteBanner 删除 Banner
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.BannerService.Delete(id); err != nil {
		if errors.Is(err, service.ErrBannerNotFound) {
			respondError(c, response.CodeNotFound, "banner not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "banner delete failed", err)
		return
	}
	_ = cache.Del(c.Request.Context(), activeBannerCacheKey)
	response.SuccessWithMsg(c, "banner deleted", nil)
}
