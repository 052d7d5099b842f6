package handlers

import (
	"errors"
	"strconv"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuItemCreateRequest 创建菜品请求
type MenuItemCreateRequest struct {
	RestaurantID uint         `json:"restaurant_id" binding:"required"`
	CategoryID   uint         `json:"category_id" binding:"required"`
	Name         string       `json:"name" binding:"required"`
	Description  string       `json:"description"`
	Price        models.Money `json:"price"`
	Available    *bool        `json:"available"`
}

// MenuItemUpdateRequest 更新菜品请求
type MenuItemUpdateRequest struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *models.Money `json:"price"`
	Available   *bool         `json:"available"`
}

// MenuImageAddRequest 追加菜品图片请求（已有 URL）
type MenuImageAddRequest struct {
	ImageURL  string `json:"image_url" binding:"required"`
	IsPrimary bool   `json:"is_primary"`
}

// CreateMenuItem 创建菜品
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.MenuService.Create(service.CreateMenuItemInput{
		RestaurantID: req.RestaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Available:    req.Available,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "menu item create failed", err)
		return
	}
	response.Success(c, item)
}

// GetMenuItem 获取菜品详情
func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	item, err := h.MenuService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "menu item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "menu item fetch failed", err)
		return
	}
	response.Success(c, item)
}

// ListMenuItems 分页查询菜品
func (h *Handler) ListMenuItems(c *gin.Context) {
	page, pageSize := queryPagination(c)
	onlyAvailable, _ := strconv.ParseBool(c.DefaultQuery("only_available", "false"))

	items, total, err := h.MenuService.List(repository.MenuItemListFilter{
		Page:          page,
		PageSize:      pageSize,
		RestaurantID:  queryUint(c, "restaurant_id"),
		CategoryID:    queryUint(c, "category_id"),
		OnlyAvailable: onlyAvailable,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "menu item list failed", err)
		return
	}
	response.SuccessWithPage(c, items, response.NewPagination(page, pageSize, total))
}

// UpdateMenuItem 更新菜品
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req MenuItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.MenuService.Update(id, service.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
	})
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "menu item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "menu item update failed", err)
		return
	}
	response.Success(c, item)
}

// DeleteMenuItem 删除菜品
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.MenuService.Delete(id); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "menu item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "menu item delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "menu item deleted", nil)
}

// AddMenuItemImage 通过 URL 追加菜品图片
func (h *Handler) AddMenuItemImage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req MenuImageAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	image, err := h.MenuService.AddImage(id, req.ImageURL, req.IsPrimary)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "menu item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "menu image add failed", err)
		return
	}
	response.Success(c, image)
}

// UploadMenuItemImage 上传单张菜品图片
func (h *Handler) UploadMenuItemImage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	isPrimary, _ := strconv.ParseBool(c.DefaultPostForm("is_primary", "false"))

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "missing file", err)
		return
	}

	image, err := h.MenuService.UploadImage(id, file, isPrimary)
	if err != nil {
		respondMenuUploadError(c, err)
		return
	}
	response.Success(c, image)
}

// UploadMenuItemImages 批量上传菜品图片（整批校验，任一失败全部拒绝）
func (h *Handler) UploadMenuItemImages(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	isPrimary, _ := strconv.ParseBool(c.DefaultPostForm("is_primary", "false"))

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid multipart form", err)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		respondError(c, response.CodeBadRequest, "missing files", nil)
		return
	}

	images, err := h.MenuService.UploadImages(id, files, isPrimary)
	if err != nil {
		respondMenuUploadError(c, err)
		return
	}
	response.Success(c, images)
}

// ListMenuItemImages 获取菜品图片列表
func (h *Handler) ListMenuItemImages(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	images, err := h.MenuService.ListImages(id)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "menu item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "menu image list failed", err)
		return
	}
	response.Success(c, images)
}

// DeleteMenuItemImage 删除菜品图片
func (h *Handler) DeleteMenuItemImage(c *gin.Context) {
	imageID, ok := parseUintParam(c, "image_id")
	if !ok {
		return
	}
	if err := h.MenuService.DeleteImage(imageID); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			respondError(c, response.CodeNotFound, "image not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "menu image delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "image deleted", nil)
}

func respondMenuUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		respondError(c, response.CodeNotFound, "menu item not found", nil)
	case errors.Is(err, service.ErrFileEmpty):
		respondError(c, response.CodeBadRequest, "file is empty", nil)
	case errors.Is(err, service.ErrFileTooLarge):
		respondError(c, response.CodeBadRequest, "file too large", nil)
	case errors.Is(err, service.ErrFileTypeNotAllowed):
		respondError(c, response.CodeBadRequest, "file type not allowed", nil)
	default:
		respondError(c, response.CodeInternal, "menu image upload failed", err)
	}
}
