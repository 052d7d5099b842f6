package handlers

import (
	"errors"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserCreateRequest 登记用户请求
type UserCreateRequest struct {
	UID   string `json:"uid" binding:"required"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UserUpdateRequest 更新用户请求
type UserUpdateRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
}

// CreateUser 登记用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserService.Create(service.CreateUserInput{
		UID:   req.UID,
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			respondError(c, response.CodeConflict, "user already exists", nil)
		case errors.Is(err, service.ErrInvalidUserRole):
			respondError(c, response.CodeBadRequest, "invalid user role", nil)
		default:
			respondError(c, response.CodeInternal, "user create failed", err)
		}
		return
	}
	response.Success(c, user)
}

// GetUser 获取用户详情
func (h *Handler) GetUser(c *gin.Context) {
	uid := c.Param("uid")
	user, err := h.UserService.Get(uid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "user fetch failed", err)
		return
	}
	response.Success(c, user)
}

// ListUsers 分页查询用户
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := queryPagination(c)

	users, total, err := h.UserService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Role:     c.Query("role"),
		Keyword:  c.Query("keyword"),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidUserRole) {
			respondError(c, response.CodeBadRequest, "invalid user role", nil)
			return
		}
		respondError(c, response.CodeInternal, "user list failed", err)
		return
	}
	response.SuccessWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// UpdateUser 部分更新用户
func (h *Handler) UpdateUser(c *gin.Context) {
	uid := c.Param("uid")
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserService.Update(uid, service.UpdateUserInput{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, response.CodeNotFound, "user not found", nil)
		case errors.Is(err, service.ErrInvalidUserRole):
			respondError(c, response.CodeBadRequest, "invalid user role", nil)
		default:
			respondError(c, response.CodeInternal, "user update failed", err)
		}
		return
	}
	response.Success(c, user)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	uid := c.Param("uid")
	if err := h.UserService.Delete(uid); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "user delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "user deleted", nil)
}
