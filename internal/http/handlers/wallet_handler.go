package handlers

import (
	"errors"

	"github.com/foodgo-next/internal/http/response"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// WalletChangeRequest 钱包余额变更请求
type WalletChangeRequest struct {
	Amount      models.Money `json:"amount" binding:"required"`
	Description string       `json:"description"`
}

// GetWallet 获取用户钱包（不存在则初始化）
func (h *Handler) GetWallet(c *gin.Context) {
	uid := c.Param("uid")
	wallet, err := h.WalletService.GetOrCreate(uid)
	if err != nil {
		if errors.Is(err, service.ErrWalletNotFound) {
			respondError(c, response.CodeBadRequest, "invalid user", nil)
			return
		}
		respondError(c, response.CodeInternal, "wallet fetch failed", err)
		return
	}
	response.Success(c, wallet)
}

// TopupWallet 钱包充值
func (h *Handler) TopupWallet(c *gin.Context) {
	uid := c.Param("uid")
	var req WalletChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	wallet, err := h.WalletService.Topup(uid, req.Amount, req.Description)
	if err != nil {
		respondWalletError(c, err)
		return
	}
	response.Success(c, wallet)
}

// DeductWallet 钱包扣款
func (h *Handler) DeductWallet(c *gin.Context) {
	uid := c.Param("uid")
	var req WalletChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	wallet, err := h.WalletService.Deduct(uid, req.Amount, req.Description)
	if err != nil {
		respondWalletError(c, err)
		return
	}
	response.Success(c, wallet)
}

// RefundWallet 钱包退款
func (h *Handler) RefundWallet(c *gin.Context) {
	uid := c.Param("uid")
	var req WalletChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	wallet, err := h.WalletService.Refund(uid, req.Amount, req.Description)
	if err != nil {
		respondWalletError(c, err)
		return
	}
	response.Success(c, wallet)
}

// ListWalletTransactions 分页查询钱包流水
func (h *Handler) ListWalletTransactions(c *gin.Context) {
	uid := c.Param("uid")
	page, pageSize := queryPagination(c)

	txns, total, err := h.WalletService.ListTransactions(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "wallet transactions fetch failed", err)
		return
	}
	response.SuccessWithPage(c, txns, response.NewPagination(page, pageSize, total))
}

func respondWalletError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWalletInsufficientBalance):
		respondError(c, response.CodeBadRequest, "insufficient balance", nil)
	case errors.Is(err, service.ErrWalletNotFound):
		respondError(c, response.CodeNotFound, "wallet not found", nil)
	default:
		respondError(c, response.CodeInternal, "wallet operation failed", err)
	}
}
