package handlers

import (
	"strconv"

	"github.com/foodgo-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListSearchHistory 获取用户最近搜索记录
func (h *Handler) ListSearchHistory(c *gin.Context) {
	uid := c.Param("uid")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, err := h.SearchHistoryService.ListByUser(uid, limit)
	if err != nil {
		respondError(c, response.CodeInternal, "search history fetch failed", err)
		return
	}
	response.Success(c, records)
}

// ClearSearchHistory 清空用户搜索记录
func (h *Handler) ClearSearchHistory(c *gin.Context) {
	uid := c.Param("uid")
	if err := h.SearchHistoryService.ClearByUser(uid); err != nil {
		respondError(c, response.CodeInternal, "search history clear failed", err)
		return
	}
	response.SuccessWithMsg(c, "search history cleared", nil)
}
