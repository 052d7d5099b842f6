package repository

import "gorm.io/gorm"

// applyPagination 统一处理页码与偏移，pageSize 不合法时不分页
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	offset := 0
	if page > 1 {
		offset = (page - 1) * pageSize
	}
	return query.Offset(offset).Limit(pageSize)
}
