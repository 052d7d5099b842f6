package models

import "time"

// SearchHistory 搜索历史表
type SearchHistory struct {
	ID        uint      `gorm:"primarykey" json:"search_id"`                      // 主键
	UserUID   string    `gorm:"type:varchar(128);index;not null" json:"user_uid"` // 用户UID
	Keyword   string    `gorm:"type:varchar(255);not null" json:"keyword"`        // 关键词
	CreatedAt time.Time `gorm:"index" json:"created_at"`                          // 创建时间
}

// TableName 指定表名
func (SearchHistory) TableName() string {
	return "search_history"
}
