package models

import "time"

// Banner 首页 Banner 表
type Banner struct {
	ID          uint      `gorm:"primarykey" json:"banner_id"`                              // 主键
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`                  // 标题
	Description string    `gorm:"type:text" json:"description"`                             // 描述
	ImageURL    string    `gorm:"type:varchar(255);not null" json:"image_url"`              // 图片地址
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"` // 状态
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`                                  // 更新时间
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}
