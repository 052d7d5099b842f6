package models

import "time"

// Category 菜品分类表
type Category struct {
	ID          uint      `gorm:"primarykey" json:"category_id"`          // 主键
	Name        string    `gorm:"type:varchar(100);not null" json:"name"` // 名称
	Description string    `gorm:"type:text" json:"description"`           // 描述
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url"`     // 图片
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`                // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
