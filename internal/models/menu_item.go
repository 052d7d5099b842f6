package models

import "time"

// MenuItem 菜品表
type MenuItem struct {
	ID           uint      `gorm:"primarykey" json:"item_id"`                // 主键
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`      // 餐厅ID
	CategoryID   uint      `gorm:"index;not null" json:"category_id"`        // 分类ID
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`   // 名称
	Description  string    `gorm:"type:text" json:"description"`             // 描述
	Price        Money     `gorm:"type:decimal(10,2);not null" json:"price"` // 单价
	Available    bool      `gorm:"not null;default:true" json:"available"`   // 是否在售
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`                  // 更新时间

	Images []MenuItemImage `gorm:"foreignKey:ItemID" json:"images,omitempty"` // 菜品图片
}

// TableName 指定表名
func (MenuItem) TableName() string {
	return "menu_items"
}

// MenuItemImage 菜品图片表
// 不变式：同一菜品至多一张 is_primary = true 的图片。
type MenuItemImage struct {
	ID        uint      `gorm:"primarykey" json:"image_id"`                  // 主键
	ItemID    uint      `gorm:"index;not null" json:"item_id"`               // 菜品ID
	ImageURL  string    `gorm:"type:varchar(255);not null" json:"image_url"` // 图片地址
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`    // 是否主图
	CreatedAt time.Time `gorm:"index" json:"created_at"`                     // 创建时间
}

// TableName 指定表名
func (MenuItemImage) TableName() string {
	return "menu_item_images"
}
