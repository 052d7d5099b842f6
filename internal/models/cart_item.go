package models

import "time"

// CartItem 购物车项
// (user, restaurant, item) 三元组逻辑唯一，重复添加合并数量。
type CartItem struct {
	ID           uint      `gorm:"primarykey" json:"cart_item_id"`                                                 // 主键
	UserUID      string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_cart_user_rest_item" json:"user_uid"` // 用户UID
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_cart_user_rest_item" json:"restaurant_id"`              // 餐厅ID
	ItemID       uint      `gorm:"not null;uniqueIndex:idx_cart_user_rest_item" json:"item_id"`                    // 菜品ID
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`                                             // 数量
	Note         string    `gorm:"type:text" json:"note"`                                                          // 备注
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                                        // 创建时间
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`                                                        // 更新时间

	MenuItem *MenuItem `gorm:"foreignKey:ItemID" json:"menu_item,omitempty"` // 关联菜品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
