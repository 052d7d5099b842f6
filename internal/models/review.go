package models

import "time"

// Review 评价表
type Review struct {
	ID           uint      `gorm:"primarykey" json:"review_id"`                      // 主键
	UserUID      string    `gorm:"type:varchar(128);index;not null" json:"user_uid"` // 用户UID
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`              // 餐厅ID
	OrderID      uint      `gorm:"index;not null" json:"order_id"`                   // 订单ID
	Rating       int       `gorm:"not null" json:"rating"`                           // 评分（1-5）
	Comment      string    `gorm:"type:text" json:"comment"`                         // 评论
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                          // 创建时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
