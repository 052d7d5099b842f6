package models

import "time"

// Restaurant 餐厅表
type Restaurant struct {
	ID        uint      `gorm:"primarykey" json:"restaurant_id"`                        // 主键
	OwnerUID  string    `gorm:"type:varchar(128);index" json:"owner_uid"`               // 店主UID
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`                 // 名称
	Address   string    `gorm:"type:text" json:"address"`                               // 地址
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`                          // 电话
	OpenTime  string    `gorm:"type:varchar(20)" json:"open_time"`                      // 开门时间
	CloseTime string    `gorm:"type:varchar(20)" json:"close_time"`                     // 关门时间
	Status    string    `gorm:"type:varchar(20);not null;default:'open'" json:"status"` // 营业状态
	ImageURL  string    `gorm:"type:varchar(255)" json:"image_url"`                     // 门面图片
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                // 更新时间

	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"` // 菜品
}

// TableName 指定表名
func (Restaurant) TableName() string {
	return "restaurants"
}
