package models

import "time"

// Address 收货地址表
// 不变式：同一用户至多一条 is_default = true 的地址。
type Address struct {
	ID        uint      `gorm:"primarykey" json:"address_id"`                     // 主键
	UserUID   string    `gorm:"type:varchar(128);index;not null" json:"user_uid"` // 用户UID
	Label     string    `gorm:"type:varchar(50)" json:"label"`                    // 标签（家/公司）
	Receiver  string    `gorm:"type:varchar(100)" json:"receiver"`                // 收件人
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`                    // 电话
	Address   string    `gorm:"type:text;not null" json:"address"`                // 地址文本
	Latitude  *float64  `json:"latitude,omitempty"`                               // 纬度
	Longitude *float64  `json:"longitude,omitempty"`                              // 经度
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`         // 是否默认地址
	CreatedAt time.Time `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                          // 更新时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}
