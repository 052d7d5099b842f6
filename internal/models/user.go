package models

import "time"

// User 用户表（UID 为外部身份系统分配的不透明主键）
type User struct {
	UID       string    `gorm:"type:varchar(128);primarykey" json:"uid"`                  // 主键
	Email     string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`               // 邮箱
	Name      string    `gorm:"type:varchar(100)" json:"name"`                            // 昵称
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`                            // 电话
	Role      string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"` // 角色
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                  // 更新时间

	Addresses []Address `gorm:"foreignKey:UserUID" json:"addresses,omitempty"` // 收货地址
	Wallet    *Wallet   `gorm:"foreignKey:UserUID" json:"wallet,omitempty"`    // 钱包
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
