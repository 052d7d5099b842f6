package models

import "time"

// Voucher 优惠券表
// used_count 单调不减，只通过原子自增语句修改。
type Voucher struct {
	ID             uint       `gorm:"primarykey" json:"voucher_id"`                                   // 主键
	Code           string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`              // 优惠码
	Title          string     `gorm:"type:varchar(255)" json:"title"`                                 // 标题
	DiscountType   string     `gorm:"type:varchar(20);not null;default:'fixed'" json:"discount_type"` // 优惠类型（fixed/percent）
	DiscountValue  Money      `gorm:"type:decimal(10,2);not null;default:0" json:"discount_value"`    // 优惠数值
	MinOrder       Money      `gorm:"type:decimal(10,2);not null;default:0" json:"min_order"`         // 使用门槛
	MaxDiscount    Money      `gorm:"type:decimal(10,2);not null;default:0" json:"max_discount"`      // 最大优惠金额
	StartDate      *time.Time `gorm:"index" json:"start_date,omitempty"`                              // 生效时间
	EndDate        *time.Time `gorm:"index" json:"end_date,omitempty"`                                // 失效时间
	UsageLimit     int        `gorm:"not null;default:0" json:"usage_limit"`                          // 总使用上限（0 表示不限制）
	UsedCount      int        `gorm:"not null;default:0" json:"used_count"`                           // 已使用次数
	RestaurantID   *uint      `gorm:"index" json:"restaurant_id,omitempty"`                           // 发券餐厅（店铺券）
	Status         string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`       // 状态
	CreatedByAdmin bool       `gorm:"not null;default:false" json:"created_by_admin"`                 // 是否平台券
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt      time.Time  `gorm:"index" json:"updated_at"`                                        // 更新时间
}

// TableName 指定表名
func (Voucher) TableName() string {
	return "vouchers"
}
