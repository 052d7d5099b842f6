package models

import "time"

// Order 订单表
// 下单时金额固定，后续不再根据订单项重算。
type Order struct {
	ID             uint      `gorm:"primarykey" json:"order_id"`                                      // 主键
	UserUID        string    `gorm:"type:varchar(128);index;not null" json:"user_uid"`                // 下单用户UID
	RestaurantID   uint      `gorm:"index;not null" json:"restaurant_id"`                             // 餐厅ID
	ShipperUID     *string   `gorm:"type:varchar(128);index" json:"shipper_uid,omitempty"`            // 配送员UID
	TotalPrice     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`        // 实付金额
	Status         string    `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"` // 订单状态
	AddressID      *uint     `gorm:"index" json:"address_id,omitempty"`                               // 收货地址ID
	AdminVoucherID *uint     `gorm:"index" json:"admin_voucher_id,omitempty"`                         // 平台券ID
	ShopVoucherID  *uint     `gorm:"index" json:"shop_voucher_id,omitempty"`                          // 店铺券ID
	Note           string    `gorm:"type:text" json:"note"`                                           // 备注
	PaymentMethod  string    `gorm:"type:varchar(20);not null;default:'cod'" json:"payment_method"`   // 支付方式
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt      time.Time `gorm:"index" json:"updated_at"`                                         // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项表（数量与价格为下单时快照）
type OrderItem struct {
	ID       uint   `gorm:"primarykey" json:"order_item_id"`          // 主键
	OrderID  uint   `gorm:"index;not null" json:"order_id"`           // 订单ID
	ItemID   uint   `gorm:"index;not null" json:"item_id"`            // 菜品ID
	Quantity int    `gorm:"not null;default:1" json:"quantity"`       // 数量
	Price    Money  `gorm:"type:decimal(10,2);not null" json:"price"` // 下单时单价快照
	Note     string `gorm:"type:text" json:"note"`                    // 备注
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
