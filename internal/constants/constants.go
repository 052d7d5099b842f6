package constants

// 用户角色常量
const (
	UserRoleCustomer = "customer"
	UserRoleShipper  = "shipper"
	UserRoleAdmin    = "admin"
	UserRoleMerchant = "merchant"
)

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusAccepted   = "accepted"
	OrderStatusPreparing  = "preparing"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 支付方式常量
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodWallet = "wallet"
)

// 优惠券状态常量
const (
	VoucherStatusActive   = "active"
	VoucherStatusExpired  = "expired"
	VoucherStatusDisabled = "disabled"
)

// 优惠类型常量
const (
	DiscountTypeFixed   = "fixed"
	DiscountTypePercent = "percent"
)

// 钱包交易类型常量
const (
	WalletTxnTypeTopup    = "topup"
	WalletTxnTypePayment  = "payment"
	WalletTxnTypeRefund   = "refund"
	WalletTxnTypeWithdraw = "withdraw"
)

// 餐厅状态常量
const (
	RestaurantStatusOpen   = "open"
	RestaurantStatusClosed = "closed"
)

// Banner 状态常量
const (
	BannerStatusActive   = "active"
	BannerStatusInactive = "inactive"
)

// 有效的订单状态集合
var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusAccepted:   true,
	OrderStatusPreparing:  true,
	OrderStatusDelivering: true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
}

// 有效的用户角色集合
var ValidUserRoles = map[string]bool{
	UserRoleCustomer: true,
	UserRoleShipper:  true,
	UserRoleAdmin:    true,
	UserRoleMerchant: true,
}
