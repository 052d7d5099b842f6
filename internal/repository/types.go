package repository

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page         int
	PageSize     int
	UserUID      string
	RestaurantID uint
	ShipperUID   string
	Status       string
}

// MenuItemListFilter 查询菜品列表的过滤条件
type MenuItemListFilter struct {
	Page          int
	PageSize      int
	RestaurantID  uint
	CategoryID    uint
	OnlyAvailable bool
}

// VoucherListFilter 查询优惠券列表的过滤条件
type VoucherListFilter struct {
	Page         int
	PageSize     int
	Code         string
	RestaurantID uint
	Status       string
	AdminOnly    bool
}

// RestaurantListFilter 查询餐厅列表的过滤条件
type RestaurantListFilter struct {
	Page     int
	PageSize int
	OwnerUID string
	Status   string
	Search   string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Role     string
	Keyword  string
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	Page         int
	PageSize     int
	UserUID      string
	RestaurantID uint
	OrderID      uint
}
