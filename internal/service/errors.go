package service

import "errors"

// 服务层哨兵错误，由 HTTP 层通过 errors.Is 映射为业务码。
var (
	ErrUserNotFound              = errors.New("user not found")
	ErrUserAlreadyExists         = errors.New("user already exists")
	ErrInvalidUserRole           = errors.New("invalid user role")
	ErrAddressNotFound           = errors.New("address not found")
	ErrAddressDuplicate          = errors.New("address already exists for this user")
	ErrRestaurantNotFound        = errors.New("restaurant not found")
	ErrCategoryNotFound          = errors.New("category not found")
	ErrMenuItemNotFound          = errors.New("menu item not found")
	ErrImageNotFound             = errors.New("menu item image not found")
	ErrCartItemNotFound          = errors.New("cart item not found")
	ErrInvalidCartItem           = errors.New("invalid cart item")
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderItemNotFound         = errors.New("order item not found")
	ErrInvalidOrder              = errors.New("invalid order input")
	ErrInvalidOrderStatus        = errors.New("invalid order status")
	ErrVoucherNotFound           = errors.New("voucher not found")
	ErrVoucherCodeTaken          = errors.New("voucher code already exists for this restaurant")
	ErrWalletNotFound            = errors.New("wallet not found")
	ErrWalletInsufficientBalance = errors.New("wallet balance insufficient")
	ErrReviewNotFound            = errors.New("review not found")
	ErrInvalidReviewRating       = errors.New("review rating must be between 1 and 5")
	ErrBannerNotFound            = errors.New("banner not found")

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file too large")
	ErrFileEmpty          = errors.New("file is empty")
)
