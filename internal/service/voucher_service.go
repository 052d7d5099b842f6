package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
)

// CreateVoucherInput 创建优惠券输入
type CreateVoucherInput struct {
	Code           string
	Title          string
	DiscountType   string
	DiscountValue  models.Money
	MinOrder       models.Money
	MaxDiscount    models.Money
	StartDate      *time.Time
	EndDate        *time.Time
	UsageLimit     int
	RestaurantID   *uint
	CreatedByAdmin bool
}

// UpdateVoucherInput 更新优惠券输入（仅更新非 nil 字段）
type UpdateVoucherInput struct {
	Title         *string
	DiscountType  *string
	DiscountValue *models.Money
	MinOrder      *models.Money
	MaxDiscount   *models.Money
	StartDate     *time.Time
	EndDate       *time.Time
	UsageLimit    *int
	Status        *string
}

// VoucherService 优惠券服务
type VoucherService struct {
	voucherRepo repository.VoucherRepository
}

// NewVoucherService 创建优惠券服务
func NewVoucherService(voucherRepo repository.VoucherRepository) *VoucherService {
	return &VoucherService{voucherRepo: voucherRepo}
}

// Create 创建优惠券
// 优惠码全局唯一，店铺券额外校验同店不重复。
func (s *VoucherService) Create(input CreateVoucherInput) (*models.Voucher, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, ErrVoucherCodeTaken
	}
	existing, err := s.voucherRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrVoucherCodeTaken
	}
	if input.RestaurantID != nil {
		taken, err := s.voucherRepo.ExistsBySellerAndCode(*input.RestaurantID, code)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrVoucherCodeTaken
		}
	}

	discountType := strings.TrimSpace(input.DiscountType)
	if discountType != constants.DiscountTypePercent {
		discountType = constants.DiscountTypeFixed
	}

	now := time.Now()
	voucher := &models.Voucher{
		Code:           code,
		Title:          input.Title,
		DiscountType:   discountType,
		DiscountValue:  input.DiscountValue,
		MinOrder:       input.MinOrder,
		MaxDiscount:    input.MaxDiscount,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		UsageLimit:     input.UsageLimit,
		RestaurantID:   input.RestaurantID,
		Status:         constants.VoucherStatusActive,
		CreatedByAdmin: input.CreatedByAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.voucherRepo.Create(voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// Get 根据ID获取优惠券
func (s *VoucherService) Get(voucherID uint) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(voucherID)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrVoucherNotFound
	}
	return voucher, nil
}

// GetByCode 根据优惠码获取优惠券
func (s *VoucherService) GetByCode(code string) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrVoucherNotFound
	}
	return voucher, nil
}

// List 分页查询优惠券
func (s *VoucherService) List(filter repository.VoucherListFilter) ([]models.Voucher, int64, error) {
	return s.voucherRepo.List(filter)
}

// Update 部分更新优惠券
func (s *VoucherService) Update(voucherID uint, input UpdateVoucherInput) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(voucherID)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrVoucherNotFound
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.DiscountType != nil {
		updates["discount_type"] = *input.DiscountType
	}
	if input.DiscountValue != nil {
		updates["discount_value"] = *input.DiscountValue
	}
	if input.MinOrder != nil {
		updates["min_order"] = *input.MinOrder
	}
	if input.MaxDiscount != nil {
		updates["max_discount"] = *input.MaxDiscount
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		updates["end_date"] = *input.EndDate
	}
	if input.UsageLimit != nil {
		updates["usage_limit"] = *input.UsageLimit
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if len(updates) == 0 {
		return voucher, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.voucherRepo.Updates(voucherID, updates); err != nil {
		return nil, err
	}
	return s.voucherRepo.GetByID(voucherID)
}

// Delete 删除优惠券
func (s *VoucherService) Delete(voucherID uint) error {
	voucher, err := s.voucherRepo.GetByID(voucherID)
	if err != nil {
		return err
	}
	if voucher == nil {
		return ErrVoucherNotFound
	}
	return s.voucherRepo.Delete(voucherID)
}
