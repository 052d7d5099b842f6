package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"gorm.io/gorm"
)

// CreateAddressInput 创建地址输入
type CreateAddressInput struct {
	UserUID   string
	Label     string
	Receiver  string
	Phone     string
	Address   string
	Latitude  *float64
	Longitude *float64
	IsDefault bool
}

// UpdateAddressInput 更新地址输入（仅更新非 nil 字段）
type UpdateAddressInput struct {
	Label     *string
	Receiver  *string
	Phone     *string
	Address   *string
	Latitude  *float64
	Longitude *float64
	IsDefault *bool
}

// AddressService 收货地址服务
// 维护"同一用户至多一条默认地址"的不变式。
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService 创建地址服务
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// Create 创建地址
// 同一用户的第一条地址强制设为默认；新地址为默认时在同一事务内取消其他默认标记。
func (s *AddressService) Create(input CreateAddressInput) (*models.Address, error) {
	userUID := strings.TrimSpace(input.UserUID)
	addressText := strings.TrimSpace(input.Address)
	if userUID == "" || addressText == "" {
		return nil, ErrAddressNotFound
	}

	exists, err := s.addressRepo.ExistsByUserAndText(userUID, addressText)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAddressDuplicate
	}

	count, err := s.addressRepo.CountByUser(userUID)
	if err != nil {
		return nil, err
	}

	isDefault := input.IsDefault
	if count == 0 {
		// 第一条地址强制默认，覆盖调用方传入的 false
		isDefault = true
	}

	now := time.Now()
	address := &models.Address{
		UserUID:   userUID,
		Label:     strings.TrimSpace(input.Label),
		Receiver:  strings.TrimSpace(input.Receiver),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   addressText,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		addressRepo := s.addressRepo.WithTx(tx)
		if isDefault {
			if err := addressRepo.UnsetDefaultsByUser(userUID, 0); err != nil {
				return err
			}
		}
		return addressRepo.Create(address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Get 根据ID获取地址
func (s *AddressService) Get(addressID uint) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

// GetDefault 获取用户默认地址
func (s *AddressService) GetDefault(userUID string) (*models.Address, error) {
	address, err := s.addressRepo.GetDefaultByUser(userUID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

// ListByUser 获取用户地址列表
func (s *AddressService) ListByUser(userUID string, page, pageSize int) ([]models.Address, error) {
	return s.addressRepo.ListByUser(userUID, page, pageSize)
}

// Update 部分更新地址
// IsDefault 为 true 时在同一事务内取消该用户其他地址的默认标记；
// 字段为 nil 时对应列保持不变。
func (s *AddressService) Update(addressID uint, input UpdateAddressInput) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}

	updates := map[string]interface{}{}
	if input.Label != nil {
		updates["label"] = *input.Label
	}
	if input.Receiver != nil {
		updates["receiver"] = *input.Receiver
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Latitude != nil {
		updates["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		updates["longitude"] = *input.Longitude
	}
	if input.IsDefault != nil {
		updates["is_default"] = *input.IsDefault
	}
	if len(updates) == 0 {
		return address, nil
	}
	updates["updated_at"] = time.Now()

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		addressRepo := s.addressRepo.WithTx(tx)
		if input.IsDefault != nil && *input.IsDefault {
			if err := addressRepo.UnsetDefaultsByUser(address.UserUID, addressID); err != nil {
				return err
			}
		}
		return addressRepo.Updates(addressID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.addressRepo.GetByID(addressID)
}

// Delete 删除地址
// 删除默认地址后不自动选举新的默认地址。
func (s *AddressService) Delete(addressID uint) error {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return err
	}
	if address == nil {
		return ErrAddressNotFound
	}
	return s.addressRepo.Delete(addressID)
}
