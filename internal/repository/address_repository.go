package repository

import (
	"errors"

	"github.com/foodgo-next/internal/models"

	"gorm.io/gorm"
)

// AddressRepository 收货地址数据访问接口
type AddressRepository interface {
	GetByID(id uint) (*models.Address, error)
	ListByUser(userUID string, page, pageSize int) ([]models.Address, error)
	CountByUser(userUID string) (int64, error)
	ExistsByUserAndText(userUID, address string) (bool, error)
	GetDefaultByUser(userUID string) (*models.Address, error)
	Create(address *models.Address) error
	Updates(id uint, updates map[string]interface{}) error
	UnsetDefaultsByUser(userUID string, exceptID uint) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormAddressRepository
}

// GormAddressRepository GORM 实现
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository 创建地址仓库
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAddressRepository) WithTx(tx *gorm.DB) *GormAddressRepository {
	if tx == nil {
		return r
	}
	return &GormAddressRepository{db: tx}
}

// GetByID 根据ID获取地址
func (r *GormAddressRepository) GetByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// ListByUser 获取用户地址列表
func (r *GormAddressRepository) ListByUser(userUID string, page, pageSize int) ([]models.Address, error) {
	var addresses []models.Address
	query := r.db.Where("user_uid = ?", userUID).Order("id asc")
	query = applyPagination(query, page, pageSize)
	if err := query.Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// CountByUser 统计用户地址数量
func (r *GormAddressRepository) CountByUser(userUID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Address{}).Where("user_uid = ?", userUID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByUserAndText 判断同一用户是否已存在相同地址文本
func (r *GormAddressRepository) ExistsByUserAndText(userUID, address string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Address{}).
		Where("user_uid = ? AND address = ?", userUID, address).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetDefaultByUser 获取用户默认地址
func (r *GormAddressRepository) GetDefaultByUser(userUID string) (*models.Address, error) {
	var address models.Address
	if err := r.db.Where("user_uid = ? AND is_default = ?", userUID, true).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// Create 创建地址
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// Updates 按字段更新地址
func (r *GormAddressRepository) Updates(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Address{}).Where("id = ?", id).Updates(updates).Error
}

// UnsetDefaultsByUser 取消用户其他地址的默认标记
// 单条 UPDATE 语句执行，保证事务内不会出现两条默认地址。
func (r *GormAddressRepository) UnsetDefaultsByUser(userUID string, exceptID uint) error {
	query := r.db.Model(&models.Address{}).Where("user_uid = ? AND is_default = ?", userUID, true)
	if exceptID > 0 {
		query = query.Where("id <> ?", exceptID)
	}
	return query.UpdateColumn("is_default", false).Error
}

// Delete 删除地址
func (r *GormAddressRepository) Delete(id uint) error {
	return r.db.Delete(&models.Address{}, id).Error
}
