package repository

import (
	"errors"

	"github.com/foodgo-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository 钱包数据访问接口
type WalletRepository interface {
	GetByUserUID(userUID string) (*models.Wallet, error)
	GetByUserUIDForUpdate(userUID string) (*models.Wallet, error)
	Create(wallet *models.Wallet) error
	UpdateBalance(walletID uint, balance models.Money) error
	CreateTransaction(txn *models.WalletTransaction) error
	ListTransactions(walletID uint, page, pageSize int) ([]models.WalletTransaction, int64, error)
	WithTx(tx *gorm.DB) *GormWalletRepository
}

// GormWalletRepository GORM 实现
type GormWalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository 创建钱包仓库
func NewWalletRepository(db *gorm.DB) *GormWalletRepository {
	return &GormWalletRepository{db: db}
}

// WithTx 绑定事务
func (r *GormWalletRepository) WithTx(tx *gorm.DB) *GormWalletRepository {
	if tx == nil {
		return r
	}
	return &GormWalletRepository{db: tx}
}

// GetByUserUID 按用户UID获取钱包
func (r *GormWalletRepository) GetByUserUID(userUID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Where("user_uid = ?", userUID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

// GetByUserUIDForUpdate 按用户UID加锁获取钱包
func (r *GormWalletRepository) GetByUserUIDForUpdate(userUID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_uid = ?", userUID).
		First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

// Create 创建钱包
func (r *GormWalletRepository) Create(wallet *models.Wallet) error {
	return r.db.Create(wallet).Error
}

// UpdateBalance 更新钱包余额
func (r *GormWalletRepository) UpdateBalance(walletID uint, balance models.Money) error {
	return r.db.Model(&models.Wallet{}).Where("id = ?", walletID).
		UpdateColumn("balance", balance).Error
}

// CreateTransaction 创建钱包流水
func (r *GormWalletRepository) CreateTransaction(txn *models.WalletTransaction) error {
	return r.db.Create(txn).Error
}

// ListTransactions 分页查询钱包流水
func (r *GormWalletRepository) ListTransactions(walletID uint, page, pageSize int) ([]models.WalletTransaction, int64, error) {
	var txns []models.WalletTransaction
	query := r.db.Model(&models.WalletTransaction{}).Where("wallet_id = ?", walletID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)
	if err := query.Order("id desc").Find(&txns).Error; err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}
