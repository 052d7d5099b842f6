package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletService 钱包服务
// 余额变更在行锁事务内完成，并同步写入流水。
type WalletService struct {
	walletRepo repository.WalletRepository
}

// NewWalletService 创建钱包服务
func NewWalletService(walletRepo repository.WalletRepository) *WalletService {
	return &WalletService{walletRepo: walletRepo}
}

// GetOrCreate 获取用户钱包，不存在时初始化零余额钱包
func (s *WalletService) GetOrCreate(userUID string) (*models.Wallet, error) {
	uid := strings.TrimSpace(userUID)
	if uid == "" {
		return nil, ErrWalletNotFound
	}
	wallet, err := s.walletRepo.GetByUserUID(uid)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet = &models.Wallet{
		UserUID:   uid,
		Balance:   models.NewMoneyFromDecimal(decimal.Zero),
		UpdatedAt: time.Now(),
	}
	if err := s.walletRepo.Create(wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// Topup 充值
func (s *WalletService) Topup(userUID string, amount models.Money, description string) (*models.Wallet, error) {
	if amount.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInsufficientBalance
	}
	return s.applyChange(userUID, amount, constants.WalletTxnTypeTopup, description)
}

// Deduct 扣款（余额不足返回 ErrWalletInsufficientBalance）
func (s *WalletService) Deduct(userUID string, amount models.Money, description string) (*models.Wallet, error) {
	if amount.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInsufficientBalance
	}
	negated := models.NewMoneyFromDecimal(amount.Decimal.Neg())
	return s.applyChange(userUID, negated, constants.WalletTxnTypePayment, description)
}

// Refund 退款
func (s *WalletService) Refund(userUID string, amount models.Money, description string) (*models.Wallet, error) {
	if amount.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInsufficientBalance
	}
	return s.applyChange(userUID, amount, constants.WalletTxnTypeRefund, description)
}

// applyChange 在行锁事务内变更余额并记流水，amount 为带符号增量
func (s *WalletService) applyChange(userUID string, amount models.Money, txnType string, description string) (*models.Wallet, error) {
	wallet, err := s.GetOrCreate(userUID)
	if err != nil {
		return nil, err
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		walletRepo := s.walletRepo.WithTx(tx)

		locked, err := walletRepo.GetByUserUIDForUpdate(wallet.UserUID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrWalletNotFound
		}

		newBalance := models.NewMoneyFromDecimal(locked.Balance.Decimal.Add(amount.Decimal))
		if newBalance.Decimal.IsNegative() {
			return ErrWalletInsufficientBalance
		}
		if err := walletRepo.UpdateBalance(locked.ID, newBalance); err != nil {
			return err
		}
		return walletRepo.CreateTransaction(&models.WalletTransaction{
			WalletID:    locked.ID,
			Type:        txnType,
			Amount:      amount,
			Description: description,
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return s.walletRepo.GetByUserUID(wallet.UserUID)
}

// ListTransactions 分页查询钱包流水
func (s *WalletService) ListTransactions(userUID string, page, pageSize int) ([]models.WalletTransaction, int64, error) {
	wallet, err := s.GetOrCreate(userUID)
	if err != nil {
		return nil, 0, err
	}
	return s.walletRepo.ListTransactions(wallet.ID, page, pageSize)
}
