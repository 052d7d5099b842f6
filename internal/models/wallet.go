package models

import "time"

// Wallet 钱包表（每个用户一条）
type Wallet struct {
	ID        uint      `gorm:"primarykey" json:"wallet_id"`                            // 主键
	UserUID   string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"user_uid"` // 用户UID
	Balance   Money     `gorm:"type:decimal(10,2);not null;default:0" json:"balance"`   // 余额
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                // 更新时间

	Transactions []WalletTransaction `gorm:"foreignKey:WalletID" json:"transactions,omitempty"` // 流水
}

// TableName 指定表名
func (Wallet) TableName() string {
	return "wallets"
}

// WalletTransaction 钱包流水表
type WalletTransaction struct {
	ID          uint      `gorm:"primarykey" json:"transaction_id"`          // 主键
	WalletID    uint      `gorm:"index;not null" json:"wallet_id"`           // 钱包ID
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`     // 交易类型
	Amount      Money     `gorm:"type:decimal(10,2);not null" json:"amount"` // 金额
	Description string    `gorm:"type:text" json:"description"`              // 描述
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                   // 创建时间
}

// TableName 指定表名
func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
