package model

import (
	"gorm.io/gorm"
)

// WithdrawalContract is the shared on-chain spender contract that moves
// tokens on behalf of owners once an allowance has been granted. At most one
// contract may be active per network; activation flips the others off in the
// same database transaction.
type WithdrawalContract struct {
	gorm.Model
	NetworkID uint   `gorm:"column:network_id;not null;index"`
	Address   string `gorm:"column:address;type:varchar(255);not null"`
	Version   string `gorm:"column:version;type:varchar(50);not null"`
	IsActive  bool   `gorm:"column:is_active;not null;default:false"`
}

func (WithdrawalContract) TableName() string {
	return "withdrawal_contracts"
}
