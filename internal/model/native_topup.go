package model

import (
	"gorm.io/gorm"
)

// NativeTopup records a native-currency transfer that funds the gas cost of
// an owner's own approval transaction.
type NativeTopup struct {
	gorm.Model
	NetworkID       uint     `gorm:"column:network_id;not null;index"`
	FromAddress     string   `gorm:"column:from_address;type:varchar(255);not null"`
	ToAddress       string   `gorm:"column:to_address;type:varchar(255);not null"`
	Amount          string   `gorm:"column:amount;type:varchar(255);not null"`
	TransactionHash string   `gorm:"column:transaction_hash;type:varchar(255);not null;uniqueIndex"`
	Status          TxStatus `gorm:"column:status;type:varchar(50);not null;default:'pending'"`
}

func (NativeTopup) TableName() string {
	return "native_topups"
}
