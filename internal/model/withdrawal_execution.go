package model

import (
	"gorm.io/gorm"
)

// WithdrawalExecution links a withdrawal request to the batched spend
// transaction that attempts to fulfil it. Several executions share one
// transaction hash when a single batch moves funds for multiple requests.
type WithdrawalExecution struct {
	gorm.Model
	RequestID       uint     `gorm:"column:request_id;not null;index"`
	TransactionHash string   `gorm:"column:transaction_hash;type:varchar(255);not null;index"`
	Status          TxStatus `gorm:"column:status;type:varchar(50);not null;default:'pending'"`
}

func (WithdrawalExecution) TableName() string {
	return "withdrawal_executions"
}
