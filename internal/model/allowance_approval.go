package model

import (
	"gorm.io/gorm"
)

// AllowanceApproval records an owner's approval transaction granting the
// spender contract an allowance over an asset. Once a row is confirmed for a
// given (owner, asset, contract) the precondition is permanently satisfied:
// approvals target the maximum representable amount and are not re-issued per
// withdrawal.
type AllowanceApproval struct {
	gorm.Model
	OwnerAddress    string   `gorm:"column:owner_address;type:varchar(255);not null;uniqueIndex:idx_allowance_approvals_grant"`
	AssetID         uint     `gorm:"column:asset_id;not null;uniqueIndex:idx_allowance_approvals_grant"`
	ContractID      uint     `gorm:"column:contract_id;not null;uniqueIndex:idx_allowance_approvals_grant"`
	Amount          string   `gorm:"column:amount;type:varchar(255);not null"`
	TransactionHash string   `gorm:"column:transaction_hash;type:varchar(255);not null;uniqueIndex:idx_allowance_approvals_grant"`
	Status          TxStatus `gorm:"column:status;type:varchar(50);not null;default:'pending'"`
}

func (AllowanceApproval) TableName() string {
	return "allowance_approvals"
}
