package model

import (
	"gorm.io/gorm"
)

type WithdrawalStatus string

const (
	WithdrawalStatusCreated           WithdrawalStatus = "created"
	WithdrawalStatusAwaitingTopup     WithdrawalStatus = "awaiting_topup"
	WithdrawalStatusAwaitingAllowance WithdrawalStatus = "awaiting_allowance"
	WithdrawalStatusOnchainSubmitted  WithdrawalStatus = "onchain_submitted"
	WithdrawalStatusOnchainConfirmed  WithdrawalStatus = "onchain_confirmed"
	WithdrawalStatusFailed            WithdrawalStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed.
func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalStatusOnchainConfirmed || s == WithdrawalStatusFailed
}

// rank orders statuses along the state machine. Transitions may only move to
// a strictly higher rank.
func (s WithdrawalStatus) rank() int {
	switch s {
	case WithdrawalStatusCreated:
		return 0
	case WithdrawalStatusAwaitingTopup:
		return 1
	case WithdrawalStatusAwaitingAllowance:
		return 2
	case WithdrawalStatusOnchainSubmitted:
		return 3
	case WithdrawalStatusOnchainConfirmed, WithdrawalStatusFailed:
		return 4
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next keeps the status
// sequence monotonic.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == WithdrawalStatusFailed {
		return true
	}
	return next.rank() > s.rank()
}

// WithdrawalRequest is the unit of intent: move Amount of an asset from
// FromAddress to ToAddress on a network. One row per (logical withdrawal x
// recipient). Rows are never deleted and mutate only via status transitions.
type WithdrawalRequest struct {
	gorm.Model
	FromAddress     string           `gorm:"column:from_address;type:varchar(255);not null"`
	ToAddress       string           `gorm:"column:to_address;type:varchar(255);not null"`
	Amount          string           `gorm:"column:amount;type:varchar(255);not null"`
	FeeAddress      *string          `gorm:"column:fee_address;type:varchar(255)"`
	FeeAmount       *string          `gorm:"column:fee_amount;type:varchar(255)"`
	ChainID         int64            `gorm:"column:chain_id;not null"`
	NetworkID       uint             `gorm:"column:network_id;not null;index"`
	AssetID         uint             `gorm:"column:asset_id;not null;index"`
	Status          WithdrawalStatus `gorm:"column:status;type:varchar(50);not null;default:'created'"`
	ClientRequestID *string          `gorm:"column:client_request_id;type:varchar(255);uniqueIndex"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}
