package model

import (
	"time"
)

// Audit topics, one per meaningful transition in the withdrawal flow.
const (
	AuditTopicWithdrawalCreated = "WITHDRAWAL_CREATED"
	AuditTopicTopupMined        = "TOPUP_MINED"
	AuditTopicTopupConfirmed    = "TOPUP_CONFIRMED"
	AuditTopicApproveMined      = "APPROVE_MINED"
	AuditTopicApproveConfirmed  = "APPROVE_CONFIRMED"
	AuditTopicWithdrawMined     = "WITHDRAW_MINED"
	AuditTopicWithdrawConfirmed = "WITHDRAW_CONFIRMED"
	AuditTopicWithdrawFailed    = "WITHDRAW_FAILED"
)

// WithdrawalAuditLog is append-only. Rows are never updated or deleted; the
// only ordering guarantee is insertion order per request.
type WithdrawalAuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	RequestID *uint     `gorm:"column:request_id;index"`
	Topic     string    `gorm:"column:topic;type:varchar(100);not null"`
	Message   string    `gorm:"column:message;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (WithdrawalAuditLog) TableName() string {
	return "withdrawal_audit_logs"
}
